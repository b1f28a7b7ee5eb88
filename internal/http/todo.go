package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/padlockhq/todovault/internal/domain"
	"github.com/padlockhq/todovault/internal/service"
	"github.com/padlockhq/todovault/internal/store"
	"github.com/padlockhq/todovault/pkg/httpx"
	"github.com/padlockhq/todovault/pkg/slogx"
)

// TodoResponse is the wire shape of a todo. The field names are load-bearing
// for existing clients; do not rename them.
type TodoResponse struct {
	ID          int64     `json:"id"`
	Content     string    `json:"content"`
	IsDone      bool      `json:"isDone"`
	CreateDate  time.Time `json:"createdate"`
	UpdatedDate time.Time `json:"updateddate"`
}

// AddTodoRequest is the body for POST /todo/todo.
type AddTodoRequest struct {
	Content string `json:"content"`
}

// UpdateTodoRequest is the body for PUT /todo/todo.
type UpdateTodoRequest struct {
	ID     int64 `json:"id"`
	IsDone bool  `json:"isDone"`
}

func toTodoResponse(t domain.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Content:     t.Content,
		IsDone:      t.IsDone,
		CreateDate:  t.CreatedAt,
		UpdatedDate: t.UpdatedAt,
	}
}

// TodoHandler serves the /todo routes.
type TodoHandler struct {
	TodoService *service.TodoService
}

// HandleGet godoc
//
//	@Summary	Get a todo by id
//	@Tags		todo
//	@Produce	json
//	@Param		id	query		int	true	"todo id"
//	@Success	200	{object}	TodoResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/todo/todo [get].
func (h *TodoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(w, r.URL.Query().Get("id"))
	if !ok {
		return
	}

	todo, err := h.TodoService.GetTodo(ctx, id)
	if err != nil {
		writeTodoError(w, ctx, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTodoResponse(todo))
}

// HandleList godoc
//
//	@Summary	List all todos
//	@Tags		todo
//	@Produce	json
//	@Success	200	{array}	TodoResponse
//	@Router		/todo/todos [get].
func (h *TodoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	todos, err := h.TodoService.GetTodos(ctx)
	if err != nil {
		writeTodoError(w, ctx, err)
		return
	}

	out := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, toTodoResponse(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary	Create a todo
//	@Tags		todo
//	@Accept		json
//	@Produce	json
//	@Param		todo	body		AddTodoRequest	true	"content"
//	@Success	201		{object}	TodoResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Router		/todo/todo [post].
func (h *TodoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}
	if req.Content == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "content is required")
		return
	}

	todo, err := h.TodoService.AddTodo(ctx, req.Content)
	if err != nil {
		writeTodoError(w, ctx, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTodoResponse(todo))
}

// HandleUpdate godoc
//
//	@Summary	Update a todo's completion flag
//	@Tags		todo
//	@Accept		json
//	@Produce	plain
//	@Param		todo	body		UpdateTodoRequest	true	"id and isDone"
//	@Success	200		{string}	string				"success"
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Router		/todo/todo [put].
func (h *TodoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}
	if req.ID <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	if err := h.TodoService.UpdateTodo(ctx, req.ID, req.IsDone); err != nil {
		writeTodoError(w, ctx, err)
		return
	}

	httpx.WriteText(w, http.StatusOK, "success")
}

// HandleDelete godoc
//
//	@Summary	Delete a todo by id
//	@Tags		todo
//	@Produce	plain
//	@Param		id	query		int		true	"todo id"
//	@Success	200	{string}	string	"success"
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/todo/todo [delete].
func (h *TodoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(w, r.URL.Query().Get("id"))
	if !ok {
		return
	}

	if err := h.TodoService.DeleteTodo(ctx, id); err != nil {
		writeTodoError(w, ctx, err)
		return
	}

	httpx.WriteText(w, http.StatusOK, "success")
}

func parseID(w http.ResponseWriter, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeTodoError(w http.ResponseWriter, ctx context.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "todo not found")
		return
	}
	slogx.FromContext(ctx).Error("todo operation failed", "err", err)
	httpx.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
}
