package service

import (
	"context"

	"github.com/padlockhq/todovault/internal/domain"
	"github.com/padlockhq/todovault/internal/store"
	"github.com/padlockhq/todovault/pkg/slogx"
)

// TodoService is plain CRUD over the todos table. No interaction with the
// session lifecycle; concurrency is whatever the store provides natively
// (last-write-wins).
type TodoService struct {
	Store store.Store
}

// AddTodo creates a todo with the completion flag unset.
func (s *TodoService) AddTodo(ctx context.Context, content string) (domain.Todo, error) {
	todo, err := s.Store.Todos().CreateTodo(ctx, content)
	if err != nil {
		return domain.Todo{}, err
	}
	slogx.FromContext(ctx).Info("todo created", "id", todo.ID)
	return todo, nil
}

// GetTodo fetches a todo by id, store.ErrNotFound if absent.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (domain.Todo, error) {
	return s.Store.Todos().GetTodoByID(ctx, id)
}

// GetTodos returns every todo in insertion order.
func (s *TodoService) GetTodos(ctx context.Context) ([]domain.Todo, error) {
	return s.Store.Todos().ListTodos(ctx)
}

// UpdateTodo flips the completion flag. Content is immutable after creation.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, isDone bool) error {
	return s.Store.Todos().UpdateTodoDone(ctx, id, isDone)
}

// DeleteTodo removes a todo by id, store.ErrNotFound if absent.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	return s.Store.Todos().DeleteTodo(ctx, id)
}
