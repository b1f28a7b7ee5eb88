package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTodoEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("create returns the stored todo", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodPost, "/todo/todo", `{"content":"buy milk"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "buy milk", body["content"])
		require.Equal(t, false, body["isDone"])
		require.Contains(t, body, "id")
		require.Contains(t, body, "createdate")
		require.Contains(t, body, "updateddate")
	})

	t.Run("create rejects empty content", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodPost, "/todo/todo", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get by id", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodPost, "/todo/todo", `{"content":"water plants"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		var created TodoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = env.do(http.MethodGet, "/todo/todo?id=1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got TodoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Equal(t, created.ID, got.ID)
		require.Equal(t, "water plants", got.Content)
	})

	t.Run("get validates the id", func(t *testing.T) {
		env := newTestEnv(t)

		for _, raw := range []string{"", "abc", "0", "-1"} {
			rec := env.do(http.MethodGet, "/todo/todo?id="+raw, "")
			require.Equal(t, http.StatusBadRequest, rec.Code, "id=%q", raw)
		}

		rec := env.do(http.MethodGet, "/todo/todo?id=9999", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list returns every todo in order", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodGet, "/todo/todos", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[]`, rec.Body.String())

		env.do(http.MethodPost, "/todo/todo", `{"content":"first"}`)
		env.do(http.MethodPost, "/todo/todo", `{"content":"second"}`)
		env.do(http.MethodPost, "/todo/todo", `{"content":"third"}`)

		rec = env.do(http.MethodGet, "/todo/todos", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var todos []TodoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
		require.Len(t, todos, 3)
		require.Equal(t, "first", todos[0].Content)
		require.Equal(t, "second", todos[1].Content)
		require.Equal(t, "third", todos[2].Content)
	})

	t.Run("update flips the flag", func(t *testing.T) {
		env := newTestEnv(t)

		env.do(http.MethodPost, "/todo/todo", `{"content":"call dentist"}`)

		rec := env.do(http.MethodPut, "/todo/todo", `{"id":1,"isDone":true}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "success", rec.Body.String())

		rec = env.do(http.MethodGet, "/todo/todo?id=1", "")
		var got TodoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.True(t, got.IsDone)
		require.Equal(t, "call dentist", got.Content)
	})

	t.Run("update missing todo", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodPut, "/todo/todo", `{"id":9999,"isDone":true}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		env := newTestEnv(t)

		env.do(http.MethodPost, "/todo/todo", `{"content":"ephemeral"}`)

		rec := env.do(http.MethodDelete, "/todo/todo?id=1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "success", rec.Body.String())

		rec = env.do(http.MethodGet, "/todo/todo?id=1", "")
		require.Equal(t, http.StatusNotFound, rec.Code)

		rec = env.do(http.MethodDelete, "/todo/todo?id=1", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/livez", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var live HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &live))
	require.Equal(t, "ok", live.Status)
	require.Nil(t, live.Checks)

	rec = env.do(http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var ready HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ready))
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestReadyzDegraded(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	require.NoError(t, env.store.Close())

	rec := env.do(http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var ready HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ready))
	require.Equal(t, "degraded", ready.Status)
}
