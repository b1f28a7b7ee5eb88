package service

import (
	"context"
	"testing"

	"github.com/padlockhq/todovault/internal/store"
	"github.com/stretchr/testify/require"
)

func TestTodoLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	svc := &TodoService{Store: st}

	t.Run("add starts incomplete", func(t *testing.T) {
		todo, err := svc.AddTodo(ctx, "buy milk")
		require.NoError(t, err)
		require.Positive(t, todo.ID)
		require.Equal(t, "buy milk", todo.Content)
		require.False(t, todo.IsDone)
		require.False(t, todo.CreatedAt.IsZero())
	})

	t.Run("get returns the stored todo", func(t *testing.T) {
		created, err := svc.AddTodo(ctx, "water plants")
		require.NoError(t, err)

		got, err := svc.GetTodo(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
		require.Equal(t, "water plants", got.Content)
	})

	t.Run("list returns todos in insertion order", func(t *testing.T) {
		todos, err := svc.GetTodos(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(todos), 2)
		for i := 1; i < len(todos); i++ {
			require.Greater(t, todos[i].ID, todos[i-1].ID)
		}
	})

	t.Run("update flips only the completion flag", func(t *testing.T) {
		created, err := svc.AddTodo(ctx, "call dentist")
		require.NoError(t, err)

		require.NoError(t, svc.UpdateTodo(ctx, created.ID, true))

		got, err := svc.GetTodo(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, got.IsDone)
		require.Equal(t, "call dentist", got.Content)

		require.NoError(t, svc.UpdateTodo(ctx, created.ID, false))
		got, err = svc.GetTodo(ctx, created.ID)
		require.NoError(t, err)
		require.False(t, got.IsDone)
	})

	t.Run("delete removes the todo", func(t *testing.T) {
		created, err := svc.AddTodo(ctx, "ephemeral")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTodo(ctx, created.ID))

		_, err = svc.GetTodo(ctx, created.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTodoMissingIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	svc := &TodoService{Store: st}

	_, err := svc.GetTodo(ctx, 9999)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = svc.UpdateTodo(ctx, 9999, true)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = svc.DeleteTodo(ctx, 9999)
	require.ErrorIs(t, err, store.ErrNotFound)
}
