package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/padlockhq/todovault/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestUsersRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("create and get round trip", func(t *testing.T) {
		st := newTestStore(t)

		created, err := st.Users().CreateUser(ctx, "alice", "hash-value")
		require.NoError(t, err)
		require.Positive(t, created.ID)

		got, err := st.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
		require.Equal(t, "hash-value", got.PasswordHash)
		require.Nil(t, got.LastLogin)
		require.Nil(t, got.RefreshTokenHash)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		st := newTestStore(t)

		_, err := st.Users().CreateUser(ctx, "alice", "hash-1")
		require.NoError(t, err)

		_, err = st.Users().CreateUser(ctx, "alice", "hash-2")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("missing user yields not found", func(t *testing.T) {
		st := newTestStore(t)

		_, err := st.Users().GetUserByUsername(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)

		err = st.Users().UpdateRefreshTokenHash(ctx, "nobody", "fp")
		require.ErrorIs(t, err, store.ErrNotFound)

		err = st.Users().UpdateLastLogin(ctx, "nobody", time.Now())
		require.ErrorIs(t, err, store.ErrNotFound)

		err = st.Users().DeleteUser(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("refresh hash set and cleared", func(t *testing.T) {
		st := newTestStore(t)

		_, err := st.Users().CreateUser(ctx, "alice", "hash-value")
		require.NoError(t, err)

		require.NoError(t, st.Users().UpdateRefreshTokenHash(ctx, "alice", "fp-1"))
		u, err := st.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, u.RefreshTokenHash)
		require.Equal(t, "fp-1", *u.RefreshTokenHash)

		// Empty hash stores NULL.
		require.NoError(t, st.Users().UpdateRefreshTokenHash(ctx, "alice", ""))
		u, err = st.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Nil(t, u.RefreshTokenHash)
	})

	t.Run("last login round trips in UTC", func(t *testing.T) {
		st := newTestStore(t)

		_, err := st.Users().CreateUser(ctx, "alice", "hash-value")
		require.NoError(t, err)

		at := time.Date(2026, 8, 30, 12, 34, 56, 0, time.UTC)
		require.NoError(t, st.Users().UpdateLastLogin(ctx, "alice", at))

		u, err := st.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, u.LastLogin)
		require.True(t, u.LastLogin.Equal(at))
	})

	t.Run("is empty tracks population", func(t *testing.T) {
		st := newTestStore(t)

		empty, err := st.Users().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)

		_, err = st.Users().CreateUser(ctx, "alice", "hash-value")
		require.NoError(t, err)

		empty, err = st.Users().IsEmpty(ctx)
		require.NoError(t, err)
		require.False(t, empty)
	})
}

func TestTodosRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("list orders by id", func(t *testing.T) {
		st := newTestStore(t)

		first, err := st.Todos().CreateTodo(ctx, "first")
		require.NoError(t, err)
		second, err := st.Todos().CreateTodo(ctx, "second")
		require.NoError(t, err)

		todos, err := st.Todos().ListTodos(ctx)
		require.NoError(t, err)
		require.Len(t, todos, 2)
		require.Equal(t, first.ID, todos[0].ID)
		require.Equal(t, second.ID, todos[1].ID)
	})

	t.Run("update and delete require an existing row", func(t *testing.T) {
		st := newTestStore(t)

		require.ErrorIs(t, st.Todos().UpdateTodoDone(ctx, 1, true), store.ErrNotFound)
		require.ErrorIs(t, st.Todos().DeleteTodo(ctx, 1), store.ErrNotFound)
	})
}

func TestWithTx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("commit persists all writes", func(t *testing.T) {
		st := newTestStore(t)

		_, err := st.Users().CreateUser(ctx, "alice", "hash-value")
		require.NoError(t, err)

		err = st.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().UpdateRefreshTokenHash(ctx, "alice", "fp-1"); err != nil {
				return err
			}
			return tx.Users().UpdateLastLogin(ctx, "alice", time.Now())
		})
		require.NoError(t, err)

		u, err := st.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, u.RefreshTokenHash)
		require.NotNil(t, u.LastLogin)
	})

	t.Run("error rolls back everything", func(t *testing.T) {
		st := newTestStore(t)

		_, err := st.Users().CreateUser(ctx, "alice", "hash-value")
		require.NoError(t, err)

		err = st.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().UpdateRefreshTokenHash(ctx, "alice", "fp-1"); err != nil {
				return err
			}
			// Writing to a missing user fails the transaction.
			return tx.Users().UpdateLastLogin(ctx, "nobody", time.Now())
		})
		require.ErrorIs(t, err, store.ErrNotFound)

		u, err := st.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Nil(t, u.RefreshTokenHash)
	})
}
