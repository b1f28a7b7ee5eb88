package store

import (
	"context"
	"errors"
	"time"

	"github.com/padlockhq/todovault/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep the concerns tidy and let a Tx expose
// the same surface as the root store.
type Store interface {
	Users() Users
	Todos() Todos

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this over
	// Tx for multi-step operations that must be atomic (e.g. the login-time
	// refresh-hash overwrite plus last-login bump).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByUsername is the lookup used by every auth operation.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user and returns it with the storage-assigned id.
	CreateUser(ctx context.Context, username, passwordHash string) (domain.User, error)

	// UpdateRefreshTokenHash overwrites the stored refresh-token hash,
	// invalidating any previously issued refresh token. Empty hash clears it.
	UpdateRefreshTokenHash(ctx context.Context, username, hash string) error

	// UpdateLastLogin sets last_login to the given instant.
	UpdateLastLogin(ctx context.Context, username string, at time.Time) error

	// DeleteUser removes a user by username.
	DeleteUser(ctx context.Context, username string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Todos interface {
	// CreateTodo inserts a new todo with is_done=false and returns it with
	// the storage-assigned id and timestamps.
	CreateTodo(ctx context.Context, content string) (domain.Todo, error)

	// GetTodoByID returns a todo or ErrNotFound.
	GetTodoByID(ctx context.Context, id int64) (domain.Todo, error)

	// ListTodos returns all todos in insertion order.
	ListTodos(ctx context.Context) ([]domain.Todo, error)

	// UpdateTodoDone flips the completion flag, bumping updated_at.
	// Returns ErrNotFound if the id is absent.
	UpdateTodoDone(ctx context.Context, id int64, isDone bool) error

	// DeleteTodo removes a todo by id. Returns ErrNotFound if the id is absent.
	DeleteTodo(ctx context.Context, id int64) error
}
