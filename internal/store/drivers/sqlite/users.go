package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/padlockhq/todovault/internal/domain"
	"github.com/padlockhq/todovault/internal/store"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, username, password_hash, created_at, updated_at, last_login, refresh_token_hash`

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, username, passwordHash string) (domain.User, error) {
	now := time.Now().UTC()
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		username, passwordHash, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, store.ErrAlreadyExists
		}
		return domain.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (r *usersRepo) UpdateRefreshTokenHash(ctx context.Context, username, hash string) error {
	stored := sql.NullString{String: hash, Valid: hash != ""}
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET refresh_token_hash = ?, updated_at = ? WHERE username = ?`,
		stored, time.Now().UTC(), username)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, username string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET last_login = ?, updated_at = ? WHERE username = ?`,
		at.UTC(), time.Now().UTC(), username)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *usersRepo) DeleteUser(ctx context.Context, username string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func requireRowChanged(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// isUniqueViolation detects SQLite constraint errors without depending on the
// driver's error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
