package sqlite

import (
	"context"
	"time"

	"github.com/padlockhq/todovault/internal/domain"
)

type todosRepo struct {
	q querier
}

const todoColumns = `id, content, is_done, created_at, updated_at`

func (r *todosRepo) CreateTodo(ctx context.Context, content string) (domain.Todo, error) {
	now := time.Now().UTC()
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO todos (content, is_done, created_at, updated_at) VALUES (?, 0, ?, ?)`,
		content, now, now)
	if err != nil {
		return domain.Todo{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Todo{}, err
	}
	return domain.Todo{
		ID:        id,
		Content:   content,
		IsDone:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *todosRepo) GetTodoByID(ctx context.Context, id int64) (domain.Todo, error) {
	var t domain.Todo
	err := r.q.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id).
		Scan(&t.ID, &t.Content, &t.IsDone, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return t, nil
}

func (r *todosRepo) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Content, &t.IsDone, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *todosRepo) UpdateTodoDone(ctx context.Context, id int64, isDone bool) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE todos SET is_done = ?, updated_at = ? WHERE id = ?`,
		isDone, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *todosRepo) DeleteTodo(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}
