package domain

import "time"

// Todo is an independent entity with no relationship to User. Content is
// immutable after creation; only IsDone and UpdatedAt change.
type Todo struct {
	ID        int64
	Content   string
	IsDone    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
