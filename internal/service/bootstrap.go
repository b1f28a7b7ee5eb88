package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/padlockhq/todovault/internal/store"
	"github.com/padlockhq/todovault/pkg/cryptox"
	"github.com/padlockhq/todovault/pkg/slogx"
)

// BootstrapService seeds the first user. There is no signup endpoint, so a
// fresh deployment has no way to log in until a user exists.
type BootstrapService struct {
	Store store.Store

	Username string
	Password string
}

// EnsureUser creates the configured bootstrap user when the users table is
// empty. Idempotent: it does nothing when users already exist or when no
// bootstrap credentials are configured.
func (s *BootstrapService) EnsureUser(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	if s.Username == "" || s.Password == "" {
		return nil
	}

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check users: %w", err)
	}
	if !empty {
		return nil
	}

	hash, err := cryptox.HashPassword(s.Password)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	if _, err := s.Store.Users().CreateUser(ctx, s.Username, hash); err != nil {
		// Lost a race against another instance seeding the same user.
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil
		}
		return fmt.Errorf("create bootstrap user: %w", err)
	}

	l.Info("bootstrap user created", "username", s.Username)
	return nil
}
