package service

import (
	"context"
	"testing"

	"github.com/padlockhq/todovault/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestBootstrapEnsureUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("seeds the first user", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st, Username: "admin", Password: "change-me-please"}

		require.NoError(t, svc.EnsureUser(ctx))

		u, err := st.Users().GetUserByUsername(ctx, "admin")
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("change-me-please", u.PasswordHash))
	})

	t.Run("idempotent on repeat calls", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st, Username: "admin", Password: "change-me-please"}

		require.NoError(t, svc.EnsureUser(ctx))
		require.NoError(t, svc.EnsureUser(ctx))
	})

	t.Run("does nothing when users already exist", func(t *testing.T) {
		st := newTestStore(t)
		seedUser(t, st, "existing", "some-password-1")

		svc := &BootstrapService{Store: st, Username: "admin", Password: "change-me-please"}
		require.NoError(t, svc.EnsureUser(ctx))

		_, err := st.Users().GetUserByUsername(ctx, "admin")
		require.Error(t, err)
	})

	t.Run("does nothing without configured credentials", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st}

		require.NoError(t, svc.EnsureUser(ctx))

		empty, err := st.Users().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)
	})
}
