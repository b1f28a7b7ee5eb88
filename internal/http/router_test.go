package http

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/padlockhq/todovault/internal/service"
	"github.com/padlockhq/todovault/internal/store"
	"github.com/padlockhq/todovault/internal/store/drivers/sqlite"
	"github.com/padlockhq/todovault/pkg/cryptox"
	"github.com/padlockhq/todovault/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router *Router
	store  store.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter(
		jwtx.NewVerifier("access-secret", "test-issuer"),
		jwtx.NewVerifier("refresh-secret", "test-issuer"),
		"test",
		st,
		logger,
	)

	router.AuthService = &service.AuthService{
		Store:         st,
		AccessSigner:  jwtx.NewSigner("access-secret"),
		RefreshSigner: jwtx.NewSigner("refresh-secret"),
		Issuer:        "test-issuer",
		AccessTTL:     30 * time.Minute,
		RefreshTTL:    24 * time.Hour,
	}
	router.TodoService = &service.TodoService{Store: st}
	router.ApplyRoutes()

	return &testEnv{router: router, store: st}
}

func (e *testEnv) seedUser(t *testing.T, username, password string) {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)
	_, err = e.store.Users().CreateUser(context.Background(), username, hash)
	require.NoError(t, err)
}

func (e *testEnv) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// login performs a full login and returns the session cookie pair.
func (e *testEnv) login(t *testing.T, username, password string) (access, refresh *http.Cookie) {
	t.Helper()

	rec := e.do(http.MethodPost, "/auth/login",
		`{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, c := range rec.Result().Cookies() {
		switch c.Name {
		case service.AccessCookieName:
			access = c
		case service.RefreshCookieName:
			refresh = c
		}
	}
	require.NotNil(t, access)
	require.NotNil(t, refresh)
	return access, refresh
}
