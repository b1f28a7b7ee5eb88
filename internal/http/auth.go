package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/padlockhq/todovault/internal/service"
	"github.com/padlockhq/todovault/internal/store"
	"github.com/padlockhq/todovault/pkg/httpx"
	"github.com/padlockhq/todovault/pkg/slogx"
)

// LoginRequest is the credentials body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IsAuthenticatedResponse is the body for GET /auth/is_authenticated.
type IsAuthenticatedResponse struct {
	Username string `json:"username"`
}

// LoginHandler serves POST /auth/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Verifies the credentials and sets the Authentication and Refresh cookies.
//	@Tags			auth
//	@Accept			json
//	@Produce		plain
//	@Param			credentials	body		LoginRequest	true	"username and password"
//	@Success		201			{string}	string			"Login successful"
//	@Failure		400			{object}	httpx.ErrorResponse
//	@Failure		401			{object}	httpx.ErrorResponse
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	accessCookie, refreshCookie, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
			return
		}
		log.Error("login failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	httpx.NoCache(w)
	w.Header().Add("Set-Cookie", accessCookie)
	w.Header().Add("Set-Cookie", refreshCookie)
	httpx.WriteText(w, http.StatusCreated, "Login successful")
}

// LogoutHandler serves POST /auth/logout.
type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Log out
//	@Description	Clears both session cookies. Stateless; no server-side revocation.
//	@Tags			auth
//	@Produce		plain
//	@Security		CookieAuth
//	@Success		201	{string}	string	"Logout successful"
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Router			/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	expiredAccess, expiredRefresh := h.AuthService.Logout()

	httpx.NoCache(w)
	w.Header().Add("Set-Cookie", expiredAccess)
	w.Header().Add("Set-Cookie", expiredRefresh)
	httpx.WriteText(w, http.StatusCreated, "Logout successful")
}

// IsAuthenticatedHandler serves GET /auth/is_authenticated.
type IsAuthenticatedHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Check session
//	@Description	Returns the authenticated user's identity. 404 when the user no longer exists.
//	@Tags			auth
//	@Produce		json
//	@Security		CookieAuth
//	@Success		200	{object}	IsAuthenticatedResponse
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse
//	@Router			/auth/is_authenticated [get].
func (h *IsAuthenticatedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromCtx(ctx)
	if username == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}

	user, err := h.AuthService.SessionCheck(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		log.Error("session check failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, IsAuthenticatedResponse{Username: user.Username})
}

// RefreshHandler serves GET /auth/refresh.
type RefreshHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Refresh the access token
//	@Description	Corroborates the Refresh cookie against the stored hash and sets a new Authentication cookie.
//	@Tags			auth
//	@Produce		plain
//	@Security		CookieAuth
//	@Success		200	{string}	string	"Refresh successful"
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Router			/auth/refresh [get].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromCtx(ctx)
	presented := httpx.SessionTokenFromCtx(ctx)
	if username == "" || presented == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}

	accessCookie, err := h.AuthService.Refresh(ctx, username, presented)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
			return
		}
		log.Error("refresh failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	httpx.NoCache(w)
	w.Header().Add("Set-Cookie", accessCookie)
	httpx.WriteText(w, http.StatusOK, "Refresh successful")
}
