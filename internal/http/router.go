package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/padlockhq/todovault/internal/service"
	"github.com/padlockhq/todovault/internal/store"
	"github.com/padlockhq/todovault/pkg/httpx"
	"github.com/padlockhq/todovault/pkg/jwtx"
	"github.com/padlockhq/todovault/pkg/slogx"

	_ "github.com/padlockhq/todovault/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	accessVerifier  *jwtx.Verifier
	refreshVerifier *jwtx.Verifier
	buildVersion    string
	startTime       time.Time
	logger          *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	TodoService *service.TodoService
}

func NewRouter(
	accessVerifier, refreshVerifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:             http.NewServeMux(),
		accessVerifier:  accessVerifier,
		refreshVerifier: refreshVerifier,
		buildVersion:    buildVersion,
		startTime:       time.Now(),
		store:           st,
		logger:          logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTodos()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			TodoVault API
//	@version		0.1.0
//	@description	Cookie-based JWT authentication and a Todo CRUD resource.
//	@description
//	@description	Sessions are a pair of HttpOnly cookies: a short-lived Authentication
//	@description	cookie and a longer-lived Refresh cookie corroborated against a stored hash.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						Authentication
//	@description				JWT access token delivered as an HttpOnly cookie.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	accessGuard := httpx.CookieAuthMiddleware(service.AccessCookieName, r.accessVerifier)
	refreshGuard := httpx.CookieAuthMiddleware(service.RefreshCookieName, r.refreshVerifier)

	login := &LoginHandler{AuthService: r.AuthService}
	logout := &LogoutHandler{AuthService: r.AuthService}
	isAuthed := &IsAuthenticatedHandler{AuthService: r.AuthService}
	refresh := &RefreshHandler{AuthService: r.AuthService}

	// POST /auth/login - strict rate limit by IP (credential guessing)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(login,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /auth/logout",
		httpx.Chain(logout,
			accessGuard,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /auth/is_authenticated",
		httpx.Chain(isAuthed,
			accessGuard,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// The refresh guard only checks the signature; the handler corroborates
	// the token against the stored hash.
	r.Mux.Handle("GET /auth/refresh",
		httpx.Chain(refresh,
			refreshGuard,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerTodos() {
	h := &TodoHandler{TodoService: r.TodoService}

	r.Mux.Handle("GET /todo/todo", http.HandlerFunc(h.HandleGet))
	r.Mux.Handle("GET /todo/todos", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("POST /todo/todo", http.HandlerFunc(h.HandleCreate))
	r.Mux.Handle("PUT /todo/todo", http.HandlerFunc(h.HandleUpdate))
	r.Mux.Handle("DELETE /todo/todo", http.HandlerFunc(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
