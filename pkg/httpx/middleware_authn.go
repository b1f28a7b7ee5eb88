package httpx

import (
	"context"
	"net/http"

	"github.com/padlockhq/todovault/pkg/jwtx"
	"github.com/padlockhq/todovault/pkg/slogx"
)

// CookieAuthMiddleware guards a route with a session cookie. It reads the
// named cookie, verifies the JWT with the given verifier (signature, expiry,
// issuer) and injects the username plus the raw token into the request
// context. Every failure is the same generic 401; callers never learn which
// check tripped.
func CookieAuthMiddleware(cookieName string, v *jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				writeUnauthorized(w)
				return
			}

			claims, err := v.Verify(cookie.Value)
			if err != nil {
				log.Warn("session token verification failed", "cookie", cookieName, "err", err)
				writeUnauthorized(w)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUsername, claims.Username)
			ctx = context.WithValue(ctx, CtxKeySessionToken, cookie.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
}
