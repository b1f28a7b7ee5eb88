package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUsername holds the authenticated username once a cookie guard
	// has verified the session token.
	CtxKeyUsername ctxKey = "username"

	// CtxKeySessionToken holds the raw token the guard verified. The refresh
	// flow needs it to corroborate against the stored fingerprint.
	CtxKeySessionToken ctxKey = "session_token"
)

// UsernameFromCtx returns the authenticated username, or "" when the request
// did not pass a cookie guard.
func UsernameFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUsername).(string); ok {
		return v
	}
	return ""
}

// SessionTokenFromCtx returns the raw verified token for this request.
func SessionTokenFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeySessionToken).(string); ok {
		return v
	}
	return ""
}
