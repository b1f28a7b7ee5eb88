package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/padlockhq/todovault/internal/domain"
	"github.com/padlockhq/todovault/internal/store"
	"github.com/padlockhq/todovault/pkg/cryptox"
	"github.com/padlockhq/todovault/pkg/jwtx"
	"github.com/padlockhq/todovault/pkg/slogx"
)

// ErrInvalidCredentials covers every authentication failure uniformly: user
// missing, wrong password, refresh-hash mismatch. Handlers must surface all
// of them identically so callers can't enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid_credentials")

// Session cookie names. Fixed: clients hold exactly these two cookies.
const (
	AccessCookieName  = "Authentication"
	RefreshCookieName = "Refresh"
)

// AuthService implements the session lifecycle: login, refresh, logout and
// session check. Sessions are not tracked server-side; the client-held cookie
// pair is the session, with only the refresh token corroborated against a
// stored fingerprint.
type AuthService struct {
	Store store.Store

	AccessSigner  *jwtx.Signer
	RefreshSigner *jwtx.Signer
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Login verifies the credentials and issues the access/refresh cookie pair.
// On success the stored refresh-token hash is overwritten (invalidating every
// previously issued refresh token for this user) and last_login is set to the
// time the operation executes.
func (s *AuthService) Login(ctx context.Context, username, password string) (accessCookie, refreshCookie string, err error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("login rejected", "username", username)
		return "", "", ErrInvalidCredentials
	}

	now := time.Now()

	accessToken, err := s.AccessSigner.Sign(jwtx.NewClaims(username, s.Issuer, s.AccessTTL, now))
	if err != nil {
		return "", "", fmt.Errorf("sign access token: %w", err)
	}
	refreshToken, err := s.RefreshSigner.Sign(jwtx.NewClaims(username, s.Issuer, s.RefreshTTL, now))
	if err != nil {
		return "", "", fmt.Errorf("sign refresh token: %w", err)
	}

	// Overwrite the stored hash and bump last_login atomically. Two racing
	// logins for the same user are last-write-wins on the hash.
	fp := cryptox.FingerprintToken(refreshToken)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateRefreshTokenHash(ctx, username, fp); err != nil {
			return err
		}
		return tx.Users().UpdateLastLogin(ctx, username, now)
	})
	if err != nil {
		return "", "", fmt.Errorf("persist session: %w", err)
	}

	l.Info("login succeeded", "username", username)

	return SessionCookie(AccessCookieName, accessToken, int(s.AccessTTL.Seconds())),
		SessionCookie(RefreshCookieName, refreshToken, int(s.RefreshTTL.Seconds())),
		nil
}

// Refresh corroborates an already signature-verified refresh token against
// the stored fingerprint and issues a fresh access cookie. The refresh token
// itself is not rotated here; it is only re-issued on the next full Login.
func (s *AuthService) Refresh(ctx context.Context, username, presentedToken string) (string, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	// A superseded token still carries a valid signature; this check is what
	// enforces the single-active-refresh-token policy.
	if u.RefreshTokenHash == nil || !cryptox.MatchToken(presentedToken, *u.RefreshTokenHash) {
		return "", ErrInvalidCredentials
	}

	accessToken, err := s.AccessSigner.Sign(jwtx.NewClaims(username, s.Issuer, s.AccessTTL, time.Now()))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return SessionCookie(AccessCookieName, accessToken, int(s.AccessTTL.Seconds())), nil
}

// Logout returns cookie directives that instruct the client to discard both
// session cookies. Stateless: no storage access, no server-side revocation.
func (s *AuthService) Logout() (expiredAccessCookie, expiredRefreshCookie string) {
	return SessionCookie(AccessCookieName, "", 0), SessionCookie(RefreshCookieName, "", 0)
}

// SessionCheck resolves an authenticated username to its public identity.
// Token validity does not imply current existence: a user deleted after
// token issuance yields store.ErrNotFound, never a stale identity.
func (s *AuthService) SessionCheck(ctx context.Context, username string) (domain.PublicUser, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return u.Public(), nil
}

// SessionCookie formats a session cookie directive. The literal template is
// part of the public contract.
func SessionCookie(name, token string, maxAge int) string {
	return fmt.Sprintf("%s=%s; HttpOnly; Path=/; Max-Age=%d", name, token, maxAge)
}
