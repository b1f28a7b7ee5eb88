package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token,
// base64url-encoded. Tokens are stored in the database only as fingerprints,
// so a database compromise does not expose usable tokens. bcrypt is not an
// option here: JWTs exceed its 72-byte input limit.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// MatchToken reports whether the given token matches a stored fingerprint.
// The comparison is constant time.
func MatchToken(token, fingerprint string) bool {
	fp := FingerprintToken(token)
	return subtle.ConstantTimeCompare([]byte(fp), []byte(fingerprint)) == 1
}
