package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a plaintext does not match its stored hash.
var ErrMismatch = errors.New("cryptox: hash mismatch")

// HashPassword generates a bcrypt hash of the given plaintext. The cost is
// bcrypt's default, which keeps the function intentionally slow.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext against a bcrypt hash. The comparison
// semantics are delegated entirely to bcrypt. Returns ErrMismatch on any
// failure so callers never learn which check failed.
func VerifyPassword(password, encodedHash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}
