package jwtx

import "github.com/golang-jwt/jwt/v5"

// Signer signs Claims with a symmetric HS256 secret. Access and refresh
// tokens each get their own Signer so the two are never interchangeable.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}
