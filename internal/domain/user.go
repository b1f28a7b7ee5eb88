package domain

import "time"

// User is the identity record as stored. PasswordHash and RefreshTokenHash
// never leave the auth service boundary; use Public() for anything that is
// serialised towards a client.
type User struct {
	ID               int64
	Username         string
	PasswordHash     string     // bcrypt encoded
	CreatedAt        time.Time
	UpdatedAt        time.Time
	LastLogin        *time.Time // nil until first successful login
	RefreshTokenHash *string    // fingerprint of the active refresh token, nil when none
}

// PublicUser is the client-visible projection of a User.
type PublicUser struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	CreatedAt time.Time  `json:"createdate"`
	UpdatedAt time.Time  `json:"updateddate"`
	LastLogin *time.Time `json:"lastLogin"`
}

// Public strips the credential material from a User.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		LastLogin: u.LastLogin,
	}
}
