package models

import "time"

// User is a registered account. The email is stored lower-cased and is
// unique across users. PasswordHash is a bcrypt hash and never leaves the
// server.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Image        string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the authenticated caller as seen by the rest of the system:
// the public slice of a User extracted from a validated session token.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}
