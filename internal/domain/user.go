package domain

import "time"

// User is a registered account. Email is unique; PasswordHash is a bcrypt
// hash, never the plain credential.
type User struct {
	ID           string // UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser creates an account with an already-hashed password.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
