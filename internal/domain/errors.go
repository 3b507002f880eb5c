package domain

import "errors"

// Domain errors. Handlers map these to HTTP statuses with errors.Is,
// so services must wrap rather than replace them.
var (
	ErrNotFound           = errors.New("not found")
	ErrAliasTaken         = errors.New("custom alias is already taken")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrLoginRequired      = errors.New("login required to use custom aliases")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotOwner           = errors.New("not authorized to access this resource")
)
