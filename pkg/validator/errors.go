package validator

import "errors"

var (
	ErrEmptyURL           = errors.New("URL cannot be empty")
	ErrInvalidURL         = errors.New("invalid URL format")
	ErrInvalidScheme      = errors.New("URL must use http or https scheme")
	ErrInvalidHost        = errors.New("URL must have a valid host")
	ErrInvalidAliasLength = errors.New("custom alias must be 3-30 characters")
	ErrInvalidAliasFormat = errors.New("custom alias must be alphanumeric with optional hyphens and underscores")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrEmptyEmail         = errors.New("email cannot be empty")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)
