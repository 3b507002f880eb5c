package validator

import (
	"net/mail"
	"net/url"
	"strings"
)

// ValidateURL checks if a destination URL is acceptable for shortening
func ValidateURL(urlStr string) error {
	// Trim whitespace
	urlStr = strings.TrimSpace(urlStr)

	if urlStr == "" {
		return ErrEmptyURL
	}

	// Parse URL
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return ErrInvalidURL
	}

	// Check scheme
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return ErrInvalidScheme
	}

	// Check host
	if parsedURL.Host == "" {
		return ErrInvalidHost
	}

	return nil
}

// ValidateCustomAlias checks if a custom alias is valid.
// Aliases are 3-30 characters: letters, digits, hyphens, underscores.
func ValidateCustomAlias(alias string) error {
	if len(alias) < 3 || len(alias) > 30 {
		return ErrInvalidAliasLength
	}

	for _, char := range alias {
		if !isAlphanumeric(char) && char != '-' && char != '_' {
			return ErrInvalidAliasFormat
		}
	}

	return nil
}

// ValidateEmail checks if an email address is well-formed
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword checks the minimum password length
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}

func isAlphanumeric(char rune) bool {
	return (char >= 'a' && char <= 'z') ||
		(char >= 'A' && char <= 'Z') ||
		(char >= '0' && char <= '9')
}
