package service

import (
	"crypto/rand"
	"fmt"
)

// URL-safe alphabet for generated codes: letters, digits, hyphen, underscore.
// 64 characters, so mapping random bytes with a modulo is unbiased.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

// generateShortCode produces a random short code of the given length
// using crypto/rand.
func generateShortCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[b%byte(len(codeAlphabet))]
	}

	return string(buf), nil
}
