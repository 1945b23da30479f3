package domain

import (
	"crypto/rand"
	"fmt"
)

// passwordAlphabet deliberately excludes visually ambiguous characters
// (I, O, l, 0, 1).
const passwordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789!@#$%&*_-"

// GeneratedPasswordLength is the length of auto-generated admin passwords.
const GeneratedPasswordLength = 12

// GeneratePassword produces a random password from the fixed alphabet
// using a cryptographically strong source. It is shown to the operator
// exactly once and never stored here.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		length = GeneratedPasswordLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = passwordAlphabet[int(b)%len(passwordAlphabet)]
	}
	return string(out), nil
}
