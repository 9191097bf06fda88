package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"regexp"
)

// Hash returns the SHA-256 hex digest of a password. The credential store
// keeps unsalted SHA-256 digests, so verification must reproduce the exact
// stored value.
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Verify compares a plaintext password against a stored digest.
func Verify(password, digest string) bool {
	computed := Hash(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

var (
	letterPattern = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern  = regexp.MustCompile(`[0-9]`)
)

// ValidateStrength checks password requirements: at least 8 characters,
// containing both letters and digits.
func ValidateStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if !letterPattern.MatchString(password) || !digitPattern.MatchString(password) {
		return errors.New("password must contain both letters and digits")
	}
	return nil
}
