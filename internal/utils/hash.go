package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor applied to every password
// digest produced by HashPassword. Raising it makes offline guessing more
// expensive; existing digests keep the cost they were created with and
// remain verifiable.
const PasswordHashCost = 10

// HashPassword computes a salted bcrypt digest of the given plaintext
// password.
//
// bcrypt generates a fresh random salt per call, so hashing the same
// password twice yields different digests; digests are comparable only
// through VerifyPassword.
//
// Parameters:
//
//	password - plaintext password to hash; must be non-empty
//
// Returns:
//
//	string - the bcrypt digest in its standard encoded form
//	error  - non-nil if the password is empty or hashing fails
//
// Example usage:
//
//	digest, err := utils.HashPassword("pw123")
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password provided")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password matches the given
// bcrypt digest.
//
// The comparison runs in time independent of where the first mismatching
// byte occurs, to the extent bcrypt guarantees this. A malformed digest
// yields false rather than a distinguishable error, so callers cannot leak
// digest state through error handling.
//
// Parameters:
//
//	password - plaintext candidate password
//	digest   - stored bcrypt digest to compare against
//
// Returns:
//
//	bool - true only if the password produced the digest
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
