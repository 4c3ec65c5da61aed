package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// verificationTokenBytes is the entropy of a raw verification token.
// 32 random bytes give 256 bits, rendered as 64 hex characters.
const verificationTokenBytes = 32

// NewVerificationToken mints a fresh email-verification token.
//
// It draws 32 cryptographically secure random bytes, renders them as a
// transport-safe hex string (the raw token, which is returned to the caller
// exactly once and embedded in the verification link), and computes the
// deterministic SHA-256 digest that is the only form ever persisted.
//
// The digest is deliberately unsalted: at verification time the server only
// holds the raw token presented by the user and must re-derive the stored
// hash from it. Compromise of the persistent store therefore never exposes
// a redeemable token.
//
// Returns:
//
//	raw   - the hex-encoded token for the email link
//	hash  - the hex-encoded SHA-256 digest to persist
//	error - non-nil if the system randomness source fails
func NewVerificationToken() (raw string, hash string, err error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("error generating verification token: %w", err)
	}

	raw = hex.EncodeToString(buf)
	return raw, HashVerificationToken(raw), nil
}

// HashVerificationToken computes the deterministic SHA-256 digest of a raw
// verification token, hex-encoded. The same raw token always produces the
// same digest, which is what makes the hash-lookup at verification time
// possible.
func HashVerificationToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
