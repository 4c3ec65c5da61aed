package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, credential data and the state of the
// outstanding email-verification token, if any.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the account, assigned at creation
	// (UUID v7) and immutable afterwards.
	ID string `json:"id"`

	// Username is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Username string `json:"username"`

	// Email is the unique lookup key used during login.
	// Creation fails if another account already holds the same address.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized or logged.
	PasswordHash string `json:"-"`

	// IsVerified reports whether the account's email address has been
	// confirmed. It starts false and is set true exactly once by a
	// successful token verification; this subsystem never resets it.
	IsVerified bool `json:"is_verified"`

	// VerificationTokenHash is the SHA-256 digest of the currently
	// outstanding verification token, or nil when none is outstanding.
	// The raw token itself is never persisted.
	VerificationTokenHash *string `json:"-"`

	// VerificationTokenExpiresAt is the absolute expiry of the outstanding
	// verification token. Present if and only if VerificationTokenHash is.
	VerificationTokenExpiresAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicView is the outward-facing projection of a User embedded in login
// responses and admin listings.
type PublicView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the outward-facing projection of the user,
// stripped of credential and token state.
func (u User) Public() PublicView {
	return PublicView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
