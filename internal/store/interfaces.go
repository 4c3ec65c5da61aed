package store

import (
	"context"
	"time"

	"github.com/ametelin/veriauth/models"
)

// UserRepository is the persistence contract consumed by the service layer.
//
// The store is the sole point of shared mutability in the application: it is
// expected to enforce email uniqueness on create and to apply the
// verification state transition atomically (match-and-clear in one
// operation), so that concurrent registrations and concurrent verification
// attempts each resolve to exactly one winner.
type UserRepository interface {
	// CreateUser persists a new unverified account and returns the canonical
	// stored record. Fails with ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account whose email matches exactly,
	// or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// ConsumeVerificationToken atomically marks as verified the single
	// account whose outstanding token hash matches tokenHash and whose
	// expiry is strictly after now, clearing both token fields in the same
	// statement. Returns ErrNoTokenMatch when no such account exists;
	// the caller cannot tell a wrong token from an expired or consumed one.
	ConsumeVerificationToken(ctx context.Context, tokenHash string, now time.Time) (models.User, error)

	// GetAllUsers returns every stored account.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// DeleteUser removes the account with the given ID.
	// Returns ErrNoUserWasFound if it does not exist.
	DeleteUser(ctx context.Context, id string) error

	// DeleteAllUsers removes every account and reports how many were removed.
	DeleteAllUsers(ctx context.Context) (int64, error)
}
