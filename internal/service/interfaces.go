package service

import (
	"context"

	"github.com/ametelin/veriauth/internal/mailer"
	"github.com/ametelin/veriauth/models"
)

// AuthService covers the account lifecycle (registration, email
// verification) and authentication (login, bearer token validation).
type AuthService interface {
	// Register creates a new unverified account, mints its verification
	// token and requests dispatch of the verification email. The account
	// survives a failed dispatch; that failure is reported as
	// ErrVerificationEmailNotSent alongside the created account.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// VerifyEmail redeems a raw verification token, flipping the matching
	// account to verified. Wrong, expired and already consumed tokens all
	// fail with the same ErrInvalidOrExpiredToken.
	VerifyEmail(ctx context.Context, rawToken string) (models.User, error)

	// Login validates credentials and returns the account together with a
	// freshly minted bearer token. Unknown email and wrong password are
	// deliberately merged into ErrInvalidCredentials; a correct password on
	// an unverified account fails with the distinct ErrEmailNotVerified.
	Login(ctx context.Context, email, password string) (models.User, models.Token, error)

	// CreateToken issues a signed bearer token for the given account.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a presented bearer token and resolves it to the
	// identity it carries. Any validation failure is normalised to
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountService exposes the administrative accessors. These are thin
// pass-throughs over the store with no business rules of their own.
type AccountService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error
	DeleteAllUsers(ctx context.Context) (int64, error)
}

// MailDispatcher is the outbound-mail collaborator consumed by the auth
// service. Implemented by [mailer.Dispatcher].
type MailDispatcher interface {
	Enqueue(msg mailer.Message) error
}
