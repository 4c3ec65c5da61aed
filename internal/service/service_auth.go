package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ametelin/veriauth/internal/config"
	"github.com/ametelin/veriauth/internal/logger"
	"github.com/ametelin/veriauth/internal/mailer"
	"github.com/ametelin/veriauth/internal/store"
	"github.com/ametelin/veriauth/internal/utils"
	"github.com/ametelin/veriauth/models"
)

// authService is the concrete implementation of AuthService.
// It orchestrates registration, email verification and login using a
// UserRepository for persistence, bcrypt for password hashing, SHA-256
// hashed random tokens for email verification and HMAC-SHA256 JWTs as
// bearer tokens.
type authService struct {
	// userRepository is the data-access layer used to create, look up and
	// mutate accounts.
	userRepository store.UserRepository

	// dispatcher queues outbound verification emails. Dispatch is
	// fire-and-forget from this service's perspective; only the enqueue
	// itself can fail.
	dispatcher MailDispatcher

	// uuidGen assigns identifiers to new accounts.
	uuidGen *utils.UUIDGenerator

	// tokenSignKey is the process-wide secret used to sign and verify JWT
	// bearer tokens. Read-only after construction; rotating it invalidates
	// all outstanding bearer tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// verificationTTL is the window within which a freshly minted
	// verification token can be redeemed.
	verificationTTL time.Duration

	// verifyLinkBase is the public URL prefix the raw verification token is
	// appended to when composing the email link.
	verifyLinkBase string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and mail dispatcher, populated with security parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, dispatcher MailDispatcher, cfg *config.StructuredConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		dispatcher:      dispatcher,
		uuidGen:         utils.NewUUIDGenerator(),
		tokenSignKey:    cfg.Auth.TokenSignKey,
		tokenIssuer:     cfg.Auth.TokenIssuer,
		tokenDuration:   cfg.Auth.TokenDuration,
		verificationTTL: cfg.Auth.VerificationTokenTTL,
		verifyLinkBase:  cfg.Mail.VerifyLinkBase,
		logger:          logger,
	}
}

// Register creates a new account in the unverified state.
//
// Steps, each a precondition for the next: hash the password, mint the
// verification token pair (raw value plus storable hash and expiry), persist
// the account, then queue the verification email carrying the raw token.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if username, email or password is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
//   - ErrVerificationEmailNotSent (wrapped), together with the created
//     account, if the account was stored but the email could not be queued.
//     Registration is not rolled back in that case.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	rawToken, tokenHash, err := utils.NewVerificationToken()
	if err != nil {
		log.Err(err).Msg("verification token minting failed")
		return models.User{}, fmt.Errorf("verification token minting failed: %w", err)
	}

	expiresAt := time.Now().Add(a.verificationTTL)
	user := models.User{
		ID:                         a.uuidGen.Generate(),
		Username:                   req.Username,
		Email:                      req.Email,
		PasswordHash:               passwordHash,
		IsVerified:                 false,
		VerificationTokenHash:      &tokenHash,
		VerificationTokenExpiresAt: &expiresAt,
	}

	createdUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	link := fmt.Sprintf("%s/%s", a.verifyLinkBase, rawToken)
	if err := a.dispatcher.Enqueue(mailer.Message{
		To:      createdUser.Email,
		Subject: "Verify your email",
		HTML:    fmt.Sprintf(`<p>Click <a href="%s">here</a> to verify your email.</p>`, link),
	}); err != nil {
		// account stays created; email failure is a separate failure domain
		log.Warn().Err(err).Str("email", createdUser.Email).Msg("verification email was not queued")
		return createdUser, fmt.Errorf("%w: %w", ErrVerificationEmailNotSent, err)
	}

	return createdUser, nil
}

// VerifyEmail redeems a raw verification token.
//
// The raw token is re-hashed with the deterministic SHA-256 digest and
// consumed in a single conditional store update that also checks the expiry.
// A second presentation of the same raw token finds no outstanding hash and
// fails exactly like a fabricated or expired token.
//
// Returns the now-verified account, ErrInvalidOrExpiredToken when the token
// matched nothing, or a wrapped store error when the consume itself failed.
func (a *authService) VerifyEmail(ctx context.Context, rawToken string) (models.User, error) {
	log := logger.FromContext(ctx)

	if rawToken == "" {
		return models.User{}, ErrInvalidOrExpiredToken
	}

	tokenHash := utils.HashVerificationToken(rawToken)

	verifiedUser, err := a.userRepository.ConsumeVerificationToken(ctx, tokenHash, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrNoTokenMatch) {
			// wrong, consumed and expired all collapse into one outcome
			log.Debug().Err(err).Msg("verification token was not consumed")
			return models.User{}, ErrInvalidOrExpiredToken
		}
		log.Err(err).Msg("verification token consume failed")
		return models.User{}, fmt.Errorf("verification token consume failed: %w", err)
	}

	log.Info().Str("id", verifiedUser.ID).Msg("email verified")

	return verifiedUser, nil
}

// Login authenticates an existing account and mints its bearer token.
//
// Returns the account and the token or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials for an unknown email or a wrong password
//     (deliberately merged).
//   - ErrEmailNotVerified if the password matches but the account has not
//     confirmed its email address.
//
// A store failure that is not a lookup miss is propagated wrapped; it is
// not a credential problem and must not be reported as one.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Err(err).Msg("user search by email failed")
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.PasswordHash) {
		log.Debug().Str("id", foundUser.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	if !foundUser.IsVerified {
		log.Debug().Str("id", foundUser.ID).Msg("email not verified")
		return models.User{}, models.Token{}, ErrEmailNotVerified
	}

	token, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("creation of token failed")
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, mirrors the account's id,
// username and email, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong secret, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
