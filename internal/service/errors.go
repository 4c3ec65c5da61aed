package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; the two cases are indistinguishable to the caller so that
	// login cannot be used to enumerate registered addresses.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailNotVerified is returned when the credentials are correct but
	// the account has not confirmed its email address. Deliberately
	// distinguishable from ErrInvalidCredentials: the remedy is resending
	// the verification mail, not retyping the password.
	ErrEmailNotVerified = errors.New("email not verified")

	// ErrInvalidOrExpiredToken covers wrong, expired and already consumed
	// verification tokens; which case occurred is deliberately not leaked.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	// ErrVerificationEmailNotSent is returned by Register when the account
	// was created but the verification email could not be queued. The two
	// failure domains are independent; registration is not rolled back.
	ErrVerificationEmailNotSent = errors.New("verification email not sent")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
