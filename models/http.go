package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	// Username is the display name for the new account.
	Username string `json:"username"`

	// Email is the address the verification link is sent to.
	// It becomes the unique login key of the account.
	Email string `json:"email"`

	// Password is the plaintext password. It is hashed immediately and
	// never stored or logged in this form.
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login. Token is the compact
// JWS form of the bearer token; User is the public projection of the
// authenticated account.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicView `json:"user"`
}

// MessageResponse carries a single human-readable message, used for
// confirmations and business-rule rejections alike.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a single error description for unexpected failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeletedResponse reports how many accounts an admin delete removed.
type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
