package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ametelin/veriauth/internal/logger"
	"github.com/ametelin/veriauth/internal/service"
	"github.com/ametelin/veriauth/internal/store"
	"github.com/ametelin/veriauth/internal/utils"
	"github.com/ametelin/veriauth/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeError(w, "email already exists", http.StatusConflict)
			return
		case errors.Is(err, service.ErrVerificationEmailNotSent):
			// the account exists; only the email failed. Report success
			// with a distinct message so the caller can request a resend
			log.Warn().Err(err).Msg("user created but verification email not sent")
			utils.WriteJSON(w, models.MessageResponse{Message: "User created, but the verification email could not be sent."}, http.StatusCreated)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "User created. Check email to verify."}, http.StatusCreated)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawToken := chi.URLParam(r, "token")

	_, err := h.services.AuthService.VerifyEmail(ctx, rawToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrExpiredToken):
			log.Debug().Err(err).Msg("verification rejected")
			utils.WriteJSON(w, models.MessageResponse{Message: "Invalid or expired token"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during email verification")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Email verified successfully!"}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Err(err).Msg("invalid credentials")
			utils.WriteJSON(w, models.MessageResponse{Message: "Invalid credentials"}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrEmailNotVerified):
			log.Debug().Err(err).Msg("email not verified")
			utils.WriteJSON(w, models.MessageResponse{Message: "Email not verified"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		User:  foundUser.Public(),
	}, http.StatusOK)
}

// writeError emits a JSON error body with the given status code.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
