package http

import (
	"fmt"
	"net/http"

	"github.com/ametelin/veriauth/internal/logger"
	"github.com/ametelin/veriauth/internal/utils"
	"github.com/ametelin/veriauth/models"
)

// protected is a sample handler behind the bearer-token gate. It only runs
// when the auth middleware has already resolved an identity.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user ID in context behind the auth gate")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("Hello %s, you accessed protected data.", userID),
	}, http.StatusOK)
}
