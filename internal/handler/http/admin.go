package http

import (
	"net/http"

	"github.com/ametelin/veriauth/internal/logger"
	"github.com/ametelin/veriauth/internal/utils"
	"github.com/ametelin/veriauth/models"
	"github.com/go-chi/chi/v5"
)

// Administrative accessors. All of them sit behind the bearer-token gate
// and use proper verbs: GET to list, DELETE to remove.

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AccountService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("error listing users")
		writeError(w, "error listing users", statusFromError(err))
		return
	}

	// the User JSON shape excludes credential and token fields
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	if err := h.services.AccountService.DeleteUser(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("error deleting user")
		writeError(w, "error deleting user", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "user deleted"}, http.StatusOK)
}

func (h *Handler) deleteAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deleted, err := h.services.AccountService.DeleteAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("error deleting all users")
		writeError(w, "error deleting all users", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DeletedResponse{Deleted: deleted}, http.StatusOK)
}
