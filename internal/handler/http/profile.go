package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/utils"
	"github.com/MKhiriev/go-garden-keeper/models"
)

// updateProfile applies a partial profile update to the logged-in account.
//
// A partial failure (directory written, session not) still answers 500 with
// the display message, the caller is expected to log in again.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var patch models.ProfileUpdate
	if err := decodeJSON(r, &patch); err != nil {
		log.Err(err).Msg("invalid profile payload")
		writeError(w, err)
		return
	}

	if err := h.validator.Validate(ctx, patch); err != nil {
		log.Info().Err(err).Msg("profile form rejected")
		writeError(w, err)
		return
	}

	account, updated, err := h.services.AccountManager.UpdateProfile(ctx, patch)
	if err != nil {
		if errors.Is(err, service.ErrPartialUpdate) {
			log.Warn().Err(err).Msg("profile saved, session not refreshed")
		} else {
			log.Err(err).Msg("updating profile failed")
		}
		writeError(w, err)
		return
	}
	if !updated {
		// the session ended between authentication and the update
		writeError(w, service.ErrNoActiveSession)
		return
	}

	utils.WriteJSON(w, account.Public(), http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var change models.PasswordChange
	if err := decodeJSON(r, &change); err != nil {
		log.Err(err).Msg("invalid password payload")
		writeError(w, err)
		return
	}

	if err := h.validator.Validate(ctx, change); err != nil {
		log.Info().Err(err).Msg("password form rejected")
		writeError(w, err)
		return
	}

	err := h.services.AccountManager.ChangePassword(ctx, change.CurrentPassword, change.NewPassword, change.ConfirmPassword)
	if err != nil {
		log.Err(err).Msg("changing password failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
