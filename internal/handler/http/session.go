package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/utils"
	"github.com/MKhiriev/go-garden-keeper/models"
)

// getSession reports the session state and, when active, the logged-in
// account without its credential.
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	accounts := h.services.AccountManager

	info := models.SessionInfo{State: accounts.State()}
	if current, ok := accounts.Current(); ok {
		public := current.Public()
		info.Account = &public
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		log.Err(err).Msg("invalid login payload")
		writeError(w, err)
		return
	}

	if err := h.validator.Validate(ctx, creds); err != nil {
		log.Info().Err(err).Msg("login form rejected")
		writeError(w, err)
		return
	}

	account, err := h.services.AccountManager.Authenticate(ctx, creds.Email, creds.Password)
	if err != nil {
		log.Err(err).Msg("authentication failed")
		writeError(w, err)
		return
	}

	h.respondWithToken(w, r, account, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.AccountManager.EndSession(r.Context()); err != nil {
		log.Err(err).Msg("ending session failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var reg models.Registration
	if err := decodeJSON(r, &reg); err != nil {
		log.Err(err).Msg("invalid registration payload")
		writeError(w, err)
		return
	}

	if err := h.validator.Validate(ctx, reg); err != nil {
		log.Info().Err(err).Msg("registration form rejected")
		writeError(w, err)
		return
	}

	account, err := h.services.AccountManager.Register(ctx, reg.Name, reg.Email, reg.Password)
	if err != nil {
		log.Err(err).Msg("registration failed")
		writeError(w, err)
		return
	}

	h.respondWithToken(w, r, account, http.StatusCreated)
}

// respondWithToken issues a token for account, sets it as the Authorization
// header and writes the public account as the body.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, account models.Account, status int) {
	token, err := h.services.TokenService.CreateToken(r.Context(), account)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, account.Public(), status)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
