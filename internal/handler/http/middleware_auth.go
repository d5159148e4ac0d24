package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-garden-keeper/internal/app"
	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication for
// the profile routes.
//
// The token must verify with [service.TokenService.ParseToken] and its
// subject must be the account of the active session: a token issued before
// a logout, or to an account that is no longer logged in, is rejected.
// On success the account id is stored under [utils.AccountIDCtxKey].
//
// Every rejection answers 401 with a plain text body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
			return
		}

		current, ok := h.services.AccountManager.Current()
		if !ok || current.ID != token.AccountID {
			log.Err(ErrSessionMismatch).Str("token_account", token.AccountID).Send()
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.AccountIDCtxKey, token.AccountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
