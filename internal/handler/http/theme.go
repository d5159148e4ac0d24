package http

import (
	"net/http"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/utils"
	"github.com/MKhiriev/go-garden-keeper/models"
)

func (h *Handler) getTheme(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, service.ThemeInfo(h.services.ThemeManager), http.StatusOK)
}

func (h *Handler) setTheme(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ThemeInfo
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid theme payload")
		writeError(w, err)
		return
	}

	if err := h.services.ThemeManager.SetTheme(r.Context(), req.Theme); err != nil {
		log.Err(err).Str("theme", string(req.Theme)).Msg("setting theme failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, service.ThemeInfo(h.services.ThemeManager), http.StatusOK)
}

func (h *Handler) toggleTheme(w http.ResponseWriter, r *http.Request) {
	if _, err := h.services.ThemeManager.Toggle(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("toggling theme failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, service.ThemeInfo(h.services.ThemeManager), http.StatusOK)
}
