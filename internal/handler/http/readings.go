package http

import (
	"net/http"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/utils"
	"github.com/MKhiriev/go-garden-keeper/models"
)

// getReadings answers GET /api/readings?range=day|week|month. An empty range
// means week.
func (h *Handler) getReadings(w http.ResponseWriter, r *http.Request) {
	timeRange := models.TimeRange(r.URL.Query().Get("range"))
	if timeRange == "" {
		timeRange = models.RangeWeek
	}

	report, err := h.services.Readings.Readings(r.Context(), timeRange)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("range", string(timeRange)).Msg("reading series failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) getOverview(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.Readings.Overview(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("reading overview failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
