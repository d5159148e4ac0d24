package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrDuplicateAccount:        http.StatusConflict,
	service.ErrAccountNotFound:         http.StatusNotFound,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrNoActiveSession:         http.StatusConflict,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidTheme:            http.StatusBadRequest,
	service.ErrPasswordTooLong:         http.StatusBadRequest,
	service.ErrInvalidTimeRange:        http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrStorage:                 http.StatusInternalServerError,
	service.ErrPartialUpdate:           http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	validators.ErrNameRequired:     http.StatusBadRequest,
	validators.ErrEmailRequired:    http.StatusBadRequest,
	validators.ErrEmailInvalid:     http.StatusBadRequest,
	validators.ErrPasswordRequired: http.StatusBadRequest,
	validators.ErrPasswordTooShort: http.StatusBadRequest,
	validators.ErrPasswordMismatch: http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate: http.StatusBadRequest,

	ErrInvalidJSON: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and its display
// message as a plain text body.
func writeError(w http.ResponseWriter, err error) {
	msg := service.UserMessage(err)
	if errors.Is(err, ErrInvalidJSON) {
		msg = ErrInvalidJSON.Error()
	}
	http.Error(w, msg, statusFromError(err))
}
