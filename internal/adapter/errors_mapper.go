package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/validators"
)

// knownErrors are matched by the display message the server writes as the
// response body.
var knownErrors = []error{
	service.ErrDuplicateAccount,
	service.ErrAccountNotFound,
	service.ErrInvalidCredentials,
	service.ErrNoActiveSession,
	service.ErrInvalidDataProvided,
	service.ErrInvalidTheme,
	service.ErrPasswordTooLong,
	service.ErrInvalidTimeRange,
	service.ErrStorage,
	validators.ErrNameRequired,
	validators.ErrEmailRequired,
	validators.ErrEmailInvalid,
	validators.ErrPasswordRequired,
	validators.ErrPasswordTooShort,
	validators.ErrPasswordMismatch,
	validators.ErrNoFieldsToUpdate,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	if body == service.ErrPartialUpdate.Error() {
		return fmt.Errorf("%w: %w", service.ErrPartialUpdate, service.ErrStorage)
	}
	for _, known := range knownErrors {
		if body == known.Error() {
			return known
		}
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		// a missing or stale token means the dashboard has to log in again
		return fmt.Errorf("%w: %w", service.ErrNoActiveSession, ErrUnauthorized)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", service.ErrInvalidDataProvided, body)
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", service.ErrStorage, resp.StatusCode(), body)
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
}

// transportError wraps a failed round trip. The server being unreachable
// reads as unavailable storage to the user.
func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s request: %w", service.ErrStorage, op, err)
}
