package service

import (
	"errors"

	"github.com/MKhiriev/go-garden-keeper/internal/app"
	"github.com/MKhiriev/go-garden-keeper/internal/validators"
)

// Errors returned by the account manager. Their text is the message shown to
// the user.
var (
	ErrDuplicateAccount    = errors.New(app.MsgDuplicateAccount)
	ErrAccountNotFound     = errors.New(app.MsgAccountNotFound)
	ErrInvalidCredentials  = errors.New(app.MsgInvalidCredentials)
	ErrStorage             = errors.New(app.MsgStorageUnavailable)
	ErrMalformedSession    = errors.New(app.MsgMalformedSession)
	ErrPartialUpdate       = errors.New(app.MsgPartialUpdate)
	ErrNoActiveSession     = errors.New(app.MsgNoActiveSession)
	ErrInvalidDataProvided = errors.New(app.MsgInvalidDataProvided)
	ErrInvalidTheme        = errors.New(app.MsgInvalidTheme)
	ErrPasswordTooLong     = errors.New(app.MsgPasswordTooLong)
	ErrInvalidTimeRange    = errors.New(app.MsgInvalidTimeRange)

	ErrPasswordTooShort = validators.ErrPasswordTooShort
	ErrPasswordMismatch = validators.ErrPasswordMismatch
)

var (
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New(app.MsgTokenIsExpired)
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrUnknownCredentialScheme = errors.New("unknown credential scheme")
)

// userFacing lists the errors with a display message, most specific first.
// ErrPartialUpdate always wraps ErrStorage and must be matched before it.
var userFacing = []error{
	ErrPartialUpdate,
	ErrDuplicateAccount,
	ErrAccountNotFound,
	ErrInvalidCredentials,
	ErrNoActiveSession,
	ErrPasswordTooShort,
	ErrPasswordTooLong,
	ErrPasswordMismatch,
	ErrInvalidTheme,
	ErrInvalidTimeRange,
	ErrInvalidDataProvided,
	ErrStorage,
}

// UserMessage returns the text to show for err. Validation errors already
// read as display messages and are returned as is; anything unknown becomes
// the generic internal error message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, known := range userFacing {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	if msg, ok := validators.Message(err); ok {
		return msg
	}
	return app.MsgInternalServerError
}

// Outcome is the short metrics label for the result of an operation.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrPartialUpdate):
		return "partial_update"
	case errors.Is(err, ErrDuplicateAccount):
		return "duplicate"
	case errors.Is(err, ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrNoActiveSession):
		return "no_session"
	case errors.Is(err, ErrStorage):
		return "storage"
	default:
		return "invalid"
	}
}
