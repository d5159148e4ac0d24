package validators

import (
	"errors"

	"github.com/MKhiriev/go-garden-keeper/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired     = errors.New(app.MsgNameRequired)
	ErrEmailRequired    = errors.New(app.MsgEmailRequired)
	ErrEmailInvalid     = errors.New(app.MsgEmailInvalid)
	ErrPasswordRequired = errors.New(app.MsgPasswordRequired)
	ErrPasswordTooShort = errors.New(app.MsgPasswordTooShort)
	ErrPasswordMismatch = errors.New(app.MsgPasswordMismatch)
	ErrNoFieldsToUpdate = errors.New(app.MsgNoFieldsToUpdate)
)

// formErrors are the rule violations whose text is a display message.
var formErrors = []error{
	ErrNameRequired,
	ErrEmailRequired,
	ErrEmailInvalid,
	ErrPasswordRequired,
	ErrPasswordTooShort,
	ErrPasswordMismatch,
	ErrNoFieldsToUpdate,
}

// Message returns the display message of a form rule violation.
func Message(err error) (string, bool) {
	for _, fe := range formErrors {
		if errors.Is(err, fe) {
			return fe.Error(), true
		}
	}
	return "", false
}
