package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-garden-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldAnyProfileField = "any_profile_field"
)

// MinPasswordLength is the shortest password accepted for a new account or
// a password change.
const MinPasswordLength = 6

// emailPattern is deliberately loose: something, an @, something, a dot,
// something.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// AccountValidator implements [Validator] for the account forms:
// [models.Registration], [models.Credentials], [models.ProfileUpdate] and
// [models.PasswordChange], by value or by pointer.
type AccountValidator struct {
}

// NewAccountValidator constructs a new AccountValidator and returns it as
// the Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields every rule
// for that type runs, in form order, and the first failure is returned.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(value, fields...)
	case *models.Registration:
		return v.validateRegistration(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// IsValidEmail reports whether email looks like an address after trimming.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

func (v *AccountValidator) validateRegistration(reg models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := checkName(reg.Name); err != nil {
				return err
			}
		case FieldEmail:
			if err := checkEmail(reg.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := checkNewPassword(reg.Password); err != nil {
				return err
			}
		case FieldConfirmPassword:
			// API callers may omit the confirmation
			if reg.ConfirmPassword != "" && reg.ConfirmPassword != reg.Password {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(creds.Email) == "" {
				return ErrEmailRequired
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProfileUpdate checks only the fields the patch actually carries;
// an omitted field keeps its current value.
func (v *AccountValidator) validateProfileUpdate(patch models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyProfileField, FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyProfileField:
			if patch.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if patch.Name != nil {
				if err := checkName(*patch.Name); err != nil {
					return err
				}
			}
		case FieldEmail:
			if patch.Email != nil {
				if err := checkEmail(*patch.Email); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validatePasswordChange(change models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldNewPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrentPassword:
			if change.CurrentPassword == "" {
				return ErrPasswordRequired
			}
		case FieldNewPassword:
			if err := checkNewPassword(change.NewPassword); err != nil {
				return err
			}
		case FieldConfirmPassword:
			if change.ConfirmPassword != change.NewPassword {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return nil
}

func checkEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if !IsValidEmail(email) {
		return ErrEmailInvalid
	}
	return nil
}

func checkNewPassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
