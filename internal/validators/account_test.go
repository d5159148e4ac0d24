// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-garden-keeper/models"
)

func strPtr(s string) *string { return &s }

func validRegistration() models.Registration {
	return models.Registration{
		Name:            "Ann",
		Email:           "ann@x.io",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestNewAccountValidator(t *testing.T) {
	v := NewAccountValidator()
	require.NotNil(t, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), validRegistration(), "photo")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_Registration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.Registration)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.Registration) {}},
		{name: "blank name", mutate: func(r *models.Registration) { r.Name = "   " }, wantErr: ErrNameRequired},
		{name: "empty email", mutate: func(r *models.Registration) { r.Email = "" }, wantErr: ErrEmailRequired},
		{name: "bad email", mutate: func(r *models.Registration) { r.Email = "ann-at-x" }, wantErr: ErrEmailInvalid},
		{name: "email with spaces around", mutate: func(r *models.Registration) { r.Email = "  ann@x.io " }},
		{name: "empty password", mutate: func(r *models.Registration) {
			r.Password = ""
			r.ConfirmPassword = ""
		}, wantErr: ErrPasswordRequired},
		{name: "short password", mutate: func(r *models.Registration) {
			r.Password = "12345"
			r.ConfirmPassword = "12345"
		}, wantErr: ErrPasswordTooShort},
		{name: "mismatch", mutate: func(r *models.Registration) { r.ConfirmPassword = "secret2" }, wantErr: ErrPasswordMismatch},
		{name: "confirmation omitted", mutate: func(r *models.Registration) { r.ConfirmPassword = "" }},
	}

	v := NewAccountValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(&reg)

			err := v.Validate(context.Background(), &reg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_RegistrationFieldScope(t *testing.T) {
	reg := validRegistration()
	reg.Password = "1"

	err := NewAccountValidator().Validate(context.Background(), reg, FieldName, FieldEmail)
	assert.NoError(t, err, "password is outside the requested scope")
}

func TestValidate_Credentials(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "a@b.c", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "x"}), ErrEmailRequired)
	assert.ErrorIs(t, v.Validate(ctx, &models.Credentials{Email: "a@b.c"}), ErrPasswordRequired)
}

func TestValidate_ProfileUpdate(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ProfileUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.ProfileUpdate{Phone: strPtr("+1 555")}))
	assert.ErrorIs(t, v.Validate(ctx, models.ProfileUpdate{Name: strPtr(" ")}), ErrNameRequired)
	assert.ErrorIs(t, v.Validate(ctx, &models.ProfileUpdate{Email: strPtr("nope")}), ErrEmailInvalid)
	assert.NoError(t, v.Validate(ctx, models.ProfileUpdate{Name: strPtr("Ann B"), Email: strPtr("ANN@X.IO")}))
}

func TestValidate_PasswordChange(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	valid := models.PasswordChange{CurrentPassword: "old", NewPassword: "newpass", ConfirmPassword: "newpass"}
	assert.NoError(t, v.Validate(ctx, valid))

	noCurrent := valid
	noCurrent.CurrentPassword = ""
	assert.ErrorIs(t, v.Validate(ctx, noCurrent), ErrPasswordRequired)

	short := valid
	short.NewPassword, short.ConfirmPassword = "abc", "abc"
	assert.ErrorIs(t, v.Validate(ctx, short), ErrPasswordTooShort)

	mismatch := valid
	mismatch.ConfirmPassword = "other1"
	assert.ErrorIs(t, v.Validate(ctx, &mismatch), ErrPasswordMismatch)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ann@x.io"))
	assert.True(t, IsValidEmail(" ann@x.io "))
	assert.False(t, IsValidEmail("ann@x"))
	assert.False(t, IsValidEmail("ann x.io"))
	assert.False(t, IsValidEmail(""))
}

func TestErrorMessagesAreDisplayReady(t *testing.T) {
	assert.Equal(t, "Password must be at least 6 characters long", ErrPasswordTooShort.Error())
	assert.Equal(t, "Passwords do not match", ErrPasswordMismatch.Error())
}

func TestMessage(t *testing.T) {
	msg, ok := Message(fmt.Errorf("register form: %w", ErrEmailInvalid))
	assert.True(t, ok)
	assert.Equal(t, "Please enter a valid email address", msg)

	_, ok = Message(ErrUnsupportedType)
	assert.False(t, ok)

	_, ok = Message(nil)
	assert.False(t, ok)
}
