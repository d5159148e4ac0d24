// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain types shared by the storage, service,
// transport and UI layers of go-garden-keeper.
package models

import "strings"

// Account is a registered user of the dashboard.
//
// The JSON shape is the persisted shape: the directory and the session are
// both stored as field-for-field JSON encodings of Account.
type Account struct {
	// ID is the opaque identifier generated at registration.
	ID string `json:"id"`

	// Name is the display name shown on the dashboard.
	Name string `json:"name"`

	// Email is stored normalized (trimmed, lower-cased) and is unique across
	// the directory.
	Email string `json:"email"`

	// Password is the credential as produced by the configured credential
	// verifier. With the default verifier this is the verbatim password.
	Password string `json:"password"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// PhotoURL optionally points to the profile picture.
	PhotoURL string `json:"photoURL,omitempty"`
}

// Public returns a copy of the account with the credential removed, suitable
// for transport and display.
func (a Account) Public() Account {
	a.Password = ""
	return a
}

// NormalizeEmail trims surrounding whitespace and lower-cases email. The
// result is the uniqueness key of the directory.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ProfileUpdate is a partial update of the profile fields of an Account.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	PhotoURL *string `json:"photoURL,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.PhotoURL == nil
}

// ApplyTo merges the non-nil fields of u onto a and returns the result.
// Name and email are trimmed, email is normalized.
func (u ProfileUpdate) ApplyTo(a Account) Account {
	if u.Name != nil {
		a.Name = strings.TrimSpace(*u.Name)
	}
	if u.Email != nil {
		a.Email = NormalizeEmail(*u.Email)
	}
	if u.Phone != nil {
		a.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.PhotoURL != nil {
		a.PhotoURL = strings.TrimSpace(*u.PhotoURL)
	}
	return a
}
