// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-garden-keeper services, HTTP handlers and terminal UI.
//
// All Msg* constants are human-readable message strings shown to the user or
// written into HTTP response bodies. Keeping them in one place ensures the
// dashboard, the API and the remote adapter agree on the wording.
package app

const (
	// MsgDuplicateAccount is shown when a registration or profile edit uses
	// an email that already belongs to another account.
	MsgDuplicateAccount = "A user with this email already exists"

	// MsgAccountNotFound is shown when a login names an email that was never
	// registered.
	MsgAccountNotFound = "No user found with this email. Please sign up first."

	// MsgInvalidCredentials is shown when the password does not match the
	// stored credential.
	MsgInvalidCredentials = "Invalid password"

	// MsgStorageUnavailable is shown when the durable store fails.
	MsgStorageUnavailable = "Storage is unavailable, please try again"

	// MsgMalformedSession is logged when the persisted session cannot be
	// decoded. It is never surfaced, the session is treated as absent.
	MsgMalformedSession = "stored session is malformed"

	// MsgPartialUpdate is shown when the account directory was updated but
	// the session record could not be rewritten.
	MsgPartialUpdate = "Your profile was saved but the session could not be refreshed, please log in again"

	// MsgNoActiveSession is shown when an operation requires a logged-in
	// account.
	MsgNoActiveSession = "Please log in first"

	// MsgInvalidDataProvided is shown when a request is missing required
	// fields or cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNameRequired is shown when the name field is blank.
	MsgNameRequired = "Please enter your name"

	// MsgEmailRequired is shown when the email field is blank.
	MsgEmailRequired = "Please enter your email"

	// MsgEmailInvalid is shown when the email does not look like an address.
	MsgEmailInvalid = "Please enter a valid email address"

	// MsgPasswordRequired is shown when a password field is blank.
	MsgPasswordRequired = "Please enter a password"

	// MsgPasswordTooShort is shown when a new password is under the minimum
	// length.
	MsgPasswordTooShort = "Password must be at least 6 characters long"

	// MsgPasswordTooLong is shown when a password is longer than the bcrypt
	// credential scheme can hold.
	MsgPasswordTooLong = "Password must be at most 72 bytes long"

	// MsgPasswordMismatch is shown when the confirmation does not match.
	MsgPasswordMismatch = "Passwords do not match"

	// MsgNoFieldsToUpdate is shown when a profile edit changes nothing.
	MsgNoFieldsToUpdate = "Nothing to update"

	// MsgInvalidTheme is shown when an unknown theme value is requested.
	MsgInvalidTheme = "Unknown theme, expected light, dark or system"

	// MsgInvalidTimeRange is shown when readings are requested for an
	// unknown period.
	MsgInvalidTimeRange = "Unknown time range, expected day, week or month"

	// MsgUnauthorized is returned by the API when the bearer token is
	// missing, invalid or belongs to an account that is no longer logged in.
	MsgUnauthorized = "unauthorized"

	// MsgTokenIsExpired is returned when the bearer token has expired.
	MsgTokenIsExpired = "token is expired"

	// MsgInternalServerError is returned when an unexpected failure occurs.
	MsgInternalServerError = "internal server error"
)
