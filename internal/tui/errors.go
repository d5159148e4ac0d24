// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/validators"
)

// errConfirmRequired is reported when the sign up confirmation is left blank.
var errConfirmRequired = validators.ErrPasswordMismatch

// humanizeError returns the text shown for err. Network failures of the
// remote mode get their own wording, everything else uses the service
// display message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the garden server is unavailable"
	}

	return service.UserMessage(err)
}
