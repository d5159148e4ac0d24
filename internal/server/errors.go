// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned when there are no handlers or no
	// listen address.
	errNoServersAreCreated = errors.New("no HTTP server is configured")
)
