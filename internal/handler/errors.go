// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress stops server startup when nothing would serve the API.
var errNoHTTPAddress = errors.New("server address is not configured, no handlers created")
