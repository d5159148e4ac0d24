// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the garden dashboard runtime.
//
// It picks in-process services over a local key-value store, or the remote
// adapter when a server address is configured, and runs the terminal UI on
// top of them.
package client
