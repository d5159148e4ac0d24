// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the dashboard run against a remote garden-server.
//
// [ServerAdapter] is the transport: one method per API route. [RemoteAccounts],
// [RemoteTheme] and [RemoteReadings] sit on top of it and implement the same
// service contracts as the in-process services, so the terminal UI does not
// know where the data lives.
//
// Failed responses are mapped back to the service sentinel errors by
// mapHTTPError, so callers keep using [errors.Is] and service.UserMessage.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-garden-keeper/models"
)

// ServerAdapter defines communication with garden-server. Implementations
// attach the bearer token to the profile routes and map failed responses to
// service sentinel errors.
type ServerAdapter interface {
	// SetToken stores the bearer token used by the profile routes.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	GetSession(ctx context.Context) (models.SessionInfo, error)

	// Login and Register store the bearer token returned by the server.
	Login(ctx context.Context, creds models.Credentials) (models.Account, error)
	Register(ctx context.Context, reg models.Registration) (models.Account, error)

	Logout(ctx context.Context) error

	UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (models.Account, error)
	ChangePassword(ctx context.Context, change models.PasswordChange) error

	GetTheme(ctx context.Context) (models.ThemeInfo, error)
	SetTheme(ctx context.Context, theme models.Theme) (models.ThemeInfo, error)
	ToggleTheme(ctx context.Context) (models.ThemeInfo, error)

	GetReadings(ctx context.Context, r models.TimeRange) (models.ReadingsReport, error)
	GetOverview(ctx context.Context) (models.ReadingsReport, error)

	GetBuildInfo(ctx context.Context) (models.AppBuildInfo, error)
}
