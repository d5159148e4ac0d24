package service

import (
	"context"

	"github.com/MKhiriev/go-garden-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountManager owns the account directory and the single active session.
//
// Init must be called once before the session state is meaningful; until the
// persisted session has been read IsLoading reports true. All mutating calls
// are serialized per instance.
type AccountManager interface {
	Init(ctx context.Context)
	WaitReady(ctx context.Context) error
	Ready() <-chan struct{}

	Current() (models.Account, bool)
	IsLoading() bool
	State() models.SessionState

	Register(ctx context.Context, name, email, password string) (models.Account, error)
	Authenticate(ctx context.Context, email, password string) (models.Account, error)
	UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (models.Account, bool, error)
	ChangePassword(ctx context.Context, current, next, confirm string) error
	EndSession(ctx context.Context) error
}

// ThemeManager keeps the appearance preference.
type ThemeManager interface {
	Init(ctx context.Context)
	Theme() models.Theme
	IsDark() bool
	SetTheme(ctx context.Context, theme models.Theme) error
	Toggle(ctx context.Context) (models.Theme, error)
}

// ReadingsProvider serves the garden sensor readings.
type ReadingsProvider interface {
	Readings(ctx context.Context, r models.TimeRange) (models.ReadingsReport, error)
	Overview(ctx context.Context) (models.ReadingsReport, error)
}

// TokenService issues and verifies the bearer tokens of the HTTP API.
type TokenService interface {
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// CredentialVerifier is the single place credentials are produced and
// compared. Seal turns a supplied password into the stored form, Verify
// compares a stored credential with a supplied password.
type CredentialVerifier interface {
	Seal(password string) (string, error)
	Verify(stored, supplied string) bool
}

// IDGenerator issues account identifiers.
type IDGenerator interface {
	Generate() string
}

// AccountManagerWrapper defines middleware composition for AccountManager.
// Implementations wrap an existing AccountManager to add behavior such as
// metrics.
type AccountManagerWrapper interface {
	Wrap(AccountManager) AccountManager
}
