package service

import (
	"github.com/MKhiriev/go-garden-keeper/internal/config"
	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/metrics"
	"github.com/MKhiriev/go-garden-keeper/internal/store"
	"github.com/MKhiriev/go-garden-keeper/internal/utils"
	"github.com/MKhiriev/go-garden-keeper/models"
)

// Services is what the HTTP handler works with.
type Services struct {
	AccountManager AccountManager
	ThemeManager   ThemeManager
	Readings       ReadingsProvider
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices wires the server side services over kv. When registry is not
// nil the account manager is instrumented.
func NewServices(kv store.KeyValueStore, cfg config.StructuredConfig, build models.AppBuildInfo, registry *metrics.Registry, logger *logger.Logger) (*Services, error) {
	local, err := NewLocalServices(kv, cfg.App, nil, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	accounts := local.AccountManager
	if registry != nil {
		accounts = NewMetricsWrapper(registry).Wrap(accounts)
	}

	return &Services{
		AccountManager: accounts,
		ThemeManager:   local.ThemeManager,
		Readings:       local.Readings,
		TokenService:   NewTokenService(cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}

// LocalServices is what the dashboard works with, either in-process or
// through the remote adapter.
type LocalServices struct {
	AccountManager AccountManager
	ThemeManager   ThemeManager
	Readings       ReadingsProvider
}

// NewLocalServices builds the in-process account and theme managers over kv
// and the garden readings.
func NewLocalServices(kv store.KeyValueStore, cfg config.App, scheme SystemScheme, logger *logger.Logger) (*LocalServices, error) {
	credentials, err := NewCredentialVerifier(cfg.Credentials)
	if err != nil {
		return nil, err
	}

	return &LocalServices{
		AccountManager: NewAccountService(kv, credentials, utils.NewUUIDGenerator(), logger),
		ThemeManager:   NewThemeService(kv, scheme, logger),
		Readings:       NewReadingsService(nil, logger),
	}, nil
}
