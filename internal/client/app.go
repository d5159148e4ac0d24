package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-garden-keeper/internal/adapter"
	"github.com/MKhiriev/go-garden-keeper/internal/config"
	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/store"
	"github.com/MKhiriev/go-garden-keeper/internal/tui"
	"github.com/MKhiriev/go-garden-keeper/models"
)

type App struct {
	services *service.LocalServices
	kv       store.KeyValueStore
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp opens the local store and builds the services the dashboard runs
// on. In remote mode the local store only caches the bearer token.
func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	kv, err := store.NewKeyValueStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services, err := newServices(cfg, kv, logger)
	if err != nil {
		kv.Close()
		return nil, err
	}

	return &App{
		services: services,
		kv:       kv,
		ui:       tui.New(services.AccountManager, services.ThemeManager, services.Readings, build, logger),
		logger:   logger,
	}, nil
}

func newServices(cfg *config.ClientConfig, kv store.KeyValueStore, logger *logger.Logger) (*service.LocalServices, error) {
	if cfg.Remote() {
		logger.Info().Str("server", cfg.Adapter.HTTPAddress).Msg("running against garden-server")
		services, _, err := adapter.NewRemoteServices(cfg.Adapter, kv, logger)
		if err != nil {
			return nil, fmt.Errorf("create remote services: %w", err)
		}
		return services, nil
	}

	logger.Info().Str("driver", cfg.Storage.Driver).Msg("running on local storage")
	services, err := service.NewLocalServices(kv, cfg.App, lipgloss.HasDarkBackground, logger)
	if err != nil {
		return nil, fmt.Errorf("create local services: %w", err)
	}
	return services, nil
}

// Run blocks until the user leaves the dashboard. Quitting is not an error.
func (a *App) Run(ctx context.Context) error {
	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("dashboard closed by user")
		return nil
	}
	return err
}

func (a *App) Close() error {
	return a.kv.Close()
}
