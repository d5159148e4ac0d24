package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-garden-keeper/internal/config"
	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/store"
)

// NewRemoteServices builds the dashboard services backed by garden-server.
// tokens caches the bearer token and may be nil.
func NewRemoteServices(cfg config.ClientAdapter, tokens store.KeyValueStore, logger *logger.Logger) (*service.LocalServices, ServerAdapter, error) {
	server, err := NewHTTPServerAdapter(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating server adapter: %w", err)
	}

	return &service.LocalServices{
		AccountManager: NewRemoteAccounts(server, tokens, logger),
		ThemeManager:   NewRemoteTheme(server, logger),
		Readings:       NewRemoteReadings(server),
	}, server, nil
}
