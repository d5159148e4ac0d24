package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration of garden-server: the shared settings
// plus a validated HTTP section.
type ServerConfig struct {
	*StructuredConfig

	HTTPAddress    string
	TokenSignKey   string
	RequestTimeout time.Duration
}

// GetServerConfig loads the structured config and checks the settings the
// HTTP API cannot start without.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		StructuredConfig: cfg,
		HTTPAddress:      cfg.Server.HTTPAddress,
		TokenSignKey:     cfg.App.TokenSignKey,
		RequestTimeout:   cfg.Server.RequestTimeout,
	}

	return serverCfg, serverCfg.validate()
}
