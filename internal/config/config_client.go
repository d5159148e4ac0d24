package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the dashboard transport
// layer.
type ClientAdapter struct {
	// HTTPAddress is the garden-server address. Empty means local mode.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level dashboard configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains the credential scheme and version.
	App App
	// Adapter contains the remote server address and timeout.
	Adapter ClientAdapter
	// Storage selects the local backend used in local mode.
	Storage Storage
	// LogFile is where the dashboard writes its log.
	LogFile string
}

// Remote reports whether the dashboard should talk to a garden-server
// instead of local storage.
func (cfg *ClientConfig) Remote() bool {
	return cfg.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: cfg.App,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: cfg.Storage,
		LogFile: cfg.Log.File,
	}

	return clientCfg, clientCfg.validate()
}
