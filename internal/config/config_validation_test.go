package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Server.HTTPAddress = "localhost:8080"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(cfg *StructuredConfig) {}},
		{name: "memory without dsn", mutate: func(cfg *StructuredConfig) {
			cfg.Storage.Driver = DriverMemory
			cfg.Storage.DSN = ""
		}},
		{name: "sqlite without dsn", mutate: func(cfg *StructuredConfig) {
			cfg.Storage.Driver = DriverSQLite
			cfg.Storage.DSN = ""
		}, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) {
			cfg.Storage.Driver = "redis"
		}, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown credentials", mutate: func(cfg *StructuredConfig) {
			cfg.App.Credentials = "md5"
		}, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewServerConfig(t *testing.T) {
	cfg, err := newServerConfig(validConfig())
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.HTTPAddress)
	assert.Equal(t, "secret", cfg.TokenSignKey)

	noKey := validConfig()
	noKey.App.TokenSignKey = ""
	_, err = newServerConfig(noKey)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)

	noAddr := validConfig()
	noAddr.Server.HTTPAddress = ""
	_, err = newServerConfig(noAddr)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestNewClientConfig(t *testing.T) {
	local, err := newClientConfig(validConfig())
	require.NoError(t, err)
	assert.False(t, local.Remote())

	remoteCfg := validConfig()
	remoteCfg.Adapter.HTTPAddress = "localhost:8080"
	remote, err := newClientConfig(remoteCfg)
	require.NoError(t, err)
	assert.True(t, remote.Remote())

	remoteCfg.Adapter.RequestTimeout = 0
	_, err = newClientConfig(remoteCfg)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
