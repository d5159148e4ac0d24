package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"credentials":    "bcrypt",
			"token_sign_key": "secret",
			"token_issuer":   "garden",
			"token_duration": "90m",
			"version":        "0.1.0",
		},
		"storage": map[string]any{
			"driver":      "sqlite",
			"dsn":         "garden.db",
			"gc_interval": "1m",
		},
		"server": map[string]any{
			"http_address":    "0.0.0.0:8080",
			"request_timeout": "20s",
		},
		"adapter": map[string]any{
			"http_address":    "localhost:8080",
			"request_timeout": 5000000000,
		},
		"log": map[string]any{"file": "dash.log"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "bcrypt", cfg.App.Credentials)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "garden", cfg.App.TokenIssuer)
	assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "garden.db", cfg.Storage.DSN)
	assert.Equal(t, time.Minute, cfg.Storage.GCInterval)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "dash.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_duration": "soon"},
	})

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
