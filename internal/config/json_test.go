package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key": "json-secret",
			"token_issuer":   "json-issuer",
			"version":        "2.0.0",
		},
		"storage": map[string]any{
			"db": map[string]any{"driver": "sqlite3", "dsn": "notes.db"},
		},
		"server": map[string]any{
			"http_address":    "localhost:8080",
			"grpc_address":    "localhost:9090",
			"request_timeout": "45s",
		},
		"adapter": map[string]any{
			"http_address":    "localhost:8080",
			"request_timeout": 2_000_000_000,
		},
	})

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"request_timeout": "forever"},
	})

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{})

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}

func TestDuration_UnmarshalJSON_Null(t *testing.T) {
	d := Duration(time.Second)
	require.NoError(t, d.UnmarshalJSON([]byte("null")))
	assert.Equal(t, Duration(time.Second), d)
}
