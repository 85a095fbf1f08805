package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
		{name: "IPv6 host", addr: NetAddress{Host: "::1", Port: 8080}, expected: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number must be between 1 and 65535"},
		{name: "port too large", input: "localhost:70000", expectError: true, errorMsg: "port number must be between 1 and 65535"},
		{name: "hostname other than localhost", input: "example.com:80", expectError: true, errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.EqualError(t, err, tt.errorMsg)
				}
				assert.Equal(t, NetAddress{}, addr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

// ── server flags ──

func TestParseServerFlags(t *testing.T) {
	cfg, err := parseServerFlags([]string{
		"-a", "localhost:8080",
		"-grpc-address", "127.0.0.1:9090",
		"-d", "postgres://localhost/notes",
		"-db-driver", "pgx",
		"-config", "/etc/notes.json",
		"-token-sign-key", "secret",
		"-token-issuer", "issuer",
		"-version", "1.0.0",
		"-request-timeout", "15s",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/notes", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "/etc/notes.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

func TestParseServerFlags_Empty(t *testing.T) {
	cfg, err := parseServerFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseServerFlags_InvalidAddress(t *testing.T) {
	_, err := parseServerFlags([]string{"-a", "not-an-address"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseServerFlags_UnknownFlag(t *testing.T) {
	_, err := parseServerFlags([]string{"-unknown"})
	require.Error(t, err)
}

// ── client flags ──

func TestParseClientFlags(t *testing.T) {
	cfg, err := parseClientFlags([]string{"-a", "localhost:9000", "-request-timeout", "3s", "-c", "client.json"})

	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client.json", cfg.JSONFilePath)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestParseClientFlags_RejectsServerFlags(t *testing.T) {
	_, err := parseClientFlags([]string{"-d", "postgres://localhost/notes"})
	require.Error(t, err)
}
