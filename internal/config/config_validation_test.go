package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret", TokenIssuer: "go-notes-keeper", Version: "dev"},
		Storage: Storage{DB: DB{Driver: DriverPostgres, DSN: "postgres://localhost/notes"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "sqlite driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite }},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing http address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "negative timeout", mutate: func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
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

func TestClientConfig_Validate(t *testing.T) {
	valid := &ClientConfig{Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}}
	assert.NoError(t, valid.validate())

	noAddress := &ClientConfig{Adapter: ClientAdapter{RequestTimeout: time.Second}}
	assert.ErrorIs(t, noAddress.validate(), ErrInvalidAdapterConfigs)

	noTimeout := &ClientConfig{Adapter: ClientAdapter{HTTPAddress: "localhost:8080"}}
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidAdapterConfigs)
}

func TestNewClientConfig(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App:     App{Version: "1.0.0"},
		Adapter: Adapter{HTTPAddress: "localhost:9000", RequestTimeout: 3 * time.Second},
	})

	assert.Equal(t, "localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "1.0.0", cfg.Version)
}
