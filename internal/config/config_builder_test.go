package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeJSONConfig(t, `{
		"app": {"token_sign_key": "secret", "token_issuer": "tally-pairing"},
		"storage": {"db": {"dsn": "postgres://localhost/tally"}},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "30s"},
		"adapter": {"base_url": "https://tally.example.org", "token": "tok", "request_timeout": "15s"},
		"device": {"sync_interval": "30s", "cache_max_age": "168h", "history_limit": 50}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://localhost/tally", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://tally.example.org", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Device.SyncInterval)
	assert.Equal(t, 168*time.Hour, cfg.Device.CacheMaxAge)
	assert.Equal(t, 50, cfg.Device.HistoryLimit)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeJSONConfig(t, `{"server": {"request_timeout": 30000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON("/does/not/exist.json")
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeJSONConfig(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestConfigBuilder_EarlierSourcesWin(t *testing.T) {
	first := &StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}}
	second := &StructuredConfig{
		Server:  Server{HTTPAddress: "localhost:9999", RequestTimeout: 30 * time.Second},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/tally"}},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()

	require.NoError(t, err)
	// the first source keeps its value, the second only fills gaps
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/tally", cfg.Storage.DB.DSN)
}

func TestDeviceConfig_ApplyDefaults(t *testing.T) {
	cfg := &DeviceConfig{
		Adapter: DeviceAdapter{BaseURL: "https://tally.example.org", Token: "tok"},
		Storage: DeviceStorage{Path: "/data/tally.db"},
	}

	cfg.applyDefaults()

	assert.Equal(t, defaultSyncInterval, cfg.Sync.Interval)
	assert.Equal(t, defaultBatchCap, cfg.Sync.BatchCap)
	assert.Equal(t, defaultAdapterTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultCacheMaxAge, cfg.CacheMaxAge)
	assert.Equal(t, defaultHistoryLimit, cfg.HistoryLimit)
	require.NoError(t, cfg.validate())
}

func TestDeviceConfig_Validate(t *testing.T) {
	valid := func() *DeviceConfig {
		cfg := &DeviceConfig{
			Adapter: DeviceAdapter{BaseURL: "https://tally.example.org", Token: "tok"},
			Storage: DeviceStorage{Path: "/data/tally.db"},
		}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*DeviceConfig)
		wantErr error
	}{
		{
			name:    "missing storage path",
			mutate:  func(c *DeviceConfig) { c.Storage.Path = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory storage rejected",
			mutate:  func(c *DeviceConfig) { c.Storage.Path = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing base url",
			mutate:  func(c *DeviceConfig) { c.Adapter.BaseURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "missing credential",
			mutate:  func(c *DeviceConfig) { c.Adapter.Token = "" },
			wantErr: ErrMissingCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}
