package config

import (
	"fmt"
	"time"
)

// DeviceAdapter holds network settings used by the device transport layer.
type DeviceAdapter struct {
	// BaseURL is the reconciliation server base URL.
	BaseURL string
	// Token is the opaque bearer credential sent on every request.
	Token string
	// RequestTimeout bounds every outbound call.
	RequestTimeout time.Duration
}

// DeviceStorage holds the local durable store settings.
type DeviceStorage struct {
	// Path is the SQLite database file path. ":memory:" is rejected for
	// the real agent: the whole point of the local store is surviving
	// restarts.
	Path string
}

// DeviceSyncSettings holds the sync engine's tunables.
type DeviceSyncSettings struct {
	Interval time.Duration
	BatchCap int
}

// DeviceConfig is the device-agent view over [StructuredConfig].
type DeviceConfig struct {
	Adapter      DeviceAdapter
	Storage      DeviceStorage
	Sync         DeviceSyncSettings
	CacheMaxAge  time.Duration
	HistoryLimit int
	OperatorMode bool
}

// Defaults applied by GetDeviceConfig when the merged sources leave a
// field unset.
const (
	defaultSyncInterval   = 30 * time.Second
	defaultAdapterTimeout = 15 * time.Second
	defaultCacheMaxAge    = 7 * 24 * time.Hour
	defaultHistoryLimit   = 50
	defaultBatchCap       = 100
)

// GetDeviceConfig builds and validates the device-specific config view
// from the merged structured configuration, applying agent defaults where
// no source supplied a value.
func GetDeviceConfig() (*DeviceConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	deviceCfg := &DeviceConfig{
		Adapter: DeviceAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			Token:          cfg.Adapter.Token,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: DeviceStorage{
			Path: cfg.Storage.DB.DSN,
		},
		Sync: DeviceSyncSettings{
			Interval: cfg.Device.SyncInterval,
			BatchCap: cfg.Device.BatchCap,
		},
		CacheMaxAge:  cfg.Device.CacheMaxAge,
		HistoryLimit: cfg.Device.HistoryLimit,
		OperatorMode: cfg.Device.OperatorMode,
	}
	deviceCfg.applyDefaults()

	return deviceCfg, deviceCfg.validate()
}

func (cfg *DeviceConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = defaultSyncInterval
	}
	if cfg.Sync.BatchCap <= 0 {
		cfg.Sync.BatchCap = defaultBatchCap
	}
	if cfg.CacheMaxAge <= 0 {
		cfg.CacheMaxAge = defaultCacheMaxAge
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
}
