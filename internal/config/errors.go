package config

import "errors"

// Validation errors returned by [DeviceConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid outbound transport
	// settings (missing base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local store settings
	// (empty path or an in-memory path that cannot survive restarts).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrMissingCredential indicates the device has no bearer credential
	// configured; pairing has not been completed.
	ErrMissingCredential = errors.New("missing device credential")
	// ErrInvalidSyncConfigs indicates invalid sync engine settings
	// (zero interval).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
