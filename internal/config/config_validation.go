// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks the merged [StructuredConfig] against server startup
// invariants. Device-only fields are not checked here; the device agent
// validates its own view in [DeviceConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *DeviceConfig) validate() error {
	if cfg.Storage.Path == "" || strings.Contains(cfg.Storage.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.Token == "" {
		return ErrMissingCredential
	}

	if cfg.Sync.Interval == 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
