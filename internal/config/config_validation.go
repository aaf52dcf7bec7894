// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxRetries < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Search.Address != "" && (cfg.Search.Index == "" || cfg.Search.RequestTimeout <= 0) {
		return ErrInvalidSearchConfigs
	}

	if cfg.Workers.IndexInterval < 0 || (cfg.Workers.IndexInterval > 0 && cfg.Search.Address == "") {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
