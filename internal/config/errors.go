package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSearchConfigs indicates an enabled search engine with
	// incomplete settings (for example, missing index or request timeout).
	ErrInvalidSearchConfigs = errors.New("invalid search configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, an index interval without a search engine).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
