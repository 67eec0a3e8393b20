package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// supplied by any configuration source. The secret is always injected;
	// there is no in-source fallback.
	ErrMissingTokenSignKey = errors.New("missing token sign key")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
