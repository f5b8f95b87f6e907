package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidNASConfigs indicates invalid NAS settings (for example,
	// missing host, credentials, share name, or an out-of-range port).
	ErrInvalidNASConfigs = errors.New("invalid nas configuration")
	// ErrInvalidBackupConfigs indicates invalid backup settings
	// (for example, no source file path).
	ErrInvalidBackupConfigs = errors.New("invalid backup configuration")
)
