// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// syno-backup. It aggregates all sub-configurations and is populated by
// merging values from environment variables and the JSON config file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - validate  — required-field rules checked by [StructuredConfig.validate].
type StructuredConfig struct {
	// NAS holds the address, credentials, and target share of the
	// Synology appliance.
	NAS NAS `envPrefix:"NAS_"`

	// Backup holds the local side of the job: which file to archive.
	Backup Backup `envPrefix:"BACKUP_"`

	// Adapter holds transport settings for the FileStation HTTP client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to the JSON configuration file.
	// When empty, config.json next to the executable is used.
	// Populated via the CONFIG environment variable.
	JSONFilePath string `env:"CONFIG"`
}

// NAS holds connection and authentication settings for the target
// Synology appliance.
type NAS struct {
	// Host is the network address of the NAS, without port.
	// Env: NAS_HOST
	Host string `env:"HOST" validate:"required"`

	// Port is the TCP port of the DSM web API (typically 5001 for HTTPS).
	// Env: NAS_PORT
	Port int `env:"PORT" validate:"required,min=1,max=65535"`

	// Username and Password authenticate the DSM session. They are held
	// in memory for the duration of the run only and are never logged.
	// Env: NAS_USERNAME, NAS_PASSWORD
	Username string `env:"USERNAME" validate:"required"`
	Password string `env:"PASSWORD" validate:"required"`

	// ShareName is the shared folder on the NAS the archive is written
	// into. The share must already exist; it is resolved to its absolute
	// path via SYNO.FileStation.List before the upload.
	// Env: NAS_SHARE_NAME
	ShareName string `env:"SHARE_NAME" validate:"required"`
}

// Backup holds the local-filesystem side of the job.
type Backup struct {
	// SourcePath is the path of the file to back up. The archive is
	// written next to it as SourcePath + ".zip" and intentionally left
	// on disk after the run.
	// Env: BACKUP_FILENAME
	SourcePath string `env:"FILENAME" validate:"required"`
}

// Adapter holds transport settings for the outbound FileStation client.
type Adapter struct {
	// RequestTimeout is the per-request timeout for DSM calls (e.g.
	// "30s", "5m"). Zero means no timeout: a hung NAS blocks the run
	// until the job runner kills it.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InsecureTLS disables certificate verification for the DSM
	// endpoint. Synology boxes commonly serve self-signed certificates.
	// Env: ADAPTER_INSECURE_TLS
	InsecureTLS bool `env:"INSECURE_TLS"`
}

// GetBackupConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (first source wins for
// non-zero fields):
//  1. Environment variables
//  2. JSON file (config.json next to the executable, or $CONFIG)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetBackupConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		build()
}
