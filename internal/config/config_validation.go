// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before the run starts: every NAS field present, the port in
// the valid TCP range, and a source file path configured. Rules are the
// `validate` struct tags on [NAS] and [Backup].
//
// Returns nil if the configuration is valid, or a sentinel-wrapped error
// naming the offending group otherwise.
func (cfg *StructuredConfig) validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.Struct(cfg.NAS); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNASConfigs, err)
	}

	if err := v.Struct(cfg.Backup); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackupConfigs, err)
	}

	return nil
}
