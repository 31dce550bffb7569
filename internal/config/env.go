// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment. Fields are mapped via
// the `env` and `envPrefix` tags of [StructuredConfig] and its nested types.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvironment(cfg, nil)
}

// parseEnvironment reads variables from environment instead of the process
// when it is non-nil. Unset variables leave their fields zero so that later
// sources can fill them during the merge.
func parseEnvironment(cfg *StructuredConfig, environment map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
