// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"strings"
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "json", "console":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: json, console (got: %s)", config.Logging.Format))
	}

	switch config.Layout.DefaultOrientation {
	case "horizontal", "vertical", "none":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("layout.default_orientation must be one of: horizontal, vertical, none (got: %s)", config.Layout.DefaultOrientation))
	}

	if config.Layout.WorkspacesPerOutput < 1 {
		validationErrors = append(validationErrors, "layout.workspaces_per_output must be at least 1")
	}

	if len(config.Outputs) == 0 {
		validationErrors = append(validationErrors, "outputs cannot be empty")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(validationErrors, "\n- "))
	}

	return nil
}
