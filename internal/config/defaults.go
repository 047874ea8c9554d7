// Package config provides default configuration values for loft.
package config

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultOrientation         = "horizontal"
	defaultWorkspacesPerOutput = 1
)

// DefaultConfig returns the default configuration values for loft.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Layout: LayoutConfig{
			DefaultOrientation:  defaultOrientation,
			WorkspacesPerOutput: defaultWorkspacesPerOutput,
		},
		Outputs: []string{"DP-1"},
	}
}

// setDefaults registers defaults with viper (must be called with lock held).
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("layout.default_orientation", defaults.Layout.DefaultOrientation)
	m.viper.SetDefault("layout.workspaces_per_output", defaults.Layout.WorkspacesPerOutput)

	m.viper.SetDefault("outputs", defaults.Outputs)
}
