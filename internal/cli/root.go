// Package cli provides the command-line interface for loft.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/loftwm/loft/internal/config"
	"github.com/loftwm/loft/internal/logging"
)

// CLI holds the configuration and logger shared by the commands.
type CLI struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewCLI loads the configuration and builds the logger the commands run with.
func NewCLI() (*CLI, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg := manager.Get()

	// Filter through the global level so a config reload can change verbosity
	// without rebuilding the logger.
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
	logger := logging.New(logging.Config{
		Level:      zerolog.TraceLevel,
		Format:     cfg.Logging.Format,
		TimeFormat: logging.DefaultConfig().TimeFormat,
	})

	// Live log-level reload while a long-running command watches the tree.
	manager.OnConfigChange(func(updated *config.Config) {
		logger.Info().Str("level", updated.Logging.Level).Msg("config changed, updating log level")
		zerolog.SetGlobalLevel(logging.ParseLevel(updated.Logging.Level))
	})
	if err := manager.Watch(); err != nil {
		return nil, fmt.Errorf("failed to watch config: %w", err)
	}

	return &CLI{Config: cfg, Logger: logger}, nil
}

// NewRootCmd creates the root command for loft
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loft",
		Short: "Container tree manager for tiling window managers",
		Long:  `loft maintains the layout tree of a tiling window manager: outputs, workspaces, tiling and floating containers, focus order and fullscreen state.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("loft %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(NewTreeCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}
