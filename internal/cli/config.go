package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loftwm/loft/internal/config"
)

// NewConfigCmd creates the config command, which prints the effective
// configuration after defaults, file and environment are merged.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cli, err := NewCLI()
			if err != nil {
				return fmt.Errorf("failed to initialize CLI: %w", err)
			}

			configDir, err := config.GetConfigDir()
			if err == nil {
				fmt.Printf("config directory: %s\n", configDir)
			}

			cfg := cli.Config
			fmt.Printf("logging.level: %s\n", cfg.Logging.Level)
			fmt.Printf("logging.format: %s\n", cfg.Logging.Format)
			fmt.Printf("layout.default_orientation: %s\n", cfg.Layout.DefaultOrientation)
			fmt.Printf("layout.workspaces_per_output: %d\n", cfg.Layout.WorkspacesPerOutput)
			fmt.Printf("outputs: %s\n", strings.Join(cfg.Outputs, ", "))
			return nil
		},
	}
}
