package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dashcraft/cli/internal/config"
	"github.com/dashcraft/cli/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// Resolved tool configuration (loaded during PersistentPreRunE)
	toolConfig *config.Config
)

// NewRootCmd creates the root command for the DashCraft CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dashcraft",
		Short: "DashCraft dashboard scaffolding CLI",
		Long: `DashCraft generates ready-to-build React dashboard projects from
declarative YAML configurations.

It provides commands to:
  - Generate a project skeleton from a dashboard config
  - Validate a dashboard config without writing anything
  - Purge a previously generated project tree`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to tool config file (env: DASHCRAFT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(NewCreateCmd())
	rootCmd.AddCommand(NewPurgeCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads the tool configuration.
// This is the explicit one-time setup step; the core packages stay stateless.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag, true)

	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		// Commands that don't need the tool config still work.
		output.Debug("config load error", "error", err)
		cfg = config.DefaultConfig()
	}
	toolConfig = cfg

	// Re-apply logging with the resolved timestamp preference.
	output.SetupLogging(verboseFlag, *toolConfig.Log.Timestamps)

	return nil
}
