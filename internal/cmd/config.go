package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dashcraft/cli/internal/config"
	derrors "github.com/dashcraft/cli/internal/errors"
	"github.com/dashcraft/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Tool configuration operations",
		Long:  `Commands for initializing and validating the DashCraft CLI configuration.`,
	}

	c.AddCommand(NewConfigInitCmd())
	c.AddCommand(NewConfigVetCmd())

	return c
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default tool configuration",
		Long: `Initialize the DashCraft CLI configuration.

Creates ~/.dashcraft/config.yaml with documented defaults.

Examples:
  # Initialize configuration
  dashcraft config init

  # Overwrite existing configuration
  dashcraft config init --force`,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(forceFlag)
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(force bool) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return derrors.Wrap(derrors.ErrFilesystem, "could not determine home directory")
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !force {
		return &derrors.DetailError{
			Type:     "invalid configuration",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    derrors.ErrConfig,
		}
	}

	if err := os.MkdirAll(paths.HomeDir, 0o700); err != nil {
		return derrors.NewFilesystemError("creating config directory", paths.HomeDir, err)
	}

	if err := os.WriteFile(paths.ConfigFile, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		return derrors.NewFilesystemError("writing config file", paths.ConfigFile, err)
	}

	output.Println("Configuration initialized at " + paths.ConfigFile)
	output.Println("")
	output.Println("Validate with: dashcraft config vet")

	return nil
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "vet",
		Short: "Validate tool configuration",
		Long: `Validate the DashCraft CLI configuration file.

The config path is resolved using precedence:
  --config flag > DASHCRAFT_CONFIG env > ~/.dashcraft/config.yaml

Examples:
  # Validate default configuration
  dashcraft config vet

  # Validate custom config path
  dashcraft config vet --config /path/to/config.yaml`,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigVet()
		},
	}

	return c
}

func runConfigVet() error {
	configFile := configFlag
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return derrors.Wrap(derrors.ErrFilesystem, "could not resolve config path")
		}
	}

	exists, err := config.ConfigFileExists(configFile)
	if err != nil {
		return derrors.NewFilesystemError("inspecting config file", configFile, err)
	}
	if !exists {
		return &derrors.DetailError{
			Type:     "invalid configuration",
			Message:  "configuration file not found",
			Location: configFile,
			Hint:     "Run 'dashcraft config init' to create default configuration.",
			Cause:    derrors.ErrConfig,
		}
	}

	cfg, err := config.NewLoader().LoadWithDefaults(configFile)
	if err != nil {
		return &derrors.DetailError{
			Type:     "invalid configuration",
			Message:  err.Error(),
			Location: configFile,
			Hint:     "Fix the reported field or re-run 'dashcraft config init --force'.",
			Cause:    derrors.ErrConfig,
		}
	}

	output.Debug("config validated", "path", configFile, "outputDir", cfg.Output.Dir)
	output.Println(output.FormatCheckmark("Configuration valid: " + configFile))

	return nil
}
