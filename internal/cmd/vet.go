package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashcraft/cli/internal/dashboard"
	derrors "github.com/dashcraft/cli/internal/errors"
	"github.com/dashcraft/cli/internal/output"
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	var fileFlag string

	c := &cobra.Command{
		Use:   "vet",
		Short: "Validate a dashboard config",
		Long: `Validate a dashboard configuration without touching the filesystem.

Checks performed:
  1. The file parses as YAML
  2. Every component has a valid id
  3. No two components collide on a file or symbol name

Examples:
  dashcraft vet -f dashboard.yaml`,
		RunE: func(c *cobra.Command, args []string) error {
			return runVet(fileFlag)
		},
	}

	c.Flags().StringVarP(&fileFlag, "file", "f", "", "Path to the dashboard config file (required)")
	_ = c.MarkFlagRequired("file")

	return c
}

func runVet(file string) error {
	cfg, err := dashboard.Load(file)
	if err != nil {
		return &derrors.DetailError{
			Type:     "invalid configuration",
			Message:  err.Error(),
			Location: file,
			Hint:     "Check that the file exists and is valid YAML.",
			Cause:    derrors.ErrConfig,
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	theme := cfg.Theme.WithDefaults()
	output.Println(output.FormatCheckmark(fmt.Sprintf(
		"Configuration valid: %d component(s), theme mode %q", len(cfg.Components), theme.Mode)))

	return nil
}
