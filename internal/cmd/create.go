package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dashcraft/cli/internal/dashboard"
	derrors "github.com/dashcraft/cli/internal/errors"
	"github.com/dashcraft/cli/internal/output"
	"github.com/dashcraft/cli/internal/scaffold"
)

// NewCreateCmd creates the create command.
func NewCreateCmd() *cobra.Command {
	var fileFlag string
	var outputFlag string

	c := &cobra.Command{
		Use:   "create",
		Short: "Generate a dashboard project from a config",
		Long: `Generate a React dashboard project skeleton from a YAML configuration.

The configuration declares the dashboard components and an optional theme:

  components:
    - id: chart
      type: line
      options:
        title: Revenue
  theme:
    mode: dark

Re-running against the same output directory is safe: directories are created
only if missing and files are rewritten with identical content.

Examples:
  # Generate into the default output directory
  dashcraft create -f dashboard.yaml

  # Generate into a specific directory
  dashcraft create -f dashboard.yaml -o ./my-dashboard`,
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(fileFlag, outputFlag)
		},
	}

	c.Flags().StringVarP(&fileFlag, "file", "f", "", "Path to the dashboard config file (required)")
	c.Flags().StringVarP(&outputFlag, "output", "o", "", "Output directory (default from tool config)")
	_ = c.MarkFlagRequired("file")

	return c
}

func runCreate(file, outputDir string) error {
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

	if outputDir == "" {
		outputDir = toolConfig.Output.Dir
	}

	var result *scaffold.Result
	err = output.RunWithSpinner(context.Background(), func() error {
		var genErr error
		result, genErr = scaffold.Generate(cfg, outputDir)
		return genErr
	}, output.WithTitle("Generating dashboard..."))
	if err != nil {
		if result != nil && len(result.Files) > 0 {
			output.Warn("generation failed with partial output left in place",
				"root", result.Root,
				"written", len(result.Files))
		}
		return err
	}

	absRoot, absErr := filepath.Abs(result.Root)
	if absErr != nil {
		absRoot = result.Root
	}

	output.Println(fmt.Sprintf("Created dashboard in %s", output.StyleNoun.Render(absRoot)))
	output.Println("")

	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		files[f] = fileDescription(f)
	}
	output.Print(output.RenderFileTree(filepath.Base(absRoot), files))

	output.Println("")
	output.Println(output.FormatCheckmark("Dashboard ready. Run 'npm install' and 'npm start' to launch."))

	return nil
}

// fileDescription returns the tree annotation for a generated file.
func fileDescription(path string) string {
	switch path {
	case scaffold.ManifestFilePath:
		return "Dependency manifest"
	case scaffold.IndexFilePath:
		return "Application bootstrap"
	case scaffold.AppFilePath:
		return "Root application shell"
	case scaffold.ThemeFilePath:
		return "Theme definition"
	}

	if strings.HasPrefix(path, "src/components/") {
		return "Component stub"
	}

	return ""
}
