package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	derrors "github.com/dashcraft/cli/internal/errors"
	"github.com/dashcraft/cli/internal/output"
	"github.com/dashcraft/cli/internal/scaffold"
)

// NewPurgeCmd creates the purge command.
func NewPurgeCmd() *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "purge <dir>",
		Short: "Remove a generated dashboard project",
		Long: `Recursively remove a previously generated dashboard project tree.

The target must be an existing directory. Filesystem roots and the current
working directory (or any of its ancestors) are refused. Removal is best
effort: failures on individual entries are collected and reported together.

Examples:
  # Purge with confirmation prompt
  dashcraft purge ./output

  # Skip the confirmation prompt
  dashcraft purge ./output --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPurge(args[0], forceFlag)
		},
	}

	c.Flags().BoolVar(&forceFlag, "force", false, "Skip confirmation prompt")

	return c
}

func runPurge(target string, force bool) error {
	if !force {
		confirmed, err := confirmPurge(target)
		if err != nil {
			return err
		}
		if !confirmed {
			output.Println("Purge cancelled.")
			return nil
		}
	}

	var result *scaffold.PurgeResult
	err := output.RunWithSpinner(context.Background(), func() error {
		var purgeErr error
		result, purgeErr = scaffold.Purge(target)
		return purgeErr
	}, output.WithTitle("Purging dashboard..."))
	if err != nil {
		if result != nil && result.Removed > 0 {
			output.Warn("purge incomplete",
				"root", result.Root,
				"removed", result.Removed)
		}
		return err
	}

	output.Println(output.FormatCheckmark(
		fmt.Sprintf("Purged %s (%d entries removed)", output.StyleNoun.Render(result.Root), result.Removed)))

	return nil
}

// confirmPurge asks the user to confirm the deletion. Without a terminal on
// stdin there is nobody to ask, so --force is required.
func confirmPurge(target string) (bool, error) {
	if !output.IsInputTTY() {
		return false, NewExitError(
			derrors.Wrap(derrors.ErrUnsafePurge, "confirmation required on non-interactive input; use --force"),
			ExitUnsafePurge,
		)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}

	output.Print(fmt.Sprintf("Purge %s? This removes the entire tree. (yes/no): ", abs))

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
