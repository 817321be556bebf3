package configcmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
)

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored configuration",
		Long: `Delete the showcase configuration file. Environment variables will still be used if set.
The local catalog database is not touched.`,
		Example: `  # Clear config
  showcase config clear`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.GlobalFlags(cmd)
			return runClear(g.ConfigFile(), g.NoColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runClear(configPath string, noColor bool, out io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	err := os.Remove(configPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	if errors.Is(err, os.ErrNotExist) {
		_, _ = green.Fprintf(out, "✓ No config file to remove\n")
	} else {
		_, _ = green.Fprintf(out, "✓ Configuration cleared from %s\n", configPath)
	}

	var activeVars []string
	for _, v := range envVars {
		if os.Getenv(v) != "" {
			activeVars = append(activeVars, v)
		}
	}

	if len(activeVars) > 0 {
		_, _ = dim.Fprintf(out, "\nNote: Environment variables will still be used: %v\n", activeVars)
	}

	return nil
}
