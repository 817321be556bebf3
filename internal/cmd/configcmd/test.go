package configcmd

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/config"
	"github.com/open-cli-collective/showcase-cli/internal/store"
)

type testOptions struct {
	configPath string
	noColor    bool
	stdout     io.Writer
	httpClient *http.Client
}

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the configured catalog",
		Long: `Test that showcase can reach the hosted catalog with the current
configuration and that the local catalog can be opened.`,
		Example: `  # Test connection
  showcase config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.GlobalFlags(cmd)
			return runTest(cmd.Context(), &testOptions{
				configPath: g.ConfigFile(),
				noColor:    g.NoColor,
				stdout:     cmd.OutOrStdout(),
			})
		},
	}

	return cmd
}

func runTest(ctx context.Context, opts *testOptions, cfgs ...*config.Config) error {
	if opts.noColor {
		color.NoColor = true
	}
	out := opts.stdout

	var cfg *config.Config
	if len(cfgs) > 0 && cfgs[0] != nil {
		cfg = cfgs[0]
	} else {
		var err error
		cfg, err = cmdutil.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	local, err := store.OpenLocal(ctx, cfg.LocalStorePath())
	if err != nil {
		_, _ = red.Fprintln(out, "✗ Local catalog failed:", err)
		return fmt.Errorf("failed to open local catalog: %w", err)
	}
	apps, err := local.List(ctx)
	_ = local.Close()
	if err != nil {
		_, _ = red.Fprintln(out, "✗ Local catalog failed:", err)
		return fmt.Errorf("failed to read local catalog: %w", err)
	}
	_, _ = green.Fprintf(out, "✓ Local catalog: %s (%d apps)\n", cfg.LocalStorePath(), len(apps))

	if !cfg.HasRemote() {
		fmt.Fprintln(out, "\nNo hosted catalog configured. Set one up with: showcase init")
		return nil
	}

	fmt.Fprintf(out, "Testing connection to %s...\n", cfg.URL)

	if err := cmdutil.CheckConnection(ctx, cfg, opts.httpClient); err != nil {
		_, _ = red.Fprintln(out, "✗ Connection failed:", err)
		fmt.Fprintln(out, "\nCheck your settings with: showcase config show")
		fmt.Fprintln(out, "Reconfigure with: showcase init")
		return fmt.Errorf("connection failed: %w", err)
	}

	_, _ = green.Fprintln(out, "✓ Authentication successful")
	_, _ = green.Fprintln(out, "✓ Table access verified")

	return nil
}
