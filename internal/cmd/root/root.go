// Package root provides the root command for the showcase CLI.
package root

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/app"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/catalogcmd"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/completion"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/showcase-cli/internal/cmd/init"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/policy"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/render"
	"github.com/open-cli-collective/showcase-cli/internal/config"
	"github.com/open-cli-collective/showcase-cli/internal/version"
)

// NewCmdRoot creates the root command for showcase.
func NewCmdRoot() *cobra.Command {
	return newCmdRoot(os.Stderr)
}

func newCmdRoot(logOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Manage a bilingual app portfolio and its privacy policies",
		Long: `showcase is a CLI tool for maintaining an app portfolio catalog.

It manages app listings in English and Turkish, turns markdown privacy
policies into titled sections, and renders emphasis markup in the terminal.
The catalog lives in a hosted PostgREST table with a local SQLite fallback.

Get started by running: showcase init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setup(cmd, logOut)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/showcase/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log debug details to stderr")

	cmd.SetVersionTemplate("showcase version " + version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(app.NewCmdApp())
	cmd.AddCommand(policy.NewCmdPolicy())
	cmd.AddCommand(catalogcmd.NewCmdCatalog())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}

// setup attaches a logger to the command context and applies the configured
// output format when -o was not given.
func setup(cmd *cobra.Command, logOut io.Writer) {
	g := cmdutil.GlobalFlags(cmd)

	minLevel := pslog.InfoLevel
	if g.Verbose {
		minLevel = pslog.DebugLevel
	}
	logger := pslog.NewWithOptions(logOut, pslog.Options{
		Mode:     pslog.ModeConsole,
		NoColor:  g.NoColor,
		MinLevel: minLevel,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(pslog.ContextWithLogger(ctx, logger))

	if cmd.Flags().Changed("output") {
		return
	}
	cfg, err := config.LoadWithEnv(g.ConfigFile())
	if err != nil {
		pslog.Ctx(cmd.Context()).With("err", err).Debug("config not readable, keeping default output format")
		return
	}
	if cfg.OutputFormat != "" {
		_ = cmd.Flags().Set("output", cfg.OutputFormat)
	}
}
