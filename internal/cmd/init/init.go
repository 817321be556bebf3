// Package init provides the init command for showcase.
package init

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/showcase-cli/api"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/config"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

type initOptions struct {
	configPath string
	url        string
	apiKey     string
	noVerify   bool
	stdout     io.Writer
	httpClient *http.Client
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize showcase configuration",
		Long: `Initialize showcase with your hosted catalog and local preferences.

This command will guide you through setting up the hosted database URL,
its API key, the table that holds the apps, the default content language,
and where the local catalog lives. The configuration will be saved to
~/.config/showcase/config.yml.

Leave the URL empty to work with the local catalog only. When a URL is
set, the local catalog is used whenever the hosted one cannot be reached.

The API key is the project's anon or service key from its API settings.`,
		Example: `  # Interactive setup
  showcase init

  # Pre-populate URL
  showcase init --url https://myproject.supabase.co`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			if opts.configPath == "" {
				opts.configPath = config.DefaultConfigPath()
			}
			opts.stdout = cmd.OutOrStdout()
			return runInit(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "Hosted database URL (e.g., https://myproject.supabase.co)")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "Hosted database API key")
	cmd.Flags().BoolVar(&opts.noVerify, "no-verify", false, "Skip connection verification")

	return cmd
}

func runInit(ctx context.Context, opts *initOptions) error {
	out := opts.stdout

	if _, err := os.Stat(opts.configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", opts.configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		URL:       opts.url,
		APIKey:    opts.apiKey,
		Table:     api.DefaultTable,
		Language:  string(catalog.English),
		LocalPath: config.DefaultLocalPath(),
	}

	if err := newForm(cfg).Run(); err != nil {
		return err
	}

	return finishInit(ctx, cfg, opts)
}

// newForm builds the interactive form that fills cfg.
func newForm(cfg *config.Config) *huh.Form {
	languages := make([]huh.Option[string], 0, len(catalog.Languages))
	for _, lang := range catalog.Languages {
		languages = append(languages, huh.NewOption(languageLabel(lang), string(lang)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hosted database URL (optional)").
				Description("Leave empty to use the local catalog only").
				Placeholder("https://myproject.supabase.co").
				Value(&cfg.URL),

			huh.NewInput().
				Title("API Key").
				Description("Required when a URL is set").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.APIKey),

			huh.NewInput().
				Title("Table").
				Description("Table holding the app rows").
				Value(&cfg.Table).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("table is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default language").
				Description("Language used by --lang when it is not given").
				Options(languages...).
				Value(&cfg.Language),

			huh.NewInput().
				Title("Local catalog path").
				Description("SQLite database used offline and as the fallback").
				Value(&cfg.LocalPath),
		),
	)
}

func languageLabel(lang catalog.Language) string {
	switch lang {
	case catalog.Turkish:
		return "Türkçe (tr)"
	default:
		return "English (en)"
	}
}

// finishInit validates, verifies and saves cfg.
func finishInit(ctx context.Context, cfg *config.Config, opts *initOptions) error {
	out := opts.stdout

	cfg.NormalizeURL()
	if cfg.Table == api.DefaultTable {
		cfg.Table = ""
	}
	if cfg.LocalPath == config.DefaultLocalPath() {
		cfg.LocalPath = ""
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.HasRemote() && !opts.noVerify {
		fmt.Fprint(out, "Verifying connection... ")
		if err := cmdutil.CheckConnection(ctx, cfg, opts.httpClient); err != nil {
			fmt.Fprintln(out, "failed!")
			return fmt.Errorf("connection verification failed: %w", err)
		}
		fmt.Fprintln(out, "success!")
	}

	if err := cfg.Save(opts.configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nConfiguration saved to %s\n", opts.configPath)
	fmt.Fprintln(out, "\nYou're all set! Try running:")
	fmt.Fprintln(out, "  showcase app list")
	fmt.Fprintln(out, "  showcase policy parse policy.md")

	return nil
}
