package configcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/showcase-cli/api"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current showcase configuration with value source indicators.`,
		Example: `  # Show current config
  showcase config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.GlobalFlags(cmd)
			return runShow(g.ConfigFile(), g.NoColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool, out io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, fallback string, secret bool, envNames ...string) {
		_, _ = bold.Fprintf(out, "%-12s", label+":")
		if value == "" {
			if fallback != "" {
				fmt.Fprint(out, fallback)
				_, _ = dim.Fprintln(out, "  (source: default)")
				return
			}
			_, _ = dim.Fprintln(out, "-")
			return
		}

		display := value
		if secret {
			display = maskSecret(value)
		}
		fmt.Fprint(out, display)

		source := "config"
		if fileErr != nil {
			source = "-"
		}
		for _, envVar := range envNames {
			if v := os.Getenv(envVar); v != "" && v == value {
				source = envVar
				break
			}
		}
		if fileValue != value && source == "config" {
			source = "-"
		}

		_, _ = dim.Fprintf(out, "  (source: %s)\n", source)
	}

	printField("URL", cfg.URL, fileCfg.URL, "", false, "SHOWCASE_URL", "SUPABASE_URL")
	printField("API Key", cfg.APIKey, fileCfg.APIKey, "", true, "SHOWCASE_API_KEY", "SUPABASE_ANON_KEY")
	printField("Table", cfg.Table, fileCfg.Table, api.DefaultTable, false, "SHOWCASE_TABLE")
	printField("Language", cfg.Language, fileCfg.Language, string(cfg.DefaultLanguage()), false, "SHOWCASE_LANG")
	printField("Local path", cfg.LocalPath, fileCfg.LocalPath, config.DefaultLocalPath(), false, "SHOWCASE_LOCAL_PATH")

	fmt.Fprintln(out)
	mode := "local only"
	if cfg.HasRemote() {
		mode = "hosted, falling back to local"
	}
	_, _ = dim.Fprintf(out, "Catalog:     %s\n", mode)
	_, _ = dim.Fprintf(out, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(out, "(file not found)")
	}

	return nil
}

// maskSecret keeps the first and last four characters of long secrets.
func maskSecret(value string) string {
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
}
