// Package cmdutil holds the helpers shared by showcase commands.
package cmdutil

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/showcase-cli/api"
	"github.com/open-cli-collective/showcase-cli/internal/config"
	"github.com/open-cli-collective/showcase-cli/internal/store"
	"github.com/open-cli-collective/showcase-cli/internal/view"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
	"github.com/open-cli-collective/showcase-cli/pkg/md"
)

// InitHint is appended to configuration errors.
const InitHint = "(run 'showcase init' to configure)"

// Global holds the values of the root persistent flags.
type Global struct {
	ConfigPath string
	Output     string
	NoColor    bool
	Verbose    bool
}

// GlobalFlags reads the persistent flags inherited by cmd.
func GlobalFlags(cmd *cobra.Command) Global {
	var g Global
	g.ConfigPath, _ = cmd.Flags().GetString("config")
	g.Output, _ = cmd.Flags().GetString("output")
	g.NoColor, _ = cmd.Flags().GetBool("no-color")
	g.Verbose, _ = cmd.Flags().GetBool("verbose")
	return g
}

// ConfigFile returns the config path from --config or the default location.
func (g Global) ConfigFile() string {
	if g.ConfigPath != "" {
		return g.ConfigPath
	}
	return config.DefaultConfigPath()
}

// Renderer returns a renderer for the selected output format writing to w.
func (g Global) Renderer(w io.Writer) *view.Renderer {
	r := view.NewRenderer(view.Format(g.Output), g.NoColor)
	if w != nil {
		r.SetWriter(w)
	}
	return r
}

// LoadConfig loads and validates the configuration at path.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w %s", err, InitHint)
	}
	cfg.NormalizeURL()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w %s", err, InitHint)
	}
	return cfg, nil
}

// OpenStore loads the configuration at path and opens the store it describes.
func OpenStore(ctx context.Context, path string) (store.Store, *config.Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, nil, err
	}

	s, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return s, cfg, nil
}

// ResolveStore returns s when it is set, otherwise the store configured at
// g's config path. The returned func closes a store opened here.
func ResolveStore(ctx context.Context, g Global, s store.Store) (store.Store, *config.Config, func(), error) {
	if s != nil {
		return s, &config.Config{}, func() {}, nil
	}

	opened, cfg, err := OpenStore(ctx, g.ConfigFile())
	if err != nil {
		return nil, nil, nil, err
	}
	return opened, cfg, func() { _ = opened.Close() }, nil
}

// Language resolves a --lang value, falling back to the configured language.
func Language(flag string, cfg *config.Config) (catalog.Language, error) {
	if flag != "" {
		return catalog.ParseLanguage(flag)
	}
	if cfg == nil {
		return catalog.English, nil
	}
	return cfg.DefaultLanguage(), nil
}

// ReadInput reads the named file, or stdin when path is empty or "-".
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// LoadMarkdown splits front matter from data and optionally converts the
// body from HTML to markdown.
func LoadMarkdown(data []byte, fromHTML bool) (md.FrontMatter, string, error) {
	meta, body, err := md.ParseFrontMatter(data)
	if err != nil {
		return md.FrontMatter{}, "", err
	}

	text := string(body)
	if fromHTML {
		text, err = md.FromHTML(text)
		if err != nil {
			return md.FrontMatter{}, "", err
		}
	}
	return meta, text, nil
}

// Confirm prints prompt and reports whether the reply was yes.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	reply := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return reply == "y" || reply == "yes"
}

// Streams returns the command's output and input, falling back to the
// process streams.
func Streams(cmd *cobra.Command) (io.Writer, io.Reader) {
	return cmd.OutOrStdout(), cmd.InOrStdin()
}

// CheckConnection pings the hosted table described by cfg and turns API
// failures into actionable messages. A nil hc uses a short-timeout client.
func CheckConnection(ctx context.Context, cfg *config.Config, hc *http.Client) error {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	client := api.NewClient(cfg.URL, cfg.APIKey, api.WithTable(cfg.Table), api.WithHTTPClient(hc))

	err := client.Ping(ctx)
	if err == nil {
		return nil
	}

	var apiErr *api.ErrorResponse
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("authentication failed - check your API key")
	case http.StatusForbidden:
		return fmt.Errorf("access denied - check the table permissions for this key")
	case http.StatusNotFound:
		return fmt.Errorf("table %q not found", client.Table())
	}
	return fmt.Errorf("unexpected status code: %d", apiErr.StatusCode)
}
