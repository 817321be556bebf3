package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/store"
	"github.com/open-cli-collective/showcase-cli/internal/view"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

type listOptions struct {
	cmdutil.Global
	query  string
	limit  int
	lang   string
	stdout io.Writer
}

// NewCmdList creates the app list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List apps in the catalog",
		Long: `List apps in the catalog, most recently updated first.

--query matches the id, name, tagline, and category in either language,
ignoring case.`,
		Example: `  # List all apps
  showcase app list

  # Find apps by name or category
  showcase app list --query fitness

  # Output as JSON
  showcase app list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Global = cmdutil.GlobalFlags(cmd)
			opts.stdout, _ = cmdutil.Streams(cmd)
			return runList(cmd.Context(), opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Only list apps matching this text")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 50, "Maximum number of apps to show (0 for all)")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "Language for tagline and category: en or tr")

	return cmd
}

func runList(ctx context.Context, opts *listOptions, s store.Store) error {
	if err := view.ValidateFormat(opts.Output); err != nil {
		return err
	}
	if opts.limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	s, cfg, closeStore, err := cmdutil.ResolveStore(ctx, opts.Global, s)
	if err != nil {
		return err
	}
	defer closeStore()

	lang, err := cmdutil.Language(opts.lang, cfg)
	if err != nil {
		return err
	}

	apps, err := s.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list apps: %w", err)
	}

	apps = filterApps(apps, opts.query)
	total := len(apps)
	if opts.limit > 0 && total > opts.limit {
		apps = apps[:opts.limit]
	}

	renderer := opts.Renderer(opts.stdout)

	if opts.Output == string(view.FormatJSON) {
		if apps == nil {
			apps = []catalog.App{}
		}
		return renderer.RenderJSON(apps)
	}

	if len(apps) == 0 {
		if opts.query != "" {
			renderer.RenderText(fmt.Sprintf("No apps match %q.", opts.query))
		} else {
			renderer.RenderText("No apps found.")
		}
		return nil
	}

	headers := []string{"ID", "NAME", "CATEGORY", "VERSION", "RATING"}
	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, []string{
			app.ID,
			view.Truncate(app.Name, 40),
			view.Truncate(app.Category.Get(lang), 24),
			app.Version,
			strconv.FormatFloat(app.Rating, 'f', 1, 64),
		})
	}
	renderer.RenderTable(headers, rows)

	if len(apps) < total && opts.Output != string(view.FormatPlain) {
		renderer.RenderText(fmt.Sprintf("\n(showing first %d of %d apps, use --limit to see more)", len(apps), total))
	}

	return nil
}

// filterApps returns the apps whose text fields contain query, compared
// with Unicode case folding.
func filterApps(apps []catalog.App, query string) []catalog.App {
	query = strings.TrimSpace(query)
	if query == "" {
		return apps
	}

	fold := cases.Fold()
	needle := fold.String(query)

	var matched []catalog.App
	for _, app := range apps {
		fields := []string{
			app.ID, app.Name,
			app.Tagline.EN, app.Tagline.TR,
			app.Category.EN, app.Category.TR,
		}
		for _, field := range fields {
			if strings.Contains(fold.String(field), needle) {
				matched = append(matched, app)
				break
			}
		}
	}
	return matched
}
