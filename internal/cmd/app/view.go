package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/completion"
	"github.com/open-cli-collective/showcase-cli/internal/store"
	"github.com/open-cli-collective/showcase-cli/internal/view"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
	"github.com/open-cli-collective/showcase-cli/pkg/md"
)

type viewOptions struct {
	cmdutil.Global
	lang   string
	width  int
	stdout io.Writer
}

// NewCmdView creates the app view command.
func NewCmdView() *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <app-id>",
		Short: "View an app",
		Long:  `View an app's details in one language, with its description and features rendered from markdown.`,
		Example: `  # View an app
  showcase app view fittrack-pro

  # View the Turkish texts
  showcase app view fittrack-pro --lang tr

  # Output the full record as JSON
  showcase app view fittrack-pro -o json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completion.AppIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Global = cmdutil.GlobalFlags(cmd)
			opts.stdout, _ = cmdutil.Streams(cmd)
			return runView(cmd.Context(), args[0], opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "Language: en or tr (default: configured language)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Wrap description text at this width")

	return cmd
}

func runView(ctx context.Context, appID string, opts *viewOptions, s store.Store) error {
	if err := view.ValidateFormat(opts.Output); err != nil {
		return err
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

	app, err := s.Get(ctx, appID)
	if err != nil {
		return fmt.Errorf("failed to get app %s: %w", appID, err)
	}

	renderer := opts.Renderer(opts.stdout)

	if opts.Output == string(view.FormatJSON) {
		return renderer.RenderJSON(app)
	}

	termOpts := md.TerminalOptions{Width: opts.width, NoColor: opts.NoColor}

	renderer.RenderHeading(app.Name)
	renderer.RenderKeyValue("ID", app.ID)
	if tagline := app.Tagline.Get(lang); tagline != "" {
		renderer.RenderKeyValue("Tagline", tagline)
	}
	if category := app.Category.Get(lang); category != "" {
		renderer.RenderKeyValue("Category", category)
	}
	renderer.RenderKeyValue("Version", app.Version)
	renderer.RenderKeyValue("Rating", fmt.Sprintf("%.1f (%d reviews)", app.Rating, app.ReviewsCount))
	if updated := app.LastUpdated.Get(lang); updated != "" {
		renderer.RenderKeyValue("Last updated", updated)
	}
	if app.DownloadLink != "" {
		renderer.RenderKeyValue("Download", app.DownloadLink)
	}
	renderer.RenderKeyValue("Screenshots", fmt.Sprintf("%d", len(app.Screenshots)))
	renderer.RenderText("")

	if description := app.Description.Get(lang); strings.TrimSpace(description) != "" {
		renderer.RenderText(md.RenderTerminal(md.ToBlocks(description), termOpts))
	} else {
		renderer.RenderText("(No description)")
	}

	if len(app.Features) > 0 {
		renderer.RenderText("")
		renderer.RenderHeading("Features")
		for _, feature := range app.Features {
			renderer.RenderText(fmt.Sprintf("• %s [%s]", feature.Title.Get(lang), feature.IconName))
			if description := feature.Description.Get(lang); description != "" {
				renderer.RenderText(indent(md.RenderTerminal(md.ToBlocks(description), termOpts), "  "))
			}
		}
	}

	renderer.RenderText("")
	sections := catalog.PolicySections(app.PrivacyPolicy, lang)
	renderer.RenderText(fmt.Sprintf("Privacy policy: %d sections (showcase policy show %s --lang %s)", len(sections), app.ID, lang))

	return nil
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
