package policy

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/completion"
	"github.com/open-cli-collective/showcase-cli/internal/store"
	"github.com/open-cli-collective/showcase-cli/internal/view"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
	"github.com/open-cli-collective/showcase-cli/pkg/md"
)

type showOptions struct {
	cmdutil.Global
	lang   string
	width  int
	stdout io.Writer
}

// NewCmdShow creates the policy show command.
func NewCmdShow() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <app-id>",
		Short: "Display an app's privacy policy",
		Long:  `Display the privacy policy of an app in one language, rendering emphasis in each section.`,
		Example: `  # Show the English policy
  showcase policy show fittrack-pro

  # Show the Turkish policy as JSON
  showcase policy show fittrack-pro --lang tr -o json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completion.AppIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Global = cmdutil.GlobalFlags(cmd)
			opts.stdout, _ = cmdutil.Streams(cmd)
			return runShow(cmd.Context(), args[0], opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "policy language: en or tr (default: configured language)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "wrap section text at this width")

	return cmd
}

func runShow(ctx context.Context, appID string, opts *showOptions, s store.Store) error {
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

	sections := catalog.PolicySections(app.PrivacyPolicy, lang)
	renderer := opts.Renderer(opts.stdout)

	if opts.Output == string(view.FormatJSON) {
		return renderer.RenderJSON(sections)
	}

	if len(sections) == 0 {
		renderer.RenderText(fmt.Sprintf("(No %s privacy policy for %s)", lang, app.Name))
		return nil
	}

	for i, section := range sections {
		if i > 0 {
			renderer.RenderText("")
		}
		renderer.RenderHeading(section.Title)
		renderer.RenderText(md.RenderTerminal(md.ToBlocks(section.Content), md.TerminalOptions{
			Width:   opts.width,
			NoColor: opts.NoColor,
		}))
	}
	return nil
}
