package policy

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/completion"
	"github.com/open-cli-collective/showcase-cli/internal/store"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
	"github.com/open-cli-collective/showcase-cli/pkg/md"
)

type exportOptions struct {
	cmdutil.Global
	lang        string
	frontMatter bool
	stdout      io.Writer
}

// NewCmdExport creates the policy export command.
func NewCmdExport() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <app-id>",
		Short: "Write an app's privacy policy as markdown",
		Long: `Write one language of an app's privacy policy as heading-delimited markdown.

The output can be edited and passed back to 'showcase policy set'.`,
		Example: `  # Export the English policy for editing
  showcase policy export fittrack-pro --front-matter > policy.en.md

  # Round-trip the Turkish policy
  showcase policy export fittrack-pro --lang tr --front-matter > policy.tr.md
  showcase policy set fittrack-pro --file policy.tr.md`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completion.AppIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Global = cmdutil.GlobalFlags(cmd)
			opts.stdout, _ = cmdutil.Streams(cmd)
			return runExport(cmd.Context(), args[0], opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "policy language: en or tr (default: configured language)")
	cmd.Flags().BoolVar(&opts.frontMatter, "front-matter", false, "prefix the output with app and lang front matter")

	return cmd
}

func runExport(ctx context.Context, appID string, opts *exportOptions, s store.Store) error {
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

	var buf bytes.Buffer
	if opts.frontMatter {
		header, err := frontMatterBlock(md.FrontMatter{App: app.ID, Lang: string(lang)})
		if err != nil {
			return err
		}
		buf.WriteString(header)
	}
	buf.WriteString(catalog.PolicyMarkdown(app.PrivacyPolicy, lang))

	_, err = fmt.Fprintln(opts.stdout, buf.String())
	return err
}

// frontMatterBlock renders meta as a YAML front matter block.
func frontMatterBlock(meta md.FrontMatter) (string, error) {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("failed to marshal front matter: %w", err)
	}
	return "---\n" + string(data) + "---\n", nil
}
