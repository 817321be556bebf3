package policy

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/completion"
	"github.com/open-cli-collective/showcase-cli/internal/store"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
	"github.com/open-cli-collective/showcase-cli/pkg/md"
)

type setOptions struct {
	cmdutil.Global
	enFile   string
	trFile   string
	file     string
	lang     string
	fromHTML bool
	stdin    io.Reader
	stdout   io.Writer
}

// NewCmdSet creates the policy set command.
func NewCmdSet() *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set <app-id>",
		Short: "Replace an app's privacy policy from markdown",
		Long: `Replace the privacy policy of an app from heading-delimited markdown.

With both --en and --tr the two documents are paired section by section.
With a single language the other language's sections are kept and paired
with the new ones by position.

--file reads one document whose language comes from --lang or from the
front matter 'lang' key. Use '-' to read from stdin.`,
		Example: `  # Set both languages at once
  showcase policy set fittrack-pro --en policy.en.md --tr policy.tr.md

  # Replace only the Turkish policy
  showcase policy set fittrack-pro --tr policy.tr.md

  # Use front matter to pick the language
  showcase policy set fittrack-pro --file policy.md`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completion.AppIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Global = cmdutil.GlobalFlags(cmd)
			opts.stdout, opts.stdin = cmdutil.Streams(cmd)
			return runSet(cmd.Context(), args[0], opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.enFile, "en", "", "English policy markdown file")
	cmd.Flags().StringVar(&opts.trFile, "tr", "", "Turkish policy markdown file")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "policy markdown file in one language ('-' for stdin)")
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "language of --file (default: front matter lang)")
	cmd.Flags().BoolVar(&opts.fromHTML, "from-html", false, "convert HTML input to markdown first")

	cmd.MarkFlagsMutuallyExclusive("file", "en")
	cmd.MarkFlagsMutuallyExclusive("file", "tr")

	return cmd
}

// policyDoc is one parsed policy document.
type policyDoc struct {
	lang     catalog.Language
	sections []md.Section
	markdown string
	title    string
}

func runSet(ctx context.Context, appID string, opts *setOptions, s store.Store) error {
	if opts.enFile == "" && opts.trFile == "" && opts.file == "" {
		return fmt.Errorf("one of --en, --tr or --file is required")
	}

	docs, err := readPolicyDocs(appID, opts)
	if err != nil {
		return err
	}

	s, _, closeStore, err := cmdutil.ResolveStore(ctx, opts.Global, s)
	if err != nil {
		return err
	}
	defer closeStore()

	app, err := s.Get(ctx, appID)
	if err != nil {
		return fmt.Errorf("failed to get app %s: %w", appID, err)
	}

	if len(docs) == 2 {
		app.PrivacyPolicy = catalog.MergePolicy(docs[0].sections, docs[1].sections)
	} else {
		doc := docs[0]
		app.PrivacyPolicy = catalog.ReplacePolicyLanguage(app.PrivacyPolicy, doc.lang, doc.markdown,
			md.SectionOptions{DefaultTitle: doc.title})
	}

	if err := app.Validate(); err != nil {
		return fmt.Errorf("invalid app: %w", err)
	}

	updated, err := s.Update(ctx, *app, appID)
	if err != nil {
		return fmt.Errorf("failed to update app %s: %w", appID, err)
	}

	renderer := opts.Renderer(opts.stdout)
	renderer.Success(fmt.Sprintf("Updated privacy policy of %s (%d sections)", updated.ID, len(updated.PrivacyPolicy)))
	return nil
}

// readPolicyDocs reads the documents named by the flags. Two documents are
// always returned English first.
func readPolicyDocs(appID string, opts *setOptions) ([]policyDoc, error) {
	if opts.file != "" {
		doc, err := readPolicyDoc(appID, opts.file, opts.lang, opts)
		if err != nil {
			return nil, err
		}
		return []policyDoc{doc}, nil
	}

	var docs []policyDoc
	if opts.enFile != "" {
		doc, err := readPolicyDoc(appID, opts.enFile, string(catalog.English), opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if opts.trFile != "" {
		doc, err := readPolicyDoc(appID, opts.trFile, string(catalog.Turkish), opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func readPolicyDoc(appID, path, lang string, opts *setOptions) (policyDoc, error) {
	data, err := cmdutil.ReadInput(path, opts.stdin)
	if err != nil {
		return policyDoc{}, err
	}

	meta, text, err := cmdutil.LoadMarkdown(data, opts.fromHTML)
	if err != nil {
		return policyDoc{}, err
	}

	if meta.App != "" && meta.App != appID {
		return policyDoc{}, fmt.Errorf("%s belongs to app %q, not %q", path, meta.App, appID)
	}

	if lang == "" {
		lang = meta.Lang
	}
	if lang == "" {
		return policyDoc{}, fmt.Errorf("language of %s is unknown: pass --lang or set 'lang' in front matter", path)
	}
	l, err := catalog.ParseLanguage(lang)
	if err != nil {
		return policyDoc{}, err
	}

	opt := md.SectionOptions{DefaultTitle: meta.Title}
	return policyDoc{
		lang:     l,
		sections: md.ToSectionsWithOptions(text, opt),
		markdown: text,
		title:    meta.Title,
	}, nil
}
