package policy

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/view"
	"github.com/open-cli-collective/showcase-cli/pkg/md"
)

type parseOptions struct {
	cmdutil.Global
	defaultTitle string
	fromHTML     bool
	stdin        io.Reader
	stdout       io.Writer
}

// NewCmdParse creates the policy parse command.
func NewCmdParse() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Split markdown into policy sections",
		Long: `Split markdown into titled sections at every line starting with '#'.

Text before the first heading is dropped. Input without any heading becomes
a single section titled with --default-title, the front matter title, or
"Privacy Policy".

Output formats:
  table  section number, title and the start of the content
  json   the sections as an array of {title, content}
  plain  the sections written back as markdown`,
		Example: `  # Inspect how a policy will be split
  showcase policy parse policy.en.md

  # Normalize a policy document
  showcase policy parse -o plain policy.en.md > normalized.md

  # Parse an exported HTML page
  showcase policy parse --from-html policy.html -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Global = cmdutil.GlobalFlags(cmd)
			opts.stdout, opts.stdin = cmdutil.Streams(cmd)
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return runParse(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVar(&opts.defaultTitle, "default-title", "", "title for input without headings")
	cmd.Flags().BoolVar(&opts.fromHTML, "from-html", false, "convert HTML input to markdown first")

	return cmd
}

func runParse(_ context.Context, path string, opts *parseOptions) error {
	if err := view.ValidateFormat(opts.Output); err != nil {
		return err
	}

	data, err := cmdutil.ReadInput(path, opts.stdin)
	if err != nil {
		return err
	}

	meta, text, err := cmdutil.LoadMarkdown(data, opts.fromHTML)
	if err != nil {
		return err
	}

	title := opts.defaultTitle
	if title == "" {
		title = meta.Title
	}
	sections := md.ToSectionsWithOptions(text, md.SectionOptions{DefaultTitle: title})

	renderer := opts.Renderer(opts.stdout)
	switch view.Format(opts.Output) {
	case view.FormatJSON:
		return renderer.RenderJSON(sections)
	case view.FormatPlain:
		renderer.RenderText(md.SectionsToMarkdown(sections))
		return nil
	}

	rows := make([][]string, len(sections))
	for i, s := range sections {
		rows[i] = []string{strconv.Itoa(i + 1), s.Title, preview(s.Content)}
	}
	renderer.RenderTable([]string{"#", "TITLE", "CONTENT"}, rows)
	return nil
}

// preview returns the first line of content, shortened for a table cell.
func preview(content string) string {
	first, _, _ := strings.Cut(content, "\n")
	return view.Truncate(first, 60)
}
