// Package render provides the render command.
package render

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"pkt.systems/pslog"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/view"
	"github.com/open-cli-collective/showcase-cli/pkg/md"
)

const (
	formatTerminal   = "terminal"
	formatHTML       = "html"
	formatCommonMark = "commonmark"
)

type renderOptions struct {
	cmdutil.Global
	format   string
	width    int
	fromHTML bool

	stdin  io.Reader
	stdout io.Writer
	// terminal reports whether stdout is a terminal and its width
	terminal func() (bool, int)
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render catalog markdown",
		Long: `Render a description or policy text the way the site displays it.

Only **bold** and *italic* emphasis are recognized. Consecutive non-blank
lines form a paragraph and each blank line becomes a spacer. Input is read
from the file argument or standard input; YAML front matter is skipped.`,
		Example: `  # Render to the terminal
  showcase render description.md

  # Render the HTML fragment the site shows
  showcase render --format html description.md

  # Show the block structure
  cat description.md | showcase render -o json

  # Convert an HTML export first
  showcase render --from-html policy.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Global = cmdutil.GlobalFlags(cmd)
			opts.stdout, opts.stdin = cmdutil.Streams(cmd)
			opts.terminal = StdoutTerminal
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return runRender(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTerminal, "render format: terminal, html, commonmark")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "wrap terminal output at this width (default: terminal width)")
	cmd.Flags().BoolVar(&opts.fromHTML, "from-html", false, "convert HTML input to markdown first")

	return cmd
}

func runRender(ctx context.Context, path string, opts *renderOptions) error {
	if err := view.ValidateFormat(opts.Output); err != nil {
		return err
	}

	data, err := cmdutil.ReadInput(path, opts.stdin)
	if err != nil {
		return err
	}

	_, text, err := cmdutil.LoadMarkdown(data, opts.fromHTML)
	if err != nil {
		return err
	}

	blocks := md.ToBlocks(text)
	pslog.Ctx(ctx).Debug("segmented input", "blocks", len(blocks), "format", opts.format)

	if opts.Output == string(view.FormatJSON) {
		if blocks == nil {
			blocks = []md.Block{}
		}
		return opts.Renderer(opts.stdout).RenderJSON(blocks)
	}

	var out string
	switch opts.format {
	case formatTerminal, "":
		tty, cols := false, 0
		if opts.terminal != nil {
			tty, cols = opts.terminal()
		}
		width := opts.width
		if width == 0 && tty {
			width = cols
		}
		out = md.RenderTerminal(blocks, md.TerminalOptions{
			Width:   width,
			NoColor: opts.NoColor || !tty,
		})
	case formatHTML:
		out = md.RenderHTML(blocks)
	case formatCommonMark:
		out, err = md.ToCommonMarkHTML([]byte(text))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid render format %q (valid: %s, %s, %s)", opts.format, formatTerminal, formatHTML, formatCommonMark)
	}

	fmt.Fprintln(opts.stdout, out)
	return nil
}

// StdoutTerminal reports whether stdout is a terminal and its width.
func StdoutTerminal() (bool, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return false, 0
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return true, w
	}
	return true, 0
}
