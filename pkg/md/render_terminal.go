// render_terminal.go renders segmented blocks for display in a terminal.
package md

import (
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"
)

// TerminalOptions configures terminal rendering.
type TerminalOptions struct {
	Width   int  // wrap paragraphs at this many cells; 0 disables wrapping
	NoColor bool // emit plain text without ANSI styling
}

// terminalStyles holds the colors used for emphasized spans.
type terminalStyles struct {
	bold       *color.Color
	italic     *color.Color
	boldItalic *color.Color
}

func newTerminalStyles(noColor bool) terminalStyles {
	st := terminalStyles{
		bold:       color.New(color.Bold),
		italic:     color.New(color.Italic),
		boldItalic: color.New(color.Bold, color.Italic),
	}
	if noColor {
		st.bold.DisableColor()
		st.italic.DisableColor()
		st.boldItalic.DisableColor()
	}
	return st
}

// RenderTerminal converts blocks into terminal text. Paragraphs are styled
// and optionally wrapped; each spacer becomes one empty line.
func RenderTerminal(blocks []Block, opts TerminalOptions) string {
	styles := newTerminalStyles(opts.NoColor)
	lines := make([]string, 0, len(blocks))

	for _, b := range blocks {
		if b.Type == BlockSpacer {
			lines = append(lines, "")
			continue
		}

		var sb strings.Builder
		writeTerminalSpans(&sb, b.Spans, false, styles)
		text := sb.String()
		if opts.Width > 0 {
			text = wordwrap.String(text, opts.Width)
		}
		lines = append(lines, text)
	}

	return strings.Join(lines, "\n")
}

// writeTerminalSpans styles each leaf span; italics nested in bold get both attributes.
func writeTerminalSpans(sb *strings.Builder, spans []Span, inBold bool, st terminalStyles) {
	for _, s := range spans {
		switch {
		case s.Type == SpanBold:
			writeTerminalSpans(sb, s.Children, true, st)
		case s.Type == SpanItalic && inBold:
			sb.WriteString(st.boldItalic.Sprint(s.Text))
		case s.Type == SpanItalic:
			sb.WriteString(st.italic.Sprint(s.Text))
		case inBold:
			sb.WriteString(st.bold.Sprint(s.Text))
		default:
			sb.WriteString(s.Text)
		}
	}
}
