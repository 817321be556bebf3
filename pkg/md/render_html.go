// render_html.go renders segmented blocks to an HTML fragment.
package md

import "strings"

// spacerHTML is emitted for every spacer block.
const spacerHTML = `<div class="spacer"></div>`

// RenderHTML converts blocks into an HTML fragment: one <p> per paragraph,
// <strong>/<em> for emphasis and <br> for line breaks inside a paragraph.
// Blocks are separated by newlines.
func RenderHTML(blocks []Block) string {
	var sb strings.Builder

	for i, b := range blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch b.Type {
		case BlockSpacer:
			sb.WriteString(spacerHTML)
		case BlockParagraph:
			sb.WriteString("<p>")
			writeHTMLSpans(&sb, b.Spans)
			sb.WriteString("</p>")
		}
	}

	return sb.String()
}

// RenderMarkdownHTML segments text and renders it to HTML in one step.
func RenderMarkdownHTML(text string) string {
	return RenderHTML(ToBlocks(text))
}

func writeHTMLSpans(sb *strings.Builder, spans []Span) {
	for _, s := range spans {
		switch s.Type {
		case SpanBold:
			sb.WriteString("<strong>")
			writeHTMLSpans(sb, s.Children)
			sb.WriteString("</strong>")
		case SpanItalic:
			sb.WriteString("<em>")
			sb.WriteString(escapeHTMLText(s.Text))
			sb.WriteString("</em>")
		default:
			sb.WriteString(escapeHTMLText(s.Text))
		}
	}
}

// escapeHTMLText escapes special HTML characters and turns newlines into <br>.
func escapeHTMLText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return strings.ReplaceAll(s, "\n", "<br>\n")
}
