// Package view provides output formatting for showcase commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ValidFormats returns the accepted values for --output.
func ValidFormats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatPlain)}
}

// ValidateFormat checks an --output value. Empty means the default table format.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range ValidFormats() {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q (valid: %s)", format, strings.Join(ValidFormats(), ", "))
}

// Renderer renders data in a specific format.
type Renderer struct {
	format  Format
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a new renderer with the specified format.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	if format == "" {
		format = FormatTable
	}
	return &Renderer{
		format:  format,
		writer:  os.Stdout,
		noColor: noColor,
	}
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// Writer returns the output writer.
func (r *Renderer) Writer() io.Writer {
	return r.writer
}

// Format returns the output format.
func (r *Renderer) Format() Format {
	return r.format
}

// NoColor reports whether color output is disabled.
func (r *Renderer) NoColor() bool {
	return r.noColor
}

// RenderTable renders rows under headers. Table output aligns columns.
func (r *Renderer) RenderTable(headers []string, rows [][]string) {
	switch r.format {
	case FormatJSON:
		r.renderTableAsJSON(headers, rows)
		return
	case FormatPlain:
		r.renderTableAsPlain(rows)
		return
	}

	widths := columnWidths(headers, rows)
	r.renderTableRow(headers, widths)
	for _, row := range rows {
		r.renderTableRow(row, widths)
	}
}

// columnWidths returns the display width of each column.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for _, row := range append([][]string{headers}, rows...) {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

// renderTableRow pads every cell but the last to its column width.
func (r *Renderer) renderTableRow(row []string, widths []int) {
	var sb strings.Builder
	for i, cell := range row {
		if i == len(row)-1 {
			sb.WriteString(cell)
			break
		}
		sb.WriteString(runewidth.FillRight(cell, widths[i]))
		sb.WriteString("  ")
	}
	fmt.Fprintln(r.writer, sb.String())
}

func (r *Renderer) renderTableAsJSON(headers []string, rows [][]string) {
	var result []map[string]string
	for _, row := range rows {
		item := make(map[string]string)
		for i, header := range headers {
			if i < len(row) {
				item[strings.ToLower(header)] = row[i]
			}
		}
		result = append(result, item)
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Fprintln(r.writer, string(data))
}

func (r *Renderer) renderTableAsPlain(rows [][]string) {
	for _, row := range rows {
		fmt.Fprintln(r.writer, strings.Join(row, "\t"))
	}
}

// RenderJSON renders an object as indented JSON.
func (r *Renderer) RenderJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}

// RenderText renders plain text.
func (r *Renderer) RenderText(text string) {
	fmt.Fprintln(r.writer, text)
}

// RenderKeyValue renders a key-value pair.
func (r *Renderer) RenderKeyValue(key, value string) {
	if r.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{key: value})
		fmt.Fprintln(r.writer, string(data))
		return
	}
	bold := color.New(color.Bold)
	bold.Fprintf(r.writer, "%s: ", key)
	fmt.Fprintln(r.writer, value)
}

// RenderHeading renders a bold title line followed by a blank line.
func (r *Renderer) RenderHeading(title string) {
	color.New(color.Bold, color.Underline).Fprintln(r.writer, title)
	fmt.Fprintln(r.writer)
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	color.New(color.FgGreen).Fprintln(r.writer, "✓ "+msg)
}

// Warning prints a warning message.
func (r *Renderer) Warning(msg string) {
	color.New(color.FgYellow).Fprintln(r.writer, "! "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	color.New(color.FgRed).Fprintln(r.writer, "✗ "+msg)
}

// Truncate shortens s to at most maxLen display columns, marking the cut
// with an ellipsis when there is room for one.
func Truncate(s string, maxLen int) string {
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}
