// blocks.go groups lines into paragraphs and blank-line spacers for rendering.
package md

import "strings"

// ToBlocks segments text into paragraph and spacer blocks.
//
// Each maximal run of non-blank lines becomes one paragraph whose joined text
// (lines separated by "\n") is tokenized as a whole, so emphasis may cross the
// original line breaks. Every blank line yields exactly one spacer, including
// consecutive ones. Empty input yields no blocks.
func ToBlocks(text string) []Block {
	if text == "" {
		return nil
	}

	var blocks []Block
	var paragraph []string

	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		blocks = append(blocks, Paragraph(Tokenize(strings.Join(paragraph, "\n"))...))
		paragraph = nil
	}

	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			flush()
			blocks = append(blocks, Spacer())
			continue
		}
		paragraph = append(paragraph, line)
	}
	flush()

	return blocks
}

// splitLines splits on "\n" and drops a trailing "\r" from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
