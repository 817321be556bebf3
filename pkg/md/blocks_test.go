package md

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Block
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "single line",
			input:    "hello",
			expected: []Block{Paragraph(Plain("hello"))},
		},
		{
			name:     "two paragraphs",
			input:    "a\n\nb",
			expected: []Block{Paragraph(Plain("a")), Spacer(), Paragraph(Plain("b"))},
		},
		{
			name:     "adjacent lines join into one paragraph",
			input:    "a\nb",
			expected: []Block{Paragraph(Plain("a\nb"))},
		},
		{
			name:     "consecutive blank lines each yield a spacer",
			input:    "a\n\n\nb",
			expected: []Block{Paragraph(Plain("a")), Spacer(), Spacer(), Paragraph(Plain("b"))},
		},
		{
			name:     "whitespace-only line is blank",
			input:    "a\n   \t\nb",
			expected: []Block{Paragraph(Plain("a")), Spacer(), Paragraph(Plain("b"))},
		},
		{
			name:     "leading blank line",
			input:    "\nb",
			expected: []Block{Spacer(), Paragraph(Plain("b"))},
		},
		{
			name:     "trailing newline",
			input:    "a\n",
			expected: []Block{Paragraph(Plain("a")), Spacer()},
		},
		{
			name:     "emphasis spans joined lines",
			input:    "**bold\nstill bold** done",
			expected: []Block{Paragraph(Bold(Plain("bold\nstill bold")), Plain(" done"))},
		},
		{
			name:     "windows line endings",
			input:    "a\r\n\r\nb",
			expected: []Block{Paragraph(Plain("a")), Spacer(), Paragraph(Plain("b"))},
		},
		{
			name:  "mixed emphasis paragraphs",
			input: "Track *daily* goals\n\n**Stay fit** 💪",
			expected: []Block{
				Paragraph(Plain("Track "), Italic("daily"), Plain(" goals")),
				Spacer(),
				Paragraph(Bold(Plain("Stay fit")), Plain(" 💪")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToBlocks(tt.input))
		})
	}
}

func TestToBlocks_SpacerAndParagraphCounts(t *testing.T) {
	input := "one\ntwo\n\nthree\n\n\n\nfour\nfive\n\n"
	blocks := ToBlocks(input)

	var paragraphs, spacers int
	for _, b := range blocks {
		switch b.Type {
		case BlockParagraph:
			paragraphs++
		case BlockSpacer:
			spacers++
		}
	}

	blankLines := 0
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			blankLines++
		}
	}

	assert.Equal(t, 3, paragraphs)
	assert.Equal(t, blankLines, spacers)
}

func TestToBlocks_ReconstructsText(t *testing.T) {
	input := "First *line*\nsecond **line**\n\nThird"
	blocks := ToBlocks(input)

	var lines []string
	for _, b := range blocks {
		if b.Type == BlockSpacer {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, PlainText(b.Spans))
	}

	assert.Equal(t, "First line\nsecond line\n\nThird", strings.Join(lines, "\n"))
}

func TestBlocks_JSON(t *testing.T) {
	blocks := ToBlocks("a **b**\n\n*c*")

	data, err := json.Marshal(blocks)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type": "paragraph", "spans": [
			{"type": "plain", "text": "a "},
			{"type": "bold", "children": [{"type": "plain", "text": "b"}]}
		]},
		{"type": "spacer"},
		{"type": "paragraph", "spans": [{"type": "italic", "text": "c"}]}
	]`, string(data))

	var decoded []Block
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, blocks, decoded)
}
