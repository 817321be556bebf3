package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace input",
			input:    "  \n ",
			expected: "",
		},
		{
			name:     "basic paragraph",
			input:    "<p>Hello world</p>",
			expected: "Hello world",
		},
		{
			name:     "multiple paragraphs",
			input:    "<p>First paragraph.</p><p>Second paragraph.</p>",
			expected: "First paragraph.\n\nSecond paragraph.",
		},
		{
			name:     "h1 header",
			input:    "<h1>Title</h1>",
			expected: "# Title",
		},
		{
			name:     "bold text",
			input:    "<p>This is <strong>bold</strong> text</p>",
			expected: "This is **bold** text",
		},
		{
			name:     "italic text",
			input:    "<p>This is <em>italic</em> text</p>",
			expected: "This is *italic* text",
		},
		{
			name:     "script stripped",
			input:    "<p>Visible</p><script>alert('x')</script>",
			expected: "Visible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FromHTML(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFromHTML_FeedsSections(t *testing.T) {
	html := "<h1>Data</h1><p>We collect <strong>nothing</strong>.</p><h2>Contact</h2><p>Email us.</p>"

	markdown, err := FromHTML(html)
	require.NoError(t, err)

	sections := ToSections(markdown)
	require.Len(t, sections, 2)
	assert.Equal(t, Section{Title: "Data", Content: "We collect **nothing**."}, sections[0])
	assert.Equal(t, Section{Title: "Contact", Content: "Email us."}, sections[1])
}
