package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name   string
		blocks []Block
		want   string
	}{
		{
			name:   "empty",
			blocks: nil,
			want:   "",
		},
		{
			name:   "paragraph with emphasis",
			blocks: []Block{Paragraph(Plain("Hello "), Bold(Plain("big "), Italic("world")), Plain("!"))},
			want:   "<p>Hello <strong>big <em>world</em></strong>!</p>",
		},
		{
			name:   "spacer between paragraphs",
			blocks: []Block{Paragraph(Plain("a")), Spacer(), Paragraph(Plain("b"))},
			want:   "<p>a</p>\n" + spacerHTML + "\n<p>b</p>",
		},
		{
			name:   "escapes text and breaks lines",
			blocks: []Block{Paragraph(Plain("1 < 2 & \"x\"\nnext"))},
			want:   "<p>1 &lt; 2 &amp; &quot;x&quot;<br>\nnext</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderHTML(tt.blocks))
		})
	}
}

func TestRenderMarkdownHTML(t *testing.T) {
	assert.Equal(t, RenderHTML(ToBlocks("a **b**\n\nc")), RenderMarkdownHTML("a **b**\n\nc"))
}

func TestRenderTerminal_NoColor(t *testing.T) {
	tests := []struct {
		name   string
		blocks []Block
		width  int
		want   string
	}{
		{
			name:   "markers removed",
			blocks: []Block{Paragraph(Plain("Hello "), Bold(Plain("big "), Italic("world")))},
			want:   "Hello big world",
		},
		{
			name:   "spacer is an empty line",
			blocks: []Block{Paragraph(Plain("a")), Spacer(), Paragraph(Plain("b"))},
			want:   "a\n\nb",
		},
		{
			name:   "wraps at width",
			blocks: []Block{Paragraph(Plain("aaa bbb ccc"))},
			width:  7,
			want:   "aaa bbb\nccc",
		},
		{
			name:   "zero width keeps lines",
			blocks: []Block{Paragraph(Plain("aaa bbb ccc"))},
			want:   "aaa bbb ccc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderTerminal(tt.blocks, TerminalOptions{Width: tt.width, NoColor: true})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMeta FrontMatter
		wantBody string
	}{
		{
			name:     "with front matter",
			input:    "---\napp: fittrack-pro\nlang: tr\ntitle: Gizlilik\n---\nMetin **burada**\n",
			wantMeta: FrontMatter{App: "fittrack-pro", Lang: "tr", Title: "Gizlilik"},
			wantBody: "Metin **burada**\n",
		},
		{
			name:     "without front matter",
			input:    "# Title\nBody\n",
			wantBody: "# Title\nBody\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := ParseFrontMatter([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantMeta, meta)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestParseFrontMatter_InvalidYAML(t *testing.T) {
	_, _, err := ParseFrontMatter([]byte("---\napp: [unclosed\n---\nbody\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse front matter")
}

func TestToCommonMarkHTML(t *testing.T) {
	got, err := ToCommonMarkHTML([]byte("**bold** and *italic*"))
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>bold</strong> and <em>italic</em></p>\n", got)

	empty, err := ToCommonMarkHTML(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
