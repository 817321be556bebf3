package render

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/pkg/md"
)

func newTestOptions(input string) (*renderOptions, *bytes.Buffer) {
	var out bytes.Buffer
	return &renderOptions{
		Global: cmdutil.Global{NoColor: true},
		format: formatTerminal,
		stdin:  strings.NewReader(input),
		stdout: &out,
	}, &out
}

func TestRunRender_Formats(t *testing.T) {
	input := "Hello **World**\n\nBye"

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{
			name:   "terminal",
			format: formatTerminal,
			want:   "Hello World\n\nBye\n",
		},
		{
			name:   "html",
			format: formatHTML,
			want:   "<p>Hello <strong>World</strong></p>\n<div class=\"spacer\"></div>\n<p>Bye</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, out := newTestOptions(input)
			opts.format = tt.format

			require.NoError(t, runRender(context.Background(), "", opts))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunRender_CommonMark(t *testing.T) {
	opts, out := newTestOptions("Hello **World**")
	opts.format = formatCommonMark

	require.NoError(t, runRender(context.Background(), "-", opts))
	assert.Contains(t, out.String(), "<strong>World</strong>")
}

func TestRunRender_JSON(t *testing.T) {
	opts, out := newTestOptions("a *b*\n\nc")
	opts.Output = "json"

	require.NoError(t, runRender(context.Background(), "", opts))

	var blocks []md.Block
	require.NoError(t, json.Unmarshal(out.Bytes(), &blocks))
	assert.Equal(t, []md.Block{
		md.Paragraph(md.Plain("a "), md.Italic("b")),
		md.Spacer(),
		md.Paragraph(md.Plain("c")),
	}, blocks)
}

func TestRunRender_JSONEmptyInput(t *testing.T) {
	opts, out := newTestOptions("")
	opts.Output = "json"

	require.NoError(t, runRender(context.Background(), "", opts))
	assert.Equal(t, "[]\n", out.String())
}

func TestRunRender_WrapsToTerminalWidth(t *testing.T) {
	opts, out := newTestOptions("aaa bbb ccc ddd")
	opts.terminal = func() (bool, int) { return true, 10 }

	require.NoError(t, runRender(context.Background(), "", opts))
	assert.Equal(t, "aaa bbb\nccc ddd\n", out.String())
}

func TestRunRender_WidthFlagWins(t *testing.T) {
	opts, out := newTestOptions("aaa bbb ccc ddd")
	opts.width = 100
	opts.terminal = func() (bool, int) { return true, 10 }

	require.NoError(t, runRender(context.Background(), "", opts))
	assert.Equal(t, "aaa bbb ccc ddd\n", out.String())
}

func TestRunRender_FileWithFrontMatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desc.md")
	require.NoError(t, os.WriteFile(path, []byte("---\napp: fittrack-pro\nlang: en\n---\nHi *there*"), 0644))

	opts, out := newTestOptions("")
	opts.format = formatHTML

	require.NoError(t, runRender(context.Background(), path, opts))
	assert.Contains(t, out.String(), "<p>Hi <em>there</em></p>")
	assert.NotContains(t, out.String(), "fittrack-pro")
}

func TestRunRender_FromHTML(t *testing.T) {
	opts, out := newTestOptions("<p>Keep <strong>this</strong></p><script>alert(1)</script>")
	opts.format = formatHTML
	opts.fromHTML = true

	require.NoError(t, runRender(context.Background(), "", opts))
	assert.Equal(t, "<p>Keep <strong>this</strong></p>\n", out.String())
}

func TestRunRender_Errors(t *testing.T) {
	t.Run("invalid render format", func(t *testing.T) {
		opts, _ := newTestOptions("x")
		opts.format = "pdf"

		err := runRender(context.Background(), "", opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid render format")
	})

	t.Run("invalid output format", func(t *testing.T) {
		opts, _ := newTestOptions("x")
		opts.Output = "xml"

		err := runRender(context.Background(), "", opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})

	t.Run("missing file", func(t *testing.T) {
		opts, _ := newTestOptions("")

		err := runRender(context.Background(), filepath.Join(t.TempDir(), "missing.md"), opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})
}
