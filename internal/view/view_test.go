package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(format Format) (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	r := NewRenderer(format, true)
	r.SetWriter(&buf)
	return r, &buf
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"empty (default)", "", false},
		{"table", "table", false},
		{"json", "json", false},
		{"plain", "plain", false},
		{"invalid", "invalid", true},
		{"html is a render format, not an output format", "html", true},
		{"TABLE uppercase", "TABLE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid output format")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidFormats(t *testing.T) {
	assert.Equal(t, []string{"table", "json", "plain"}, ValidFormats())
}

func TestNewRenderer_DefaultsToTable(t *testing.T) {
	r := NewRenderer("", true)
	assert.Equal(t, FormatTable, r.Format())
	assert.True(t, r.NoColor())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncate with ellipsis", "hello world", 8, "hello..."},
		{"very short max", "hello", 3, "hel"},
		{"empty string", "", 10, ""},
		{"turkish text counts runes", "Politikası hakkında", 8, "Polit..."},
		{"multibyte fits", "Sağlık", 6, "Sağlık"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxLen))
		})
	}
}

func TestRenderer_RenderTable_Table(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderTable([]string{"ID", "NAME", "RATING"}, [][]string{
		{"fittrack-pro", "FitTrack Pro", "4.8"},
		{"zen", "Zen Notes", "4.5"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "FitTrack Pro")

	// columns are aligned
	assert.Equal(t, strings.Index(lines[1], "FitTrack Pro"), strings.Index(lines[2], "Zen Notes"))
	assert.Equal(t, strings.Index(lines[0], "NAME"), strings.Index(lines[1], "FitTrack Pro"))
}

func TestRenderer_RenderTable_AlignsByDisplayWidth(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderTable([]string{"NAME", "CATEGORY"}, [][]string{
		{"Sağlık Takibi", "Health"},
		{"🧘 Zen", "Lifestyle"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	column := func(line, cell string) int {
		return runewidth.StringWidth(line[:strings.Index(line, cell)])
	}
	assert.Equal(t, column(lines[0], "CATEGORY"), column(lines[1], "Health"))
	assert.Equal(t, column(lines[1], "Health"), column(lines[2], "Lifestyle"))
	assert.False(t, strings.HasSuffix(lines[1], " "))
}

func TestRenderer_RenderTable_JSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)

	r.RenderTable([]string{"ID", "NAME"}, [][]string{
		{"1", "First"},
		{"2", "Second"},
	})

	var result []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Len(t, result, 2)
	assert.Equal(t, "1", result[0]["id"])
	assert.Equal(t, "First", result[0]["name"])
}

func TestRenderer_RenderTable_Plain(t *testing.T) {
	r, buf := newTestRenderer(FormatPlain)

	r.RenderTable([]string{"ID", "NAME"}, [][]string{
		{"1", "First"},
		{"2", "Second"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"1\tFirst", "2\tSecond"}, lines)
}

func TestRenderer_RenderJSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)

	require.NoError(t, r.RenderJSON(map[string]string{"status": "ok"}))

	var result map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "ok", result["status"])
}

func TestRenderer_RenderJSON_Unsupported(t *testing.T) {
	r, _ := newTestRenderer(FormatJSON)

	err := r.RenderJSON(make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal output")
}

func TestRenderer_RenderText(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderText("Hello, World!")

	assert.Equal(t, "Hello, World!\n", buf.String())
}

func TestRenderer_Messages(t *testing.T) {
	tests := []struct {
		name   string
		render func(r *Renderer)
		want   string
	}{
		{"success", func(r *Renderer) { r.Success("Saved") }, "✓ Saved\n"},
		{"warning", func(r *Renderer) { r.Warning("Using local catalog") }, "! Using local catalog\n"},
		{"error", func(r *Renderer) { r.Error("Failed") }, "✗ Failed\n"},
		{"heading", func(r *Renderer) { r.RenderHeading("1. Data") }, "1. Data\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newTestRenderer(FormatTable)
			tt.render(r)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderer_RenderKeyValue_Table(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderKeyValue("Version", "2.4.1")

	assert.Equal(t, "Version: 2.4.1\n", buf.String())
}

func TestRenderer_RenderKeyValue_JSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)

	r.RenderKeyValue("name", `Say "hi"`)

	assert.Equal(t, `{"name":"Say \"hi\""}`, strings.TrimSpace(buf.String()))
}

func TestRenderer_EmptyTable(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)

	r.RenderTable([]string{"ID", "NAME"}, [][]string{})

	output := buf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "NAME")
}

func TestRenderer_EmptyTable_JSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)

	r.RenderTable([]string{"ID", "NAME"}, [][]string{})

	var result []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Nil(t, result)
}

func TestRenderer_RowWithFewerColumns(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)

	r.RenderTable([]string{"ID", "NAME", "STATUS"}, [][]string{{"1", "First"}})

	var result []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "First", result[0]["name"])
	_, exists := result[0]["status"]
	assert.False(t, exists)
}
