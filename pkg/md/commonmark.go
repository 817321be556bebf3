package md

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// commonMark is a pre-configured goldmark instance used for full CommonMark previews.
// Hard wraps keep single newlines visible, matching how the dialect renders paragraphs.
var commonMark = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// ToCommonMarkHTML renders markdown with a full CommonMark engine. It is the
// alternative to RenderHTML for content that uses more than headings and emphasis.
func ToCommonMarkHTML(markdown []byte) (string, error) {
	if len(markdown) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := commonMark.Convert(markdown, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	return buf.String(), nil
}
