package md

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// scriptStylePattern matches elements whose content is never user-visible text.
var scriptStylePattern = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)

// blankRunPattern matches three or more consecutive newlines.
var blankRunPattern = regexp.MustCompile(`\n{3,}`)

// FromHTML converts an HTML fragment (for example a description or privacy
// policy pasted from a store listing) into markdown using ** and * emphasis.
func FromHTML(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	html = scriptStylePattern.ReplaceAllString(html, "")

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	// Collapse runs of blank lines so each gap renders as one spacer
	markdown = blankRunPattern.ReplaceAllString(markdown, "\n\n")

	return strings.TrimSpace(markdown), nil
}
