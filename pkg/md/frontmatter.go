package md

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the optional metadata block at the top of a content file.
type FrontMatter struct {
	App   string `yaml:"app,omitempty"`   // app id the content belongs to
	Lang  string `yaml:"lang,omitempty"`  // content language, e.g. "en" or "tr"
	Title string `yaml:"title,omitempty"` // default section title for headingless content
}

// ParseFrontMatter splits optional YAML front matter from a markdown body.
// Input without front matter returns a zero FrontMatter and the input unchanged.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("failed to parse front matter: %w", err)
	}

	return meta, body, nil
}
