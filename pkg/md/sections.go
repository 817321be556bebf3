// sections.go splits heading-delimited markdown into titled sections for storage.
package md

import "strings"

// DefaultSectionTitle is the title given to headingless content.
const DefaultSectionTitle = "Privacy Policy"

// SectionOptions configures section splitting.
type SectionOptions struct {
	// DefaultTitle names the single section emitted when the input has no
	// heading. Empty means DefaultSectionTitle.
	DefaultTitle string
}

// ToSections splits markdown into sections delimited by heading lines.
func ToSections(markdown string) []Section {
	return ToSectionsWithOptions(markdown, SectionOptions{})
}

// ToSectionsWithOptions splits markdown into sections with configurable options.
//
// A heading is a line starting with one or more '#' whose remainder, once the
// '#' characters and surrounding whitespace are stripped, is non-empty. Content
// runs until the next heading and is trimmed. Content before the first heading
// is discarded unless the input has no heading at all, in which case the whole
// trimmed input becomes one section under the default title.
func ToSectionsWithOptions(markdown string, opts SectionOptions) []Section {
	trimmed := strings.TrimSpace(strings.ReplaceAll(markdown, "\r\n", "\n"))
	if trimmed == "" {
		return nil
	}

	defaultTitle := opts.DefaultTitle
	if defaultTitle == "" {
		defaultTitle = DefaultSectionTitle
	}

	var sections []Section
	var title string
	var content []string
	open := false

	for _, line := range splitLines(markdown) {
		if heading, ok := headingTitle(line); ok {
			if open {
				sections = append(sections, Section{
					Title:   title,
					Content: strings.TrimSpace(strings.Join(content, "\n")),
				})
			}
			title = heading
			content = nil
			open = true
			continue
		}
		content = append(content, line)
	}

	if open {
		sections = append(sections, Section{
			Title:   title,
			Content: strings.TrimSpace(strings.Join(content, "\n")),
		})
		return sections
	}

	return []Section{{Title: defaultTitle, Content: trimmed}}
}

// headingTitle returns the title of a heading line.
func headingTitle(line string) (string, bool) {
	if !strings.HasPrefix(line, "#") {
		return "", false
	}
	title := strings.TrimSpace(strings.TrimLeft(line, "#"))
	if title == "" {
		return "", false
	}
	return title, true
}

// SectionsToMarkdown renders sections back into heading-delimited markdown.
// Sections with neither title nor content are skipped.
func SectionsToMarkdown(sections []Section) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.Title == "" && s.Content == "" {
			continue
		}
		parts = append(parts, "# "+s.Title+"\n\n"+s.Content)
	}
	return strings.Join(parts, "\n\n")
}
