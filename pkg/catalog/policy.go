package catalog

import (
	"github.com/open-cli-collective/showcase-cli/pkg/md"
)

// MergePolicy pairs English and Turkish sections by position into bilingual
// policy sections. The result is as long as the longer input; a language
// missing at a position contributes empty strings.
func MergePolicy(en, tr []md.Section) []PolicySection {
	n := max(len(en), len(tr))
	merged := make([]PolicySection, 0, n)

	for i := 0; i < n; i++ {
		var section PolicySection
		if i < len(en) {
			section.Title.EN = en[i].Title
			section.Content.EN = en[i].Content
		}
		if i < len(tr) {
			section.Title.TR = tr[i].Title
			section.Content.TR = tr[i].Content
		}
		merged = append(merged, section)
	}

	return merged
}

// PolicySections extracts the sections of one language. Sections with
// neither title nor content in that language are skipped.
func PolicySections(policy []PolicySection, lang Language) []md.Section {
	sections := make([]md.Section, 0, len(policy))
	for _, p := range policy {
		s := md.Section{Title: p.Title.Get(lang), Content: p.Content.Get(lang)}
		if s.Title == "" && s.Content == "" {
			continue
		}
		sections = append(sections, s)
	}
	return sections
}

// PolicyMarkdown renders one language of a policy as heading-delimited markdown.
func PolicyMarkdown(policy []PolicySection, lang Language) string {
	return md.SectionsToMarkdown(PolicySections(policy, lang))
}

// ReplacePolicyLanguage parses markdown for one language and merges it with
// the other language's existing sections.
func ReplacePolicyLanguage(policy []PolicySection, lang Language, markdown string, opts md.SectionOptions) []PolicySection {
	updated := md.ToSectionsWithOptions(markdown, opts)
	kept := md.ToSections(PolicyMarkdown(policy, lang.Other()))

	if lang == English {
		return MergePolicy(updated, kept)
	}
	return MergePolicy(kept, updated)
}
