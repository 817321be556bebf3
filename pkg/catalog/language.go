package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language identifies a supported content language.
type Language string

const (
	English Language = "en"
	Turkish Language = "tr"
)

// Languages lists the supported languages in display order.
var Languages = []Language{English, Turkish}

var (
	supportedTags = []language.Tag{language.English, language.Turkish}
	matcher       = language.NewMatcher(supportedTags)
)

// ParseLanguage maps a BCP 47 tag such as "en", "en-US" or "tr-TR" onto a
// supported language. Tags that match neither language are rejected.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("language is required")
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid language %q: %w", s, err)
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", fmt.Errorf("unsupported language %q (supported: en, tr)", s)
	}

	return Languages[index], nil
}

// Other returns the second supported language.
func (l Language) Other() Language {
	if l == Turkish {
		return English
	}
	return Turkish
}
