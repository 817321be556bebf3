// emphasis.go implements the inline **bold** / *italic* tokenizer.
package md

import "strings"

// emphasisMatch describes one located emphasis run within a string.
type emphasisMatch struct {
	kind  SpanType
	start int    // byte offset of the opening marker
	end   int    // byte offset just past the closing marker
	inner string // text between the markers
}

// Tokenize converts one line (or one joined paragraph) into an ordered sequence of spans.
//
// The earliest emphasis match wins; when bold and italic start at the same
// offset, bold is preferred. Bold content is tokenized recursively so it may
// contain italics. Italic content is kept literal. Unterminated markers are
// emitted as plain text. The result always holds at least one span.
func Tokenize(line string) []Span {
	var spans []Span
	rest := line

	for rest != "" {
		m, ok := nextEmphasis(rest)
		if !ok {
			break
		}

		// Emit text preceding the match
		if m.start > 0 {
			spans = append(spans, Plain(rest[:m.start]))
		}

		switch m.kind {
		case SpanBold:
			spans = append(spans, Bold(Tokenize(m.inner)...))
		case SpanItalic:
			spans = append(spans, Italic(m.inner))
		}

		rest = rest[m.end:]
	}

	if rest != "" || len(spans) == 0 {
		spans = append(spans, Plain(rest))
	}

	return spans
}

// nextEmphasis returns the earliest bold or italic match in s.
func nextEmphasis(s string) (emphasisMatch, bool) {
	bold, hasBold := findBold(s)
	italic, hasItalic := findItalic(s)

	switch {
	case hasBold && hasItalic:
		if italic.start < bold.start {
			return italic, true
		}
		return bold, true
	case hasBold:
		return bold, true
	case hasItalic:
		return italic, true
	}
	return emphasisMatch{}, false
}

// findBold locates the first "**inner**" with the shortest non-empty inner text.
//
// When the closing "**" is followed by further asterisks and closing on the
// last two of them leaves an italic inside the bold, the match is extended:
// "**a*b***" yields inner "a*b*". Otherwise the shortest match stands, so
// "**a***b*" yields inner "a" followed by "*b*".
func findBold(s string) (emphasisMatch, bool) {
	open := strings.Index(s, "**")
	if open < 0 {
		return emphasisMatch{}, false
	}

	// Inner text needs at least one byte, so the closer starts at open+3 or later.
	// A later opener can only see a subset of these closers, so checking the
	// first opener is sufficient.
	from := open + 3
	if from > len(s) {
		return emphasisMatch{}, false
	}
	idx := strings.Index(s[from:], "**")
	if idx < 0 {
		return emphasisMatch{}, false
	}
	closeAt := from + idx

	runEnd := closeAt
	for runEnd+2 < len(s) && s[runEnd+2] == '*' {
		runEnd++
	}
	if runEnd > closeAt && containsItalic(Tokenize(s[open+2:runEnd])) {
		closeAt = runEnd
	}

	return emphasisMatch{
		kind:  SpanBold,
		start: open,
		end:   closeAt + 2,
		inner: s[open+2 : closeAt],
	}, true
}

func containsItalic(spans []Span) bool {
	for _, sp := range spans {
		if sp.Type == SpanItalic || containsItalic(sp.Children) {
			return true
		}
	}
	return false
}

// findItalic locates the first "*inner*" where neither marker touches another asterisk.
func findItalic(s string) (emphasisMatch, bool) {
	for open := 0; open < len(s); open++ {
		if !isLoneAsterisk(s, open) {
			continue
		}

		for closeAt := open + 2; closeAt < len(s); closeAt++ {
			if isLoneAsterisk(s, closeAt) {
				return emphasisMatch{
					kind:  SpanItalic,
					start: open,
					end:   closeAt + 1,
					inner: s[open+1 : closeAt],
				}, true
			}
		}

		// Any closer for a later opener would also close this one.
		return emphasisMatch{}, false
	}
	return emphasisMatch{}, false
}

// isLoneAsterisk reports whether s[i] is '*' with no '*' on either side.
func isLoneAsterisk(s string, i int) bool {
	if s[i] != '*' {
		return false
	}
	if i > 0 && s[i-1] == '*' {
		return false
	}
	if i+1 < len(s) && s[i+1] == '*' {
		return false
	}
	return true
}
