// Package textnorm holds the character-level cleanup shared by the CSV
// ingestor and the catalog matcher.
package textnorm

import (
	"strings"
)

const byteOrderMark = "\uFEFF"

// commaVariants are the locale-specific comma characters spreadsheets emit in
// place of ASCII ','.
var commaVariants = []rune{'\uFF0C', '\u060C', '\u3001', '\u066B', '\u201A'}

// smartQuotes are typographic double quotes that must count as '"'.
var smartQuotes = []rune{'\u201C', '\u201D', '\u201E', '\u201F'}

// invisibleSpaces are dropped entirely.
var invisibleSpaces = []rune{'\u00A0', '\u200B', '\u200C', '\u200D', '\u2060'}

var sanitizer = buildSanitizer()

func buildSanitizer() *strings.Replacer {
	var pairs []string
	for _, r := range smartQuotes {
		pairs = append(pairs, string(r), `"`)
	}
	for _, r := range commaVariants {
		pairs = append(pairs, string(r), ",")
	}
	for _, r := range invisibleSpaces {
		pairs = append(pairs, string(r), "")
	}
	return strings.NewReplacer(pairs...)
}

// NormalizeLines strips every byte-order mark and converts CRLF and lone CR
// line endings to LF.
func NormalizeLines(s string) string {
	s = strings.ReplaceAll(s, byteOrderMark, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Sanitize maps smart quotes to '"' and locale comma variants to ',', and
// removes invisible whitespace.
func Sanitize(s string) string {
	return sanitizer.Replace(s)
}

// CollapseNonAlnum replaces every run of characters outside [a-z0-9] with a
// single space and trims the result. Input is expected to be lowercased.
func CollapseNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteByte(c)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}

// Fields splits a normalized string on single spaces, dropping empties.
func Fields(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
