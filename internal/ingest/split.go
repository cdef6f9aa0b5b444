package ingest

import (
	"strings"
	"unicode/utf8"
)

// SplitLine splits a record on delim. Delimiters inside double quotes are
// literal, a doubled quote inside quotes yields one '"', and every cell is
// trimmed.
func SplitLine(line string, delim rune) []string {
	var (
		out      []string
		cur      strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); {
		ch, size := utf8.DecodeRuneInString(line[i:])
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				size = 2
			} else {
				inQuotes = !inQuotes
			}
		case ch == delim && !inQuotes:
			out = append(out, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
		i += size
	}
	return append(out, strings.TrimSpace(cur.String()))
}

// naiveSplit splits on every delim regardless of quoting. A cell wrapped in
// a single pair of quotes is unwrapped.
func naiveSplit(line string, delim rune) []string {
	parts := strings.Split(line, string(delim))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
			p = strings.TrimSpace(p[1 : len(p)-1])
		}
		parts[i] = p
	}
	return parts
}
