package ingest

import (
	"strings"

	"github.com/IqbalNugrahaa/HappiestStore/internal/textnorm"
)

// Record is one logical CSV record after quoted line breaks have been joined
// back together.
type Record struct {
	Text      string
	StartLine int
	EndLine   int
}

// CoalesceRecords splits content into logical records. Physical lines are
// sanitized first, then accumulated until the record's double quotes are
// balanced again. A doubled quote ("") is an escape and does not change the
// balance. Blank records are dropped.
func CoalesceRecords(content string) []Record {
	rawLines := strings.Split(textnorm.NormalizeLines(content), "\n")

	var (
		out      []Record
		buf      strings.Builder
		inQuotes bool
		start    int
	)

	flush := func(end int) {
		text := buf.String()
		if strings.TrimSpace(text) != "" {
			out = append(out, Record{Text: text, StartLine: start, EndLine: end})
		}
		buf.Reset()
	}

	for i, raw := range rawLines {
		line := textnorm.Sanitize(raw)
		if buf.Len() == 0 && !inQuotes {
			start = i + 1
		} else {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)

		inQuotes = toggleQuotes(line, inQuotes)

		if !inQuotes {
			flush(i + 1)
		}
	}

	if buf.Len() > 0 {
		flush(len(rawLines))
	}
	return out
}

// toggleQuotes returns the quote state after scanning line.
func toggleQuotes(line string, inQuotes bool) bool {
	for i := 0; i < len(line); i++ {
		if line[i] != '"' {
			continue
		}
		if i+1 < len(line) && line[i+1] == '"' {
			i++
			continue
		}
		inQuotes = !inQuotes
	}
	return inQuotes
}

// recordTexts returns the text of each record.
func recordTexts(records []Record) []string {
	texts := make([]string, len(records))
	for i, r := range records {
		texts[i] = r.Text
	}
	return texts
}
