package ingest

// DefaultDelimiters are the candidate delimiters in tie-break order.
var DefaultDelimiters = []rune{',', ';', '\t', '|'}

// DefaultSampleSize is how many leading records delimiter detection reads.
const DefaultSampleSize = 10

// minColumns is the smallest column count a delimiter must produce for a
// sampled record to count towards its score.
const minColumns = 2

// DetectDelimiter picks the candidate that splits the sampled records most
// consistently. For each candidate, the column count of the first sampled
// record is the reference; every sampled record with that count (and at least
// two columns) adds one to the candidate's consistency, and the score is
// consistency times the reference count. The first candidate with the
// strictly highest score wins, so ties resolve to the earliest candidate.
func DetectDelimiter(records []string, candidates []rune, sampleSize int) rune {
	if len(candidates) == 0 {
		candidates = DefaultDelimiters
	}
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	n := min(len(records), sampleSize)

	best := candidates[0]
	bestScore := -1
	for _, d := range candidates {
		if score := delimiterScore(records[:n], d); score > bestScore {
			best = d
			bestScore = score
		}
	}
	return best
}

func delimiterScore(sample []string, d rune) int {
	consistent := 0
	cols := -1
	for _, rec := range sample {
		parts := len(SplitLine(rec, d))
		if cols == -1 {
			cols = parts
		}
		if parts == cols && parts >= minColumns {
			consistent++
		}
	}
	if cols < 0 {
		return 0
	}
	return consistent * cols
}

// alternates returns candidates without primary, preserving order.
func alternates(candidates []rune, primary rune) []rune {
	out := make([]rune, 0, len(candidates))
	for _, d := range candidates {
		if d != primary {
			out = append(out, d)
		}
	}
	return out
}

// DelimiterName renders a delimiter for logs and output.
func DelimiterName(d rune) string {
	if d == '\t' {
		return `\t`
	}
	return string(d)
}
