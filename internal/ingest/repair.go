package ingest

import (
	"strings"

	"github.com/IqbalNugrahaa/HappiestStore/internal/models"
)

const (
	// mergeGuard bounds thousands-merge passes over quote-aware cells.
	mergeGuard = 8
	// naiveMergeGuard bounds thousands-merge passes in the last resort.
	naiveMergeGuard = 12
)

// rowInput is what every repair strategy sees for one record.
type rowInput struct {
	line       string
	primary    rune
	alternates []rune
	headerLen  int
}

// repairStrategy fits a record to the header width, or reports that it
// does not apply.
type repairStrategy struct {
	name  models.RepairStrategy
	apply func(in rowInput) ([]string, bool)
}

// repairChain is tried in order; the first strategy that applies wins. The
// last entry always applies, so every record yields exactly headerLen cells.
var repairChain = []repairStrategy{
	{name: models.RepairPrimary, apply: splitPrimary},
	{name: models.RepairAlternateDelimiter, apply: splitAlternate},
	{name: models.RepairThousandsMerge, apply: mergeQuoted},
	{name: models.RepairForceFit, apply: forceFitNaive},
}

// RepairRow returns exactly headerLen cells for line and the strategy that
// produced them.
func RepairRow(line string, primary rune, candidates []rune, headerLen int) ([]string, models.RepairStrategy) {
	in := rowInput{
		line:       line,
		primary:    primary,
		alternates: alternates(candidates, primary),
		headerLen:  headerLen,
	}
	for _, s := range repairChain {
		if cells, ok := s.apply(in); ok {
			return cells, s.name
		}
	}
	// unreachable: forceFitNaive always applies
	return forceFit(nil, headerLen, primary), models.RepairForceFit
}

func splitPrimary(in rowInput) ([]string, bool) {
	cells := SplitLine(in.line, in.primary)
	return cells, len(cells) == in.headerLen
}

func splitAlternate(in rowInput) ([]string, bool) {
	for _, d := range in.alternates {
		if cells := SplitLine(in.line, d); len(cells) == in.headerLen {
			return cells, true
		}
	}
	return nil, false
}

// mergeQuoted handles a price like 12,500 written without quotes, which the
// primary split turns into the two cells "12" and "500".
func mergeQuoted(in rowInput) ([]string, bool) {
	cells := SplitLine(in.line, in.primary)
	if len(cells) <= in.headerLen {
		return nil, false
	}
	for guard := 0; len(cells) > in.headerLen && guard < mergeGuard; guard++ {
		merged := MergeThousandGroups(cells)
		if len(merged) == len(cells) {
			break
		}
		cells = merged
	}
	return cells, len(cells) == in.headerLen
}

// forceFitNaive ignores quoting, merges thousands groups and then pads or
// folds the overflow into the last column.
func forceFitNaive(in rowInput) ([]string, bool) {
	cells := naiveSplit(in.line, in.primary)
	for guard := 0; len(cells) > in.headerLen && guard < naiveMergeGuard; guard++ {
		cells = MergeThousandGroups(cells)
	}
	return forceFit(cells, in.headerLen, in.primary), true
}

// MergeThousandGroups makes one left-to-right pass joining each cell that
// ends in a digit with a following cell of exactly three digits:
// ["12", "500"] becomes ["12,500"].
func MergeThousandGroups(cells []string) []string {
	out := make([]string, 0, len(cells))
	for i := 0; i < len(cells); i++ {
		cur := strings.TrimSpace(cells[i])
		if i+1 < len(cells) && endsWithDigit(cur) && isThreeDigits(strings.TrimSpace(cells[i+1])) {
			out = append(out, cur+","+strings.TrimSpace(cells[i+1]))
			i++
			continue
		}
		out = append(out, cells[i])
	}
	return out
}

// forceFit pads cells with empty strings, or joins the overflow into the
// final column with delim.
func forceFit(cells []string, headerLen int, delim rune) []string {
	switch {
	case headerLen <= 0:
		return []string{}
	case len(cells) > headerLen:
		head := append([]string(nil), cells[:headerLen-1]...)
		return append(head, strings.Join(cells[headerLen-1:], string(delim)))
	default:
		padded := make([]string, headerLen)
		copy(padded, cells)
		return padded
	}
}

func endsWithDigit(s string) bool {
	return s != "" && isDigit(s[len(s)-1])
}

func isThreeDigits(s string) bool {
	return len(s) == 3 && isDigit(s[0]) && isDigit(s[1]) && isDigit(s[2])
}
