package ingest

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencyPrefix = regexp.MustCompile(`(?i)Rp\.?\s*`)
	whitespace     = regexp.MustCompile(`\s+`)
	decimalSuffix  = regexp.MustCompile(`\.\d{1,2}\b`)
	nonNumeric     = regexp.MustCompile(`[^\d.-]`)
	leadingDecimal = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)`)
)

// CleanNumber turns a spreadsheet amount into a decimal. It removes "Rp"
// prefixes and whitespace, collapses thousands groups written with '.' or ','
// (1.234.567, 13,319,000), reads a remaining comma as the decimal point unless
// a 1-2 digit dot suffix is already present, and parses the longest numeric
// prefix of what is left. Anything unparseable is zero.
//
// Re-cleaning the String() of a result returns the same value for integers.
func CleanNumber(v string) decimal.Decimal {
	if v == "" {
		return decimal.Zero
	}
	s := currencyPrefix.ReplaceAllString(v, "")
	s = whitespace.ReplaceAllString(s, "")

	for {
		next := collapseThousandsOnce(s)
		if next == s {
			break
		}
		s = next
	}

	if strings.Contains(s, ",") && !decimalSuffix.MatchString(s) {
		s = strings.ReplaceAll(s, ",", ".")
	}

	s = nonNumeric.ReplaceAllString(s, "")
	m := leadingDecimal.FindString(s)
	if m == "" {
		return decimal.Zero
	}
	m = strings.TrimSuffix(m, ".")

	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// collapseThousandsOnce removes one pass of separators matching
// digit [.,] ddd where the three digits are not followed by another digit.
// Matches do not overlap; scanning resumes after each group.
func collapseThousandsOnce(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if isDigit(s[i]) && i+4 < len(s) &&
			(s[i+1] == '.' || s[i+1] == ',') &&
			isDigit(s[i+2]) && isDigit(s[i+3]) && isDigit(s[i+4]) &&
			(i+5 == len(s) || !isDigit(s[i+5])) {
			b.WriteByte(s[i])
			b.WriteString(s[i+2 : i+5])
			i += 5
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// WholeRupiah rounds an amount to whole currency units.
func WholeRupiah(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
