package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ProductTypes are the canonical product types, in display order.
var ProductTypes = []string{
	"SHARING",
	"SHARING 8U",
	"SHARING 4U",
	"SHARING 2U",
	"SHARING BIASA",
	"SHARING ANTILIMIT",
	"PRIVATE",
	"EDUKASI",
	"SOSMED",
	"GOOGLE",
	"EDITING",
	"MUSIC",
	"FAMPLAN",
	"INDPLAN",
}

var typeSynonyms = map[string]string{
	"EDUCATION":       "EDUKASI",
	"EDU":             "EDUKASI",
	"SOCMED":          "SOSMED",
	"FAMILY PLAN":     "FAMPLAN",
	"FAM PLAN":        "FAMPLAN",
	"INDIVIDUAL PLAN": "INDPLAN",
	"IND PLAN":        "INDPLAN",
}

var (
	spaceRun     = regexp.MustCompile(`\s+`)
	userSuffix   = regexp.MustCompile(`\b(\d)\s*U\b`)
	userPrefix   = regexp.MustCompile(`\bU\s*(\d)\b`)
	canonicalSet = buildCanonicalSet()
)

func buildCanonicalSet() map[string]string {
	set := make(map[string]string, len(ProductTypes))
	for _, t := range ProductTypes {
		set[normalizeType(t)] = t
	}
	return set
}

// normalizeType folds diacritics, uppercases, collapses whitespace and
// writes user counts as "4U" whether they arrive as "4 u" or "u4".
func normalizeType(raw string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), raw)
	if err != nil {
		folded = raw
	}
	s := strings.TrimSpace(spaceRun.ReplaceAllString(strings.ToUpper(folded), " "))
	s = userSuffix.ReplaceAllString(s, "${1}U")
	return userPrefix.ReplaceAllString(s, "${1}U")
}

// CanonicalType maps raw to one of ProductTypes. It reports false when the
// value is not a known type or synonym.
func CanonicalType(raw string) (string, bool) {
	n := normalizeType(raw)
	if t, ok := typeSynonyms[n]; ok {
		return t, true
	}
	t, ok := canonicalSet[n]
	return t, ok
}
