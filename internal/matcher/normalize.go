package matcher

import (
	"strings"

	"github.com/IqbalNugrahaa/HappiestStore/internal/textnorm"
)

// Normalize lowercases s, folds typographic quotes and locale commas,
// drops invisible whitespace, collapses everything outside [a-z0-9] to single
// spaces and finally joins known brand spellings ("cap cut" -> "capcut").
func (v *Vocabulary) Normalize(s string) string {
	s = textnorm.Sanitize(strings.ToLower(s))
	return v.unifySynonyms(textnorm.CollapseNonAlnum(s))
}

// Tokenize returns the normalized tokens of s.
func (v *Vocabulary) Tokenize(s string) []string {
	return textnorm.Fields(v.Normalize(s))
}

// Truncate cuts tokens after the first duration word, keeping the duration
// itself, so a customer name typed after "1 bulan" does not dilute the
// score. The final token is never treated as a cut point since nothing
// follows it.
func (v *Vocabulary) Truncate(tokens []string) []string {
	for i := 0; i < len(tokens)-1; i++ {
		if v.IsDuration(tokens[i]) {
			return tokens[:i+1]
		}
	}
	return tokens
}

// removeNoise drops noise tokens unless keep contains them.
func (v *Vocabulary) removeNoise(tokens []string, keep map[string]struct{}) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := keep[t]; ok || !v.IsNoise(t) {
			out = append(out, t)
		}
	}
	return out
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
