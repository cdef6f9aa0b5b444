// Package matcher links free-text purchase descriptions to catalog products
// using token-set similarity.
package matcher

import (
	"sort"
	"strings"

	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
	"github.com/IqbalNugrahaa/HappiestStore/internal/models"
)

// DefaultThreshold is the minimum similarity FindBestMatch accepts.
const DefaultThreshold = 0.68

const (
	subsetBonus   = 0.10
	containsBonus = 0.05
)

// Matcher scores queries against catalog snapshots. It keeps no state
// between calls and is safe for concurrent use.
type Matcher struct {
	vocab     *Vocabulary
	threshold float64
	logger    logging.Logger
}

// New creates a Matcher. A nil vocabulary uses DefaultVocabulary, a
// threshold outside (0, 1] uses DefaultThreshold and a nil logger discards.
func New(vocab *Vocabulary, threshold float64, logger logging.Logger) *Matcher {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Matcher{vocab: vocab, threshold: threshold, logger: logging.OrDiscard(logger)}
}

var defaultMatcher = New(nil, DefaultThreshold, nil)

// FindBestMatch matches query against catalog with the built-in vocabulary
// and threshold.
func FindBestMatch(query string, catalog models.Catalog) (models.MatchResult, bool) {
	return defaultMatcher.FindBestMatch(query, catalog)
}

// Threshold returns the minimum accepted similarity.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// FindBestMatch returns the highest scoring entry when its similarity
// reaches the threshold. On equal scores the entry seen first wins. An empty
// query or catalog never matches.
func (m *Matcher) FindBestMatch(query string, catalog models.Catalog) (models.MatchResult, bool) {
	if strings.TrimSpace(query) == "" || len(catalog) == 0 {
		return models.MatchResult{}, false
	}

	core := m.queryCore(query)
	var (
		best      models.MatchResult
		bestScore float64
		found     bool
	)
	for _, entry := range catalog {
		if score := m.score(core, entry.Name); score > bestScore {
			best = models.NewMatchResult(entry, score)
			bestScore = score
			found = true
		}
	}

	if !found || bestScore < m.threshold {
		m.logger.Debug("No catalog match",
			logging.F(logging.FieldQuery, query),
			logging.F(logging.FieldSimilarity, bestScore))
		return models.MatchResult{}, false
	}
	m.logger.Debug("Catalog match",
		logging.F(logging.FieldQuery, query),
		logging.F(logging.FieldProduct, best.Name),
		logging.F(logging.FieldSimilarity, bestScore))
	return best, true
}

// Suggestions returns up to n entries ordered by descending similarity,
// ignoring the threshold. Entries scoring zero are left out and ties keep
// catalog order.
func (m *Matcher) Suggestions(query string, catalog models.Catalog, n int) []models.MatchResult {
	if n <= 0 || strings.TrimSpace(query) == "" {
		return nil
	}

	core := m.queryCore(query)
	results := make([]models.MatchResult, 0, len(catalog))
	for _, entry := range catalog {
		if score := m.score(core, entry.Name); score > 0 {
			results = append(results, models.NewMatchResult(entry, score))
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > n {
		results = results[:n]
	}
	return results
}

// Score compares a query and a product name without query truncation.
func (m *Matcher) Score(query, name string) float64 {
	return m.score(query, name)
}

func (m *Matcher) queryCore(query string) string {
	return strings.Join(m.vocab.Truncate(m.vocab.Tokenize(query)), " ")
}

// score protects every token of the product name from noise removal, on
// both sides, so "sharing 4u" still counts when the product is called that.
func (m *Matcher) score(query, name string) float64 {
	productTokens := m.vocab.Tokenize(name)
	queryTokens := m.vocab.Tokenize(query)

	keep := toSet(productTokens)
	productTokens = m.vocab.removeNoise(productTokens, keep)
	queryTokens = m.vocab.removeNoise(queryTokens, keep)

	productSet := toSet(productTokens)
	querySet := toSet(queryTokens)

	s := jaccard(productSet, querySet)
	if isSubset(productSet, querySet) {
		s += subsetBonus
	}
	if strings.Contains(strings.Join(queryTokens, " "), strings.Join(productTokens, " ")) {
		s += containsBonus
	}
	return clamp(s)
}

func jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		union = 1
	}
	return float64(inter) / float64(union)
}

func isSubset(sub, super map[string]struct{}) bool {
	for t := range sub {
		if _, ok := super[t]; !ok {
			return false
		}
	}
	return true
}

func clamp(s float64) float64 {
	switch {
	case s > 1:
		return 1
	case s < 0:
		return 0
	default:
		return s
	}
}
