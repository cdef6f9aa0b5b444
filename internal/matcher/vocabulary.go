package matcher

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Synonym rewrites a spelling variant of a brand into its single-token form.
// Pattern is a regular expression applied to normalized text.
type Synonym struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

type compiledSynonym struct {
	re          *regexp.Regexp
	replacement string
}

// Vocabulary holds the word tables the matcher consults. It is immutable
// once built and safe to share between goroutines.
type Vocabulary struct {
	durations []string
	noise     map[string]struct{}
	duration  map[string]struct{}
	synonyms  []compiledSynonym
}

// vocabularyFile is the on-disk YAML layout of a vocabulary override.
type vocabularyFile struct {
	Durations []string  `yaml:"durations"`
	Noise     []string  `yaml:"noise"`
	Synonyms  []Synonym `yaml:"synonyms"`
}

var (
	defaultDurations = []string{"bulan", "minggu", "hari", "bln", "hr", "mo", "month", "mth", "day", "week"}

	// defaultNoise is added to the durations to form the noise list.
	defaultNoise = []string{"1", "2", "3", "4", "6", "12", "24", "4u", "8u", "4user", "8user", "antilimit", "sharing", "private"}

	defaultSynonyms = []Synonym{
		{Pattern: `\bcap\s*cut\b`, Replacement: "capcut"},
		{Pattern: `\bnet\s*flix\b`, Replacement: "netflix"},
		{Pattern: `\bgo\s*pay\b`, Replacement: "gopay"},
	}

	defaultVocabulary = mustVocabulary(defaultDurations, defaultNoise, defaultSynonyms)
)

// DefaultVocabulary returns the built-in word tables.
func DefaultVocabulary() *Vocabulary {
	return defaultVocabulary
}

// NewVocabulary builds a Vocabulary. Durations are always treated as noise
// as well; noise lists only the additional tokens.
func NewVocabulary(durations, noise []string, synonyms []Synonym) (*Vocabulary, error) {
	v := &Vocabulary{
		durations: append([]string(nil), durations...),
		noise:     make(map[string]struct{}, len(durations)+len(noise)),
		duration:  make(map[string]struct{}, len(durations)),
	}
	for _, d := range durations {
		v.duration[d] = struct{}{}
		v.noise[d] = struct{}{}
	}
	for _, n := range noise {
		v.noise[n] = struct{}{}
	}
	for _, s := range synonyms {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid synonym pattern %q: %w", s.Pattern, err)
		}
		v.synonyms = append(v.synonyms, compiledSynonym{re: re, replacement: s.Replacement})
	}
	return v, nil
}

func mustVocabulary(durations, noise []string, synonyms []Synonym) *Vocabulary {
	v, err := NewVocabulary(durations, noise, synonyms)
	if err != nil {
		panic(err)
	}
	return v
}

// LoadVocabulary reads a YAML vocabulary file. Sections the file omits keep
// their built-in values.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading vocabulary file: %w", err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes a YAML vocabulary document.
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing vocabulary file: %w", err)
	}
	if file.Durations == nil {
		file.Durations = defaultDurations
	}
	if file.Noise == nil {
		file.Noise = defaultNoise
	}
	if file.Synonyms == nil {
		file.Synonyms = defaultSynonyms
	}
	return NewVocabulary(file.Durations, file.Noise, file.Synonyms)
}

// IsDuration reports whether token is a duration word.
func (v *Vocabulary) IsDuration(token string) bool {
	_, ok := v.duration[token]
	return ok
}

// IsNoise reports whether token is on the noise list.
func (v *Vocabulary) IsNoise(token string) bool {
	_, ok := v.noise[token]
	return ok
}

// Durations returns a copy of the duration words.
func (v *Vocabulary) Durations() []string {
	return append([]string(nil), v.durations...)
}

func (v *Vocabulary) unifySynonyms(s string) string {
	for _, syn := range v.synonyms {
		s = syn.re.ReplaceAllString(s, syn.replacement)
	}
	return s
}
