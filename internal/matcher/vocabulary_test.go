package matcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulary_Normalize(t *testing.T) {
	v := DefaultVocabulary()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase and punctuation", "CAPCUT - Private (1 Bulan)", "capcut private 1 bulan"},
		{"brand synonym", "Cap Cut Pro", "capcut pro"},
		{"hyphenated brand", "Net-Flix Sharing", "netflix sharing"},
		{"joined brand unchanged", "GoPay topup", "gopay topup"},
		{"smart quotes and locale comma", "\u201Cnetflix\u201D\uFF0Csharing", "netflix sharing"},
		{"invisible space removed", "spo\u200Btify", "spotify"},
		{"synonym needs word boundary", "capcutter", "capcutter"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, v.Normalize(tc.input))
		})
	}
}

func TestVocabulary_Truncate(t *testing.T) {
	v := DefaultVocabulary()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"customer after duration", "capcut private 1 bulan andika", []string{"capcut", "private", "1", "bulan"}},
		{"first duration wins", "netflix 1 bulan 1 hari budi", []string{"netflix", "1", "bulan"}},
		{"duration is last token", "capcut private 1 bulan", []string{"capcut", "private", "1", "bulan"}},
		{"no duration", "spotify premium andika", []string{"spotify", "premium", "andika"}},
		{"empty", "", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, v.Truncate(v.Tokenize(tc.input)))
		})
	}
}

func TestVocabulary_NoiseIncludesDurations(t *testing.T) {
	v := DefaultVocabulary()

	assert.True(t, v.IsDuration("bulan"))
	assert.True(t, v.IsNoise("bulan"))
	assert.True(t, v.IsNoise("4u"))
	assert.True(t, v.IsNoise("sharing"))
	assert.False(t, v.IsDuration("sharing"))
	assert.False(t, v.IsNoise("netflix"))
	assert.Len(t, v.Durations(), 10)
}

func TestParseVocabulary(t *testing.T) {
	t.Run("omitted sections keep defaults", func(t *testing.T) {
		v, err := ParseVocabulary([]byte("durations: [jam, menit]\n"))
		require.NoError(t, err)

		assert.True(t, v.IsDuration("jam"))
		assert.False(t, v.IsDuration("bulan"))
		assert.True(t, v.IsNoise("private"))
		assert.Equal(t, "capcut", v.Normalize("cap cut"))
	})

	t.Run("custom synonyms", func(t *testing.T) {
		v, err := ParseVocabulary([]byte("synonyms:\n  - pattern: '\\byou\\s*tube\\b'\n    replacement: youtube\n"))
		require.NoError(t, err)

		assert.Equal(t, "youtube premium", v.Normalize("You Tube Premium"))
		assert.Equal(t, "cap cut", v.Normalize("cap cut"))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := ParseVocabulary([]byte("synonyms:\n  - pattern: '('\n    replacement: x\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseVocabulary([]byte("durations: [unclosed"))
		assert.Error(t, err)
	})
}

func TestLoadVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	require.NoError(t, os.WriteFile(path, []byte("noise: [promo]\n"), 0o600))

	v, err := LoadVocabulary(path)
	require.NoError(t, err)
	assert.True(t, v.IsNoise("promo"))
	assert.False(t, v.IsNoise("sharing"))
	assert.True(t, v.IsNoise("bulan"))

	_, err = LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
