package matcher

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
	"github.com/IqbalNugrahaa/HappiestStore/internal/models"
)

func entry(id, name string, price int64) models.CatalogEntry {
	return models.CatalogEntry{ID: id, Name: name, Price: decimal.NewFromInt(price)}
}

func TestFindBestMatch(t *testing.T) {
	catalog := models.Catalog{
		entry("p1", "CAPCUT PRIVATE 1 BULAN", 25000),
		entry("p2", "NETFLIX SHARING 4U", 30000),
	}

	tests := []struct {
		name       string
		query      string
		expectID   string
		expectHit  bool
		similarity float64
	}{
		{"exact product phrase", "capcut private 1 bulan", "p1", true, 1},
		{"customer name after duration", "capcut private 1 bulan andika", "p1", true, 1},
		{"spaced brand spelling", "Cap Cut Private 1 Bulan", "p1", true, 1},
		{"noise tokens in product name", "netflix sharing 4u 1 bulan", "p2", true, 1},
		{"unrelated text", "random unrelated text", "", false, 0},
		{"empty query", "   ", "", false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FindBestMatch(tc.query, catalog)
			require.Equal(t, tc.expectHit, ok)
			if !tc.expectHit {
				assert.Equal(t, models.MatchResult{}, got)
				return
			}
			assert.Equal(t, tc.expectID, got.ID)
			assert.InDelta(t, tc.similarity, got.Similarity, 1e-9)
			assert.GreaterOrEqual(t, got.Similarity, DefaultThreshold)
		})
	}
}

func TestFindBestMatch_CarriesCatalogFields(t *testing.T) {
	got, ok := FindBestMatch("capcut private 1 bulan", models.Catalog{entry("p1", "CAPCUT PRIVATE 1 BULAN", 25000)})

	require.True(t, ok)
	assert.Equal(t, "CAPCUT PRIVATE 1 BULAN", got.Name)
	assert.True(t, decimal.NewFromInt(25000).Equal(got.Price))
}

func TestFindBestMatch_EmptyCatalog(t *testing.T) {
	_, ok := FindBestMatch("capcut private 1 bulan", nil)
	assert.False(t, ok)
}

func TestFindBestMatch_KeepSetDistinguishesVariants(t *testing.T) {
	catalog := models.Catalog{
		entry("private", "NETFLIX PRIVATE 1 BULAN", 120000),
		entry("sharing", "NETFLIX SHARING 1 BULAN", 30000),
	}

	got, ok := FindBestMatch("netflix sharing 1 bulan", catalog)

	require.True(t, ok)
	assert.Equal(t, "sharing", got.ID)
}

func TestFindBestMatch_FirstEntryWinsTies(t *testing.T) {
	catalog := models.Catalog{
		entry("a", "NETFLIX PREMIUM", 1),
		entry("b", "Netflix Premium", 2),
	}

	got, ok := FindBestMatch("netflix premium", catalog)

	require.True(t, ok)
	assert.Equal(t, "a", got.ID)
}

func TestFindBestMatch_Deterministic(t *testing.T) {
	catalog := models.Catalog{
		entry("a", "SPOTIFY PREMIUM 1 BULAN", 1),
		entry("b", "NETFLIX SHARING 1 BULAN", 2),
		entry("c", "YOUTUBE PREMIUM 1 BULAN", 3),
	}

	first, ok := FindBestMatch("youtube premium 1 bulan budi", catalog)
	require.True(t, ok)
	for i := 0; i < 20; i++ {
		again, _ := FindBestMatch("youtube premium 1 bulan budi", catalog)
		assert.Equal(t, first, again)
	}
}

func TestMatcher_Threshold(t *testing.T) {
	catalog := models.Catalog{entry("private", "NETFLIX PRIVATE 1 BULAN", 120000)}

	got, ok := FindBestMatch("netflix sharing 1 bulan", catalog)
	require.True(t, ok)
	assert.InDelta(t, 0.75, got.Similarity, 1e-9)

	strict := New(nil, 0.9, nil)
	assert.Equal(t, 0.9, strict.Threshold())
	_, ok = strict.FindBestMatch("netflix sharing 1 bulan", catalog)
	assert.False(t, ok)

	assert.Equal(t, DefaultThreshold, New(nil, 0, nil).Threshold())
	assert.Equal(t, DefaultThreshold, New(nil, 1.5, nil).Threshold())
}

func TestMatcher_Score(t *testing.T) {
	m := New(nil, 0, nil)

	t.Run("noise tokens protected by product name", func(t *testing.T) {
		assert.InDelta(t, 1.0, m.Score("sharing 4u 1 bulan", "SHARING 4U"), 1e-9)
	})

	t.Run("no truncation inside Score", func(t *testing.T) {
		// 4 of 5 tokens shared, plus subset and substring bonuses
		assert.InDelta(t, 0.95, m.Score("capcut private 1 bulan andika", "CAPCUT PRIVATE 1 BULAN"), 1e-9)
	})

	t.Run("partial overlap", func(t *testing.T) {
		assert.InDelta(t, 0.25, m.Score("netflix", "NETFLIX PREMIUM 1 BULAN"), 1e-9)
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.Equal(t, 0.0, m.Score("youtube", "spotify"))
	})

	t.Run("always within bounds", func(t *testing.T) {
		for _, q := range []string{"", "a", "capcut", "1 bulan", "sharing sharing sharing"} {
			for _, n := range []string{"", "A", "CAPCUT", "1 BULAN", "SHARING"} {
				s := m.Score(q, n)
				assert.GreaterOrEqual(t, s, 0.0)
				assert.LessOrEqual(t, s, 1.0)
			}
		}
	})
}

func TestMatcher_Suggestions(t *testing.T) {
	catalog := models.Catalog{
		entry("private", "NETFLIX PRIVATE 1 BULAN", 120000),
		entry("spotify", "SPOTIFY PREMIUM 1 BULAN", 20000),
		entry("youtube", "YOUTUBE", 15000),
		entry("sharing", "NETFLIX SHARING 1 BULAN", 30000),
	}
	m := New(nil, 0, nil)

	top := m.Suggestions("netflix sharing 1 bulan", catalog, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "sharing", top[0].ID)
	assert.Equal(t, "private", top[1].ID)

	all := m.Suggestions("netflix sharing 1 bulan", catalog, 10)
	require.Len(t, all, 3)
	assert.Equal(t, "spotify", all[2].ID)
	assert.InDelta(t, 0.4, all[2].Similarity, 1e-9)

	assert.Nil(t, m.Suggestions("netflix", catalog, 0))
	assert.Nil(t, m.Suggestions("", catalog, 3))
}

func TestMatcher_LogsOutcome(t *testing.T) {
	logger := logging.NewMockLogger()
	m := New(nil, 0, logger)
	catalog := models.Catalog{entry("p1", "CAPCUT PRIVATE 1 BULAN", 25000)}

	m.FindBestMatch("capcut private 1 bulan", catalog)
	m.FindBestMatch("random", catalog)

	assert.True(t, logger.HasEntry("DEBUG", "Catalog match"))
	assert.True(t, logger.HasEntry("DEBUG", "No catalog match"))
}

func TestMatcher_SubstitutedVocabulary(t *testing.T) {
	vocab, err := NewVocabulary([]string{"jam"}, []string{"paket"}, nil)
	require.NoError(t, err)
	m := New(vocab, 0, nil)
	catalog := models.Catalog{entry("z", "ZOOM PRO 2 JAM", 10000)}

	got, ok := m.FindBestMatch("zoom pro 2 jam paket meeting", catalog)

	require.True(t, ok)
	assert.Equal(t, "z", got.ID)
	assert.InDelta(t, 1.0, got.Similarity, 1e-9)
}
