package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"iso", "2025-01-15", "2025-01-15", false},
		{"iso unpadded", "2025-1-5", "2025-01-05", false},
		{"iso with time", "2025-01-15 13:45:00", "2025-01-15", false},
		{"iso T no zone", "2025-01-15T23:59:59", "2025-01-15", false},
		{"rfc3339 positive offset keeps local day", "2025-01-15T01:00:00+07:00", "2025-01-15", false},
		{"rfc3339 utc", "2025-03-01T00:00:00Z", "2025-03-01", false},
		{"slash year first", "2025/02/03", "2025-02-03", false},
		{"us month first", "01/15/2025", "2025-01-15", false},
		{"us unpadded", "1/5/2025", "2025-01-05", false},
		{"us dashes", "01-15-2025", "2025-01-15", false},
		{"month name", "Jan 15, 2025", "2025-01-15", false},
		{"long month name", "January 15, 2025", "2025-01-15", false},
		{"day month year", "15 Jan 2025", "2025-01-15", false},
		{"lowercase month", "15 jan 2025", "2025-01-15", false},
		{"surrounding whitespace", "  2025-01-15  ", "2025-01-15", false},
		{"two digit year", "1/5/25", "2025-01-05", false},
		{"empty", "", "", true},
		{"garbage", "not a date", "", true},
		{"day first is rejected", "15/01/2025", "", true},
		{"impossible day", "2025-02-30", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeDate(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseLenient_AnchoredAtUTCMidnight(t *testing.T) {
	got, err := ParseLenient("2025-06-30T22:15:00-05:00")
	require.NoError(t, err)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, "2025-06-30", ToISODate(got))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "Jan 15, 2025", CleanDateString("  Jan   15,\t2025 "))
	assert.Equal(t, "", CleanDateString("   "))
}
