package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bom stripped", "\uFEFFDate,Notes\n", "Date,Notes\n"},
		{"crlf", "a\r\nb\r\n", "a\nb\n"},
		{"lone cr", "a\rb", "a\nb"},
		{"mixed", "a\r\nb\rc\n", "a\nb\nc\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeLines(tc.input))
		})
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, `"Widget"`, Sanitize("\u201CWidget\u201D"))
	assert.Equal(t, "a,b,c", Sanitize("a\uFF0Cb\u060Cc"))
	assert.Equal(t, "12500", Sanitize("12\u00A0500\u200B"))
	assert.Equal(t, "plain text", Sanitize("plain text"))
}

func TestCollapseNonAlnum(t *testing.T) {
	assert.Equal(t, "capcut private 1 bulan", CollapseNonAlnum("  capcut -- private (1 bulan)!! "))
	assert.Equal(t, "caf latte", CollapseNonAlnum("café latte"))
	assert.Equal(t, "", CollapseNonAlnum("---"))
}

func TestFields(t *testing.T) {
	assert.Nil(t, Fields(""))
	assert.Equal(t, []string{"a", "b"}, Fields("a b"))
}
