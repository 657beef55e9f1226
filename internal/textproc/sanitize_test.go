package textproc

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSanitizerTruncate(t *testing.T) {
	s := NewSanitizer(zap.NewNop())

	tests := []struct {
		name     string
		input    string
		maxSize  int
		expected string
	}{
		{
			name:     "under limit unchanged",
			input:    "short body",
			maxSize:  100,
			expected: "short body",
		},
		{
			name:     "over limit truncated",
			input:    strings.Repeat("a", 20),
			maxSize:  10,
			expected: strings.Repeat("a", 10),
		},
		{
			name:     "zero disables cap",
			input:    strings.Repeat("a", 20),
			maxSize:  0,
			expected: strings.Repeat("a", 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Truncate(tt.input, tt.maxSize))
		})
	}
}

func TestSanitizerTruncateKeepsValidUTF8(t *testing.T) {
	s := NewSanitizer(zap.NewNop())

	// "é" is two bytes; a cut at 3 would split the second rune.
	input := "aéé"
	out := s.Truncate(input, 4)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "aé", out)
}

func TestSanitizerSanitizeUTF8(t *testing.T) {
	s := NewSanitizer(zap.NewNop())

	assert.Equal(t, "clean text", s.SanitizeUTF8("clean text"))

	dirty := "bad\xffbyte"
	out := s.SanitizeUTF8(dirty)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "badbyte", out)
}

func TestSanitizerPrepare(t *testing.T) {
	s := NewSanitizer(zap.NewNop())

	out := s.Prepare("hello\xffworld and more", 11)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "helloworld", out)
}
