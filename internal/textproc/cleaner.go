package textproc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// urlPattern matches "http" followed by any run of non-whitespace,
	// which covers http://, https:// and bare hostname fragments alike.
	// Case-insensitive: URL stripping runs before the lowercase step.
	urlPattern = regexp.MustCompile(`(?i)http\S*`)

	// symbolPattern matches everything that is neither ASCII alphanumeric
	// nor whitespace. Applied after accent folding so "café" survives as "cafe".
	symbolPattern = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
)

// asciiFold decomposes accented characters and drops the combining marks,
// mapping e.g. "é" to "e" before punctuation stripping can destroy it.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Cleaner normalizes raw email text into a cleaned, stop-word-free token
// stream. All methods are total: any input, including empty strings and
// text made entirely of URLs or punctuation, degrades to an empty result.
type Cleaner struct {
	stopWords map[string]struct{}
}

// NewCleaner creates a cleaner with the default English stop-word set
func NewCleaner() *Cleaner {
	return &Cleaner{stopWords: englishStopWords}
}

// Tokens normalizes text and returns the surviving tokens in order:
// URLs removed, accents folded, punctuation stripped, lowercased,
// whitespace-tokenized, stop words dropped.
func (c *Cleaner) Tokens(text string) []string {
	text = urlPattern.ReplaceAllString(text, "")
	if folded, _, err := transform.String(asciiFold, text); err == nil {
		text = folded
	}
	text = symbolPattern.ReplaceAllString(text, "")
	text = strings.ToLower(text)

	fields := strings.Fields(text)
	tokens := fields[:0]
	for _, tok := range fields {
		if _, stop := c.stopWords[tok]; !stop {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Clean returns the cleaned text with surviving tokens joined by single
// spaces. Idempotent: cleaning already-clean text is a no-op.
func (c *Cleaner) Clean(text string) string {
	return strings.Join(c.Tokens(text), " ")
}
