package textproc

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

// Sanitizer prepares raw email bodies for cleaning: byte-capping oversized
// messages and repairing invalid UTF-8 before any tokenization runs.
type Sanitizer struct {
	logger *zap.Logger
}

// NewSanitizer creates a new Sanitizer
func NewSanitizer(logger *zap.Logger) *Sanitizer {
	return &Sanitizer{logger: logger}
}

// Truncate caps text at maxSize bytes without splitting a UTF-8 sequence.
// maxSize <= 0 disables the cap.
func (s *Sanitizer) Truncate(text string, maxSize int) string {
	if maxSize <= 0 || len(text) <= maxSize {
		return text
	}

	truncated := text[:maxSize]
	// Back off any multi-byte sequence the cut split in half.
	for len(truncated) > 0 {
		r, size := utf8.DecodeLastRuneInString(truncated)
		if r != utf8.RuneError || size != 1 {
			break
		}
		truncated = truncated[:len(truncated)-1]
	}

	s.logger.Debug("Email body truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)))

	return truncated
}

// SanitizeUTF8 drops invalid UTF-8 sequences from text
func (s *Sanitizer) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	result := make([]rune, 0, len(text))
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
				continue
			}
		}
		result = append(result, r)
	}

	s.logger.Debug("Email body sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(string(result))))

	return string(result)
}

// Prepare truncates and sanitizes in one pass
func (s *Sanitizer) Prepare(text string, maxSize int) string {
	return s.SanitizeUTF8(s.Truncate(text, maxSize))
}
