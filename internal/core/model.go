package core

import (
	"time"
)

// Label values carried by the training data
const (
	LabelPhishing = "Phishing Email"
	LabelSafe     = "Safe Email"
)

// Email represents an email message to classify
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
	Headers map[string][]string
}

// AnalysisResult represents the outcome of classifying one email
type AnalysisResult struct {
	IsPhishing bool
	Label      string
	Confidence float64
	AnalyzedAt time.Time
	ModelUsed  string
}

// CacheEntry is a cached classification keyed by the digest of the cleaned
// email text
type CacheEntry struct {
	Digest     string
	Label      string
	IsPhishing bool
	Confidence float64
	LastSeen   time.Time
	ExpiresAt  time.Time
}
