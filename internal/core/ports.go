package core

import (
	"context"

	"github.com/mikey/phishing-classifier/internal/vectorizer"
)

// TextCleaner normalizes raw email text into cleaned token text
type TextCleaner interface {
	Clean(text string) string
}

// FeatureTransformer turns cleaned text into a sparse feature vector over a
// fixed, fitted vocabulary
type FeatureTransformer interface {
	TransformOne(text string) vectorizer.Vector
}

// Classifier scores fitted feature vectors against the trained classes
type Classifier interface {
	// PredictOne returns the winning class code
	PredictOne(vec vectorizer.Vector) int

	// Proba returns normalized per-class probabilities
	Proba(vec vectorizer.Vector) []float64

	// Classes returns the label names in code order
	Classes() []string
}

// CacheRepository defines the interface for caching classification results
type CacheRepository interface {
	// Get retrieves a cached entry by content digest
	Get(ctx context.Context, digest string) (*CacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, digest string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}
