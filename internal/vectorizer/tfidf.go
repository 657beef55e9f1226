// Package vectorizer learns a capped vocabulary with smoothed
// inverse-document-frequency weights from training text and turns documents
// into L2-normalized sparse TF-IDF vectors.
package vectorizer

import (
	"math"
	"sort"
	"strings"

	"github.com/mikey/phishing-classifier/internal/dataset"
)

// Vectorizer holds the fitting options. Input text is expected to be already
// cleaned, so analysis is a plain whitespace split.
type Vectorizer struct {
	MaxFeatures int
}

// New creates a vectorizer with the given vocabulary cap
func New(maxFeatures int) *Vectorizer {
	return &Vectorizer{MaxFeatures: maxFeatures}
}

// Model is the fitted vocabulary and its IDF weights. Produced once by Fit
// from the training partition only, read-only afterwards; terms unseen at
// fit time are ignored by Transform, never added.
type Model struct {
	vocab map[string]int
	idf   []float64
}

type termStat struct {
	term      string
	count     int // corpus-wide term frequency
	df        int // number of documents containing the term
	firstSeen int // order of first appearance, tie-breaker
}

// Fit learns the vocabulary and IDF weights from training texts.
// Vocabulary is the top MaxFeatures terms by corpus-wide term frequency,
// ties broken by first-seen order. IDF uses the smoothed form
// ln((1+N)/(1+df)) + 1 so no fitted term ever gets a zero weight.
func (v *Vectorizer) Fit(texts []string) (*Model, error) {
	if v.MaxFeatures < 1 {
		return nil, &dataset.ConfigError{Option: "max features", Reason: "must be at least 1"}
	}

	stats := make(map[string]*termStat)
	order := 0
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, tok := range strings.Fields(text) {
			st, ok := stats[tok]
			if !ok {
				st = &termStat{term: tok, firstSeen: order}
				stats[tok] = st
				order++
			}
			st.count++
			if _, dup := seen[tok]; !dup {
				seen[tok] = struct{}{}
				st.df++
			}
		}
	}

	ranked := make([]*termStat, 0, len(stats))
	for _, st := range stats {
		ranked = append(ranked, st)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].firstSeen < ranked[j].firstSeen
	})
	if len(ranked) > v.MaxFeatures {
		ranked = ranked[:v.MaxFeatures]
	}

	n := float64(len(texts))
	m := &Model{
		vocab: make(map[string]int, len(ranked)),
		idf:   make([]float64, len(ranked)),
	}
	for i, st := range ranked {
		m.vocab[st.term] = i
		m.idf[i] = math.Log((1+n)/(1+float64(st.df))) + 1
	}

	return m, nil
}

// VocabSize returns the fitted vocabulary size
func (m *Model) VocabSize() int {
	return len(m.vocab)
}

// TransformOne converts a single document into an L2-normalized TF-IDF
// vector over the fitted vocabulary. Out-of-vocabulary terms are ignored;
// a document with no surviving terms yields the zero vector.
func (m *Model) TransformOne(text string) Vector {
	vec := make(Vector)
	for _, tok := range strings.Fields(text) {
		if idx, ok := m.vocab[tok]; ok {
			vec[idx]++
		}
	}
	for idx := range vec {
		vec[idx] *= m.idf[idx]
	}

	if norm := vec.Norm(); norm > 0 {
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// Transform converts a batch of documents
func (m *Model) Transform(texts []string) []Vector {
	out := make([]Vector, len(texts))
	for i, text := range texts {
		out[i] = m.TransformOne(text)
	}
	return out
}
