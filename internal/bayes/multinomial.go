// Package bayes implements a Multinomial Naive Bayes classifier over
// weighted sparse feature vectors, trained once and read-only afterwards.
package bayes

import (
	"fmt"
	"math"

	"github.com/mikey/phishing-classifier/internal/vectorizer"
)

// Model holds the fitted parameters: per-class log priors and
// Laplace-smoothed per-(class, term) log likelihoods.
type Model struct {
	classes   []string
	logPrior  []float64
	logLik    [][]float64 // [class][term index]
	vocabSize int
}

// Fit estimates model parameters from training vectors and encoded labels.
// classes gives the label name for each code, vocabSize the feature space
// width, alpha the additive smoothing constant. Fit-time contract
// violations (mismatched lengths, out-of-range labels, no data) are errors;
// prediction never fails.
func Fit(vectors []vectorizer.Vector, labels []int, classes []string, vocabSize int, alpha float64) (*Model, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("cannot fit on an empty training set")
	}
	if len(vectors) != len(labels) {
		return nil, fmt.Errorf("got %d vectors but %d labels", len(vectors), len(labels))
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("no classes given")
	}
	if alpha <= 0 {
		return nil, fmt.Errorf("smoothing alpha must be positive, got %g", alpha)
	}

	k := len(classes)
	classCount := make([]float64, k)
	featureSum := make([][]float64, k)
	classTotal := make([]float64, k)
	for c := range featureSum {
		featureSum[c] = make([]float64, vocabSize)
	}

	for i, vec := range vectors {
		c := labels[i]
		if c < 0 || c >= k {
			return nil, fmt.Errorf("label code %d out of range [0, %d)", c, k)
		}
		classCount[c]++
		for idx, w := range vec {
			if idx < 0 || idx >= vocabSize {
				return nil, fmt.Errorf("feature index %d out of range [0, %d)", idx, vocabSize)
			}
			featureSum[c][idx] += w
			classTotal[c] += w
		}
	}

	m := &Model{
		classes:   append([]string(nil), classes...),
		logPrior:  make([]float64, k),
		logLik:    make([][]float64, k),
		vocabSize: vocabSize,
	}
	total := float64(len(vectors))
	for c := 0; c < k; c++ {
		m.logPrior[c] = math.Log(classCount[c] / total)
		m.logLik[c] = make([]float64, vocabSize)
		denom := classTotal[c] + alpha*float64(vocabSize)
		for t := 0; t < vocabSize; t++ {
			m.logLik[c][t] = math.Log((featureSum[c][t] + alpha) / denom)
		}
	}

	return m, nil
}

// Classes returns the label names in code order
func (m *Model) Classes() []string {
	return append([]string(nil), m.classes...)
}

// Priors returns the class prior probabilities
func (m *Model) Priors() []float64 {
	out := make([]float64, len(m.logPrior))
	for c, lp := range m.logPrior {
		out[c] = math.Exp(lp)
	}
	return out
}

// LogProba returns the unnormalized joint log-likelihood of the vector for
// each class. A zero vector reduces to the class priors.
func (m *Model) LogProba(vec vectorizer.Vector) []float64 {
	scores := append([]float64(nil), m.logPrior...)
	for idx, w := range vec {
		if idx < 0 || idx >= m.vocabSize {
			continue
		}
		for c := range scores {
			scores[c] += w * m.logLik[c][idx]
		}
	}
	return scores
}

// Proba returns normalized class probabilities via softmax over LogProba
func (m *Model) Proba(vec vectorizer.Vector) []float64 {
	scores := m.LogProba(vec)

	// Subtract the max before exponentiating for numerical stability.
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	var sum float64
	probs := make([]float64, len(scores))
	for c, s := range scores {
		probs[c] = math.Exp(s - maxScore)
		sum += probs[c]
	}
	for c := range probs {
		probs[c] /= sum
	}
	return probs
}

// PredictOne returns the class code maximizing the joint log-likelihood,
// ties broken by lowest class index
func (m *Model) PredictOne(vec vectorizer.Vector) int {
	scores := m.LogProba(vec)
	best := 0
	for c := 1; c < len(scores); c++ {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return best
}

// Predict classifies a batch of vectors
func (m *Model) Predict(vectors []vectorizer.Vector) []int {
	out := make([]int, len(vectors))
	for i, vec := range vectors {
		out[i] = m.PredictOne(vec)
	}
	return out
}
