package vectorizer

import "math"

// Vector is a sparse feature vector mapping vocabulary indices to TF-IDF
// weights. Absent indices are implicitly zero; the empty map is the zero
// vector.
type Vector map[int]float64

// Norm returns the Euclidean norm of the vector
func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// IsZero reports whether the vector has no non-zero components
func (v Vector) IsZero() bool {
	return len(v) == 0
}

// Dot returns the dot product with another sparse vector
func (v Vector) Dot(other Vector) float64 {
	a, b := v, other
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for i, w := range a {
		sum += w * b[i]
	}
	return sum
}
