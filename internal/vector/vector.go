// Package vector holds sparse term vectors and the cosine similarity between them.
package vector

import (
	"maps"
	"math"
	"slices"

	"github.com/jdpolicano/go-similarity/internal/extract"
)

// Vector maps a term to a non-negative weight. A term missing from the map has weight 0.
type Vector map[string]float64

// FromCounts treats raw term counts as weights.
func FromCounts(tf extract.TermFreqs) Vector {
	v := make(Vector, len(tf))
	for term, cnt := range tf {
		v[term] = float64(cnt)
	}
	return v
}

// Weight returns the weight of term, or 0 when the term is absent.
func (v Vector) Weight(term string) float64 {
	if w, exists := v[term]; exists {
		return w
	}
	return 0
}

// Terms returns the terms of v in sorted order. Sums run in this order so that a score
// does not depend on map iteration.
func (v Vector) Terms() []string {
	return slices.Sorted(maps.Keys(v))
}

// Magnitude is the euclidean length of the vector.
func (v Vector) Magnitude() float64 {
	sum := 0.0
	for _, term := range v.Terms() {
		sum += v[term] * v[term]
	}
	return math.Sqrt(sum)
}

// CosineSimilarity computes dot(a, b) / (|a| * |b|).
// Returns 0 if either vector has zero magnitude. The result is clamped to 1 to absorb
// rounding on near identical vectors.
func CosineSimilarity(a, b Vector) float64 {
	magA, magB := a.Magnitude(), b.Magnitude()
	if magA == 0 || magB == 0 {
		return 0
	}

	// a term outside the intersection contributes 0 to the dot product,
	// so walking the smaller of the two is enough.
	small, large := a, b
	if len(large) < len(small) {
		small, large = large, small
	}
	dot := 0.0
	for _, term := range small.Terms() {
		dot += small[term] * large.Weight(term)
	}

	return min(dot/(magA*magB), 1)
}
