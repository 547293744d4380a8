package vector

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdpolicano/go-similarity/internal/extract"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want float64
	}{
		{"identical", Vector{"a": 1, "b": 1}, Vector{"a": 1, "b": 1}, 1},
		{"disjoint", Vector{"a": 1, "b": 1}, Vector{"c": 1, "d": 1}, 0},
		{"scaled copy", Vector{"a": 1, "b": 2, "c": 3}, Vector{"a": 2, "b": 4, "c": 6}, 1},
		{
			"partial overlap",
			Vector{"a": 1, "b": 2, "c": 3},
			Vector{"a": 1, "c": 3},
			(1*1 + 3*3) / (math.Sqrt(1*1+2*2+3*3) * math.Sqrt(1*1+3*3)),
		},
		{"empty left", Vector{}, Vector{"a": 1}, 0},
		{"both empty", Vector{}, Vector{}, 0},
		{"nil", nil, Vector{"a": 1}, 0},
		{"zero weights", Vector{"a": 0}, Vector{"a": 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t, got, CosineSimilarity(tt.b, tt.a), 1e-12, "not symmetric")
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestCosineSimilarityClampsOvershoot(t *testing.T) {
	v := Vector{"x": 0.1, "y": 0.7, "z": 1e-8, "w": 3.3333333333}
	assert.LessOrEqual(t, CosineSimilarity(v, v), 1.0)
}

func TestFromCounts(t *testing.T) {
	v := FromCounts(extract.TermFreqs{"a": 2, "b": 1})
	assert.Equal(t, Vector{"a": 2, "b": 1}, v)
	assert.InDelta(t, math.Sqrt(5), v.Magnitude(), 1e-12)
	assert.Equal(t, 0.0, v.Weight("missing"))
}

func TestCosineSimilarityIsReproducible(t *testing.T) {
	a, b := Vector{}, Vector{}
	for i := range 200 {
		term := fmt.Sprintf("term%03d", i)
		a[term] = 1 / float64(i+3)
		if i%3 != 0 {
			b[term] = math.Log(float64(i + 2))
		}
	}

	want := CosineSimilarity(a, b)
	wantMag := a.Magnitude()
	for range 50 {
		assert.Equal(t, want, CosineSimilarity(a, b))
		assert.Equal(t, want, CosineSimilarity(b, a))
		assert.Equal(t, wantMag, a.Magnitude())
	}
}

func TestTermsAreSorted(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Vector{"c": 1, "a": 2, "b": 0}.Terms())
	assert.Empty(t, Vector(nil).Terms())
}
