package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdpolicano/go-similarity/internal/extract"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
		{"Case", "case", 1},
		{"a b", "a  b", 1},
		{"héllo", "hello", 1},
		{"日本語", "日本", 1},
		{"Saturday", "Sunday", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, LevenshteinDistance(tt.a, tt.b))
			assert.Equal(t, tt.want, LevenshteinDistance(tt.b, tt.a), "not symmetric")
		})
	}
}

func TestNormalizedLevenshtein(t *testing.T) {
	assert.Equal(t, 1.0, NormalizedLevenshtein("", ""))
	assert.Equal(t, 1.0, NormalizedLevenshtein("abc", "abc"))
	assert.Equal(t, 0.0, NormalizedLevenshtein("", "abc"))
	assert.Equal(t, 0.0, NormalizedLevenshtein("abc", "xyz"))
	assert.InDelta(t, 1-3.0/7.0, NormalizedLevenshtein("kitten", "sitting"), 1e-12)
	assert.InDelta(t, NormalizedLevenshtein("sitting", "kitten"), NormalizedLevenshtein("kitten", "sitting"), 1e-12)
}

func TestJaccardSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"stop words removed", "the cat sat", "the dog sat", 1.0 / 3.0},
		{"identical", "red green blue", "red green blue", 1},
		{"counts ignored", "red red red", "red", 1},
		{"disjoint", "red green", "blue yellow", 0},
		{"both empty", "", "", 1},
		{"both only stop words", "the and", "of it", 1},
		{"one empty", "", "red", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JaccardSimilarity(tt.a, tt.b, extract.Options{})
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.InDelta(t, got, JaccardSimilarity(tt.b, tt.a, extract.Options{}), 1e-12, "not symmetric")
		})
	}
}

func TestJaccardSimilarityWithStopWords(t *testing.T) {
	// {the, cat, sat} vs {the, dog, sat}: 2 shared out of 4.
	got := JaccardSimilarity("the cat sat", "the dog sat", extract.Options{IncludeStopWords: true})
	assert.InDelta(t, 0.5, got, 1e-12)
}
