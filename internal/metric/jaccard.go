package metric

import "github.com/jdpolicano/go-similarity/internal/extract"

// JaccardSimilarity tokenizes both texts and compares their distinct words.
func JaccardSimilarity(a, b string, opts extract.Options) float64 {
	return JaccardSets(extract.Tokenize(a, opts), extract.Tokenize(b, opts))
}

// JaccardSets returns |A ∩ B| / |A ∪ B| over the keys of two term frequency maps.
// Counts are ignored. Two empty sets have nothing to tell them apart and score 1.
func JaccardSets(a, b extract.TermFreqs) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	intersection := 0
	for term := range a {
		if _, exists := b[term]; exists {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
