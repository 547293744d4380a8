// Package metric implements the similarity measures that work directly on text:
// edit distance over raw characters and set overlap over tokens.
package metric

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// LevenshteinDistance is the minimum number of single character insertions, deletions and
// substitutions that turn a into b. Characters are runes; the comparison is case and
// whitespace sensitive.
func LevenshteinDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// NormalizedLevenshtein maps the edit distance onto [0, 1] as 1 - distance / max(len(a), len(b)).
// Two empty strings are identical and score 1.
func NormalizedLevenshtein(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(LevenshteinDistance(a, b))/float64(longest)
}
