package compare

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jdpolicano/go-similarity/internal/document"
)

// Metric names one similarity measure.
type Metric string

const (
	// MetricCosine is the cosine similarity of raw word counts.
	MetricCosine Metric = "cosine"
	// MetricLevenshtein is the character edit distance of the raw texts. Unlike the other
	// metrics it is a distance, not a similarity.
	MetricLevenshtein Metric = "levenshtein"
	// MetricNormalizedLevenshtein is 1 - distance / longer text length.
	MetricNormalizedLevenshtein Metric = "normalized_levenshtein"
	// MetricJaccard is the overlap of the distinct word sets.
	MetricJaccard Metric = "jaccard"
	// MetricTfIdf is the cosine similarity of corpus weighted TF-IDF vectors.
	MetricTfIdf Metric = "tfidf"
)

// AllMetrics lists every metric in a stable order.
func AllMetrics() []Metric {
	return []Metric{
		MetricCosine,
		MetricLevenshtein,
		MetricNormalizedLevenshtein,
		MetricJaccard,
		MetricTfIdf,
	}
}

// ParseMetric resolves a metric name, ignoring case and surrounding space.
func ParseMetric(s string) (Metric, error) {
	name := Metric(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range AllMetrics() {
		if m == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: unknown metric %q", document.ErrInvalidArgument, s)
}

func (m Metric) usesTokens() bool {
	return m == MetricCosine || m == MetricJaccard
}

func validateMetrics(metrics []Metric) error {
	if len(metrics) == 0 {
		return fmt.Errorf("%w: no metrics requested", document.ErrInvalidArgument)
	}
	seen := make(map[Metric]struct{}, len(metrics))
	for _, m := range metrics {
		if !slices.Contains(AllMetrics(), m) {
			return fmt.Errorf("%w: unknown metric %q", document.ErrInvalidArgument, m)
		}
		if _, dup := seen[m]; dup {
			return fmt.Errorf("%w: metric %q requested twice", document.ErrInvalidArgument, m)
		}
		seen[m] = struct{}{}
	}
	return nil
}
