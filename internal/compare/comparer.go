// Package compare scores every pair of documents in a corpus with the requested metrics.
package compare

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jdpolicano/go-similarity/internal/document"
	"github.com/jdpolicano/go-similarity/internal/extract"
	"github.com/jdpolicano/go-similarity/internal/logging"
	"github.com/jdpolicano/go-similarity/internal/metric"
	"github.com/jdpolicano/go-similarity/internal/tfidf"
	"github.com/jdpolicano/go-similarity/internal/vector"
)

// Pair is an unordered pair of distinct documents, named in corpus order.
type Pair struct {
	First  string
	Second string
}

// Key renders the pair as a single string.
func (p Pair) Key() string {
	return p.First + " vs " + p.Second
}

// Result is the score of one metric for one pair.
type Result struct {
	Pair   Pair
	Metric Metric
	// Score is a similarity in [0, 1], except for MetricLevenshtein where it holds the
	// integer edit distance.
	Score float64
}

// Settings configure a Comparer.
type Settings struct {
	// TfIdf also carries the tokenizer options used by the cosine and jaccard metrics.
	TfIdf tfidf.Settings
	// Workers bounds how many pairs are scored at once. 0 and 1 both score sequentially.
	Workers int
}

type Comparer struct {
	settings Settings
	logger   *slog.Logger
}

func NewComparer(settings Settings, logger *slog.Logger) *Comparer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Comparer{
		settings: settings,
		logger:   logger,
	}
}

// NumPairs is the number of unordered pairs of distinct documents among n.
func NumPairs(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// prepared is the per document data shared read-only by every pair comparison.
type prepared struct {
	docs       []document.Document
	counts     []vector.Vector
	terms      []extract.TermFreqs
	embeddings []tfidf.Vector
}

// Run scores each pair (i, j) with i < j in corpus order, emitting one result per metric in
// the order the metrics were given. Results are ordered the same way whatever the number
// of workers.
func (c *Comparer) Run(ctx context.Context, corpus *document.Corpus, metrics []Metric) ([]Result, error) {
	if corpus == nil {
		return nil, fmt.Errorf("%w: nil corpus", document.ErrInvalidArgument)
	}
	if err := validateMetrics(metrics); err != nil {
		return nil, err
	}
	if c.settings.Workers < 0 {
		return nil, fmt.Errorf("%w: workers must not be negative, got %d", document.ErrInvalidArgument, c.settings.Workers)
	}

	ctx = logging.WithRunID(ctx, uuid.NewString())
	logger := logging.WithContext(c.logger, ctx)
	start := time.Now()
	numPairs := NumPairs(corpus.Len())
	logger.Info("Starting comparison run",
		"documents", corpus.Len(),
		"pairs", numPairs,
		"metrics", metrics)

	p := prepared{docs: corpus.Documents()}
	if needs(metrics, Metric.usesTokens) {
		phaseStart := time.Now()
		logger.Debug("Phase 1: Tokenizing documents...")
		p.terms = make([]extract.TermFreqs, len(p.docs))
		p.counts = make([]vector.Vector, len(p.docs))
		for i, doc := range p.docs {
			p.terms[i] = extract.Tokenize(doc.Text, c.settings.TfIdf.Tokenizer)
			p.counts[i] = vector.FromCounts(p.terms[i])
		}
		logger.Debug("Tokenized documents", "duration", time.Since(phaseStart))
	}

	if needs(metrics, func(m Metric) bool { return m == MetricTfIdf }) {
		phaseStart := time.Now()
		logger.Debug("Phase 2: Building TF-IDF embeddings...",
			"document_frequency", c.settings.TfIdf.DocumentFrequency.String())
		p.embeddings = tfidf.ComputeCorpusEmbeddings(corpus.Texts(), c.settings.TfIdf)
		logger.Debug("Built TF-IDF embeddings", "duration", time.Since(phaseStart))
	}

	logger.Debug("Phase 3: Scoring document pairs...", "workers", max(c.settings.Workers, 1))
	results := make([]Result, numPairs*len(metrics))
	if err := c.scorePairs(ctx, &p, metrics, results); err != nil {
		logger.Error("Comparison run failed", "error", err)
		return nil, err
	}

	logger.Info("Comparison run completed",
		"results", len(results),
		"duration", time.Since(start))
	return results, nil
}

func needs(metrics []Metric, pred func(Metric) bool) bool {
	for _, m := range metrics {
		if pred(m) {
			return true
		}
	}
	return false
}

// scorePairs fills results; the k-th pair owns results[k*len(metrics) : (k+1)*len(metrics)].
func (c *Comparer) scorePairs(ctx context.Context, p *prepared, metrics []Metric, results []Result) error {
	n := len(p.docs)
	if c.settings.Workers <= 1 {
		k := 0
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			for j := i + 1; j < n; j++ {
				if err := p.scorePair(i, j, metrics, results[k*len(metrics):]); err != nil {
					return err
				}
				k++
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.settings.Workers)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if gctx.Err() != nil {
				break
			}
			out := results[k*len(metrics):]
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return p.scorePair(i, j, metrics, out)
			})
			k++
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (p *prepared) scorePair(i, j int, metrics []Metric, out []Result) error {
	pair := Pair{First: p.docs[i].ID, Second: p.docs[j].ID}
	for idx, m := range metrics {
		score, err := p.score(m, i, j)
		if err != nil {
			return fmt.Errorf("score %s for %s: %w", m, pair.Key(), err)
		}
		out[idx] = Result{Pair: pair, Metric: m, Score: score}
	}
	return nil
}

func (p *prepared) score(m Metric, i, j int) (float64, error) {
	switch m {
	case MetricCosine:
		return vector.CosineSimilarity(p.counts[i], p.counts[j]), nil
	case MetricLevenshtein:
		return float64(metric.LevenshteinDistance(p.docs[i].Text, p.docs[j].Text)), nil
	case MetricNormalizedLevenshtein:
		return metric.NormalizedLevenshtein(p.docs[i].Text, p.docs[j].Text), nil
	case MetricJaccard:
		return metric.JaccardSets(p.terms[i], p.terms[j]), nil
	case MetricTfIdf:
		return tfidf.Cosine(p.embeddings[i], p.embeddings[j])
	default:
		return 0, fmt.Errorf("%w: unknown metric %q", document.ErrInvalidArgument, m)
	}
}
