// Package similarity scores how alike a set of plain-text documents are, pair by pair,
// using word-count cosine, Levenshtein edit distance, Jaccard word-set overlap and
// corpus-weighted TF-IDF cosine similarity.
//
// Documents arrive as already extracted text. The package does no file handling and no
// output formatting.
package similarity

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jdpolicano/go-similarity/internal/compare"
	"github.com/jdpolicano/go-similarity/internal/config"
	"github.com/jdpolicano/go-similarity/internal/document"
	"github.com/jdpolicano/go-similarity/internal/extract"
	"github.com/jdpolicano/go-similarity/internal/logging"
	"github.com/jdpolicano/go-similarity/internal/metric"
	"github.com/jdpolicano/go-similarity/internal/tfidf"
	"github.com/jdpolicano/go-similarity/internal/vector"
)

// ErrInvalidArgument marks malformed input such as an empty or repeated document id or an
// unknown metric.
var ErrInvalidArgument = document.ErrInvalidArgument

// ErrCorpusMismatch is returned when TF-IDF embeddings from different corpora are compared.
var ErrCorpusMismatch = tfidf.ErrCorpusMismatch

type (
	// Document is an id and its extracted text.
	Document = document.Document
	// Metric names a similarity measure.
	Metric = compare.Metric
	// Pair names two distinct documents in corpus order.
	Pair = compare.Pair
	// Result is one metric's score for one pair.
	Result = compare.Result
	// TermFreqs maps a normalized word to its count in one document.
	TermFreqs = extract.TermFreqs
	// Vector is a sparse term to weight mapping.
	Vector = vector.Vector
	// Embedding is a TF-IDF vector tied to the corpus it was weighted against.
	Embedding = tfidf.Vector
	// DocumentFrequency selects how corpus document frequency is counted.
	DocumentFrequency = tfidf.DocumentFrequency
)

const (
	MetricCosine                = compare.MetricCosine
	MetricLevenshtein           = compare.MetricLevenshtein
	MetricNormalizedLevenshtein = compare.MetricNormalizedLevenshtein
	MetricJaccard               = compare.MetricJaccard
	MetricTfIdf                 = compare.MetricTfIdf

	// DocumentFrequencyRawText counts whole-word, case-insensitive matches in the raw
	// corpus text, stop words included. It is the default.
	DocumentFrequencyRawText = tfidf.RawText
	// DocumentFrequencyTokens counts matches among each document's filtered tokens.
	DocumentFrequencyTokens = tfidf.Tokens
)

// Options configure Compare.
type Options struct {
	// Metrics to compute, in output order. Required.
	Metrics []Metric
	// IncludeStopWords keeps stop words for the cosine, jaccard and tfidf metrics.
	IncludeStopWords bool
	// DocumentFrequency picks how the tfidf metric counts document frequency.
	DocumentFrequency DocumentFrequency
	// Workers bounds the number of pairs scored concurrently. 0 or 1 is sequential.
	Workers int
	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions selects every metric with stop word filtering and raw text document
// frequency.
func DefaultOptions() Options {
	return Options{
		Metrics:           compare.AllMetrics(),
		DocumentFrequency: tfidf.RawText,
		Workers:           1,
	}
}

// LoadOptions reads options from the TOML file at configPath, the .env file at envPath and
// the SIMILARITY_* environment variables. Missing files are skipped.
func LoadOptions(configPath, envPath string) (Options, error) {
	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	opts := Options{
		IncludeStopWords: cfg.IncludeStopWords,
		Workers:          cfg.Workers,
		Logger:           logging.Discard(),
	}
	for _, name := range cfg.Metrics {
		m, err := compare.ParseMetric(name)
		if err != nil {
			return Options{}, err
		}
		opts.Metrics = append(opts.Metrics, m)
	}
	opts.DocumentFrequency, err = tfidf.ParseDocumentFrequency(cfg.DocumentFrequency)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if cfg.LogLevel != "" {
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return Options{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		opts.Logger = logging.NewLogger(os.Stderr, level)
	}
	return opts, nil
}

func (o Options) tokenizer() extract.Options {
	return extract.Options{IncludeStopWords: o.IncludeStopWords}
}

func (o Options) tfidfSettings() tfidf.Settings {
	return tfidf.Settings{Tokenizer: o.tokenizer(), DocumentFrequency: o.DocumentFrequency}
}

// Compare scores every unordered pair of distinct documents with each requested metric.
// Pairs follow input order: (docs[i], docs[j]) for i < j, each once.
func Compare(ctx context.Context, docs []Document, opts Options) ([]Result, error) {
	corpus, err := document.NewCorpus(docs)
	if err != nil {
		return nil, err
	}
	comparer := compare.NewComparer(compare.Settings{
		TfIdf:   opts.tfidfSettings(),
		Workers: opts.Workers,
	}, opts.Logger)
	return comparer.Run(ctx, corpus, opts.Metrics)
}

// DocumentsFromMap turns an id to text mapping into documents ordered by id.
func DocumentsFromMap(texts map[string]string) []Document {
	return document.FromMap(texts)
}

// AllMetrics lists every supported metric.
func AllMetrics() []Metric {
	return compare.AllMetrics()
}

// ParseMetric resolves a metric by name.
func ParseMetric(name string) (Metric, error) {
	return compare.ParseMetric(name)
}

// Tokenize lowercases text, splits it into words and counts them, dropping stop words
// unless includeStopWords is set.
func Tokenize(text string, includeStopWords bool) TermFreqs {
	return extract.Tokenize(text, extract.Options{IncludeStopWords: includeStopWords})
}

// CosineSimilarity compares two sparse vectors. A zero vector scores 0.
func CosineSimilarity(a, b Vector) float64 {
	return vector.CosineSimilarity(a, b)
}

// WordFrequencySimilarity is the cosine similarity of the stop word filtered word counts.
func WordFrequencySimilarity(a, b string) float64 {
	return vector.CosineSimilarity(
		vector.FromCounts(extract.Tokenize(a, extract.Options{})),
		vector.FromCounts(extract.Tokenize(b, extract.Options{})),
	)
}

// LevenshteinDistance is the character edit distance between the raw texts.
func LevenshteinDistance(a, b string) int {
	return metric.LevenshteinDistance(a, b)
}

// NormalizedLevenshtein is 1 - distance / max(len(a), len(b)); 1 for two empty strings.
func NormalizedLevenshtein(a, b string) float64 {
	return metric.NormalizedLevenshtein(a, b)
}

// JaccardSimilarity is the overlap of the stop word filtered word sets; 1 when both are empty.
func JaccardSimilarity(a, b string) float64 {
	return metric.JaccardSimilarity(a, b, extract.Options{})
}

// ComputeTfIdf weights one document's term frequencies against corpus.
func ComputeTfIdf(tf TermFreqs, corpus []string, opts Options) Embedding {
	return tfidf.ComputeTfIdf(tf, corpus, opts.tfidfSettings())
}

// ComputeCorpusEmbeddings weights every corpus document once; the k-th embedding belongs to
// the k-th text.
func ComputeCorpusEmbeddings(corpus []string, opts Options) []Embedding {
	return tfidf.ComputeCorpusEmbeddings(corpus, opts.tfidfSettings())
}

// EmbeddingCosine compares two embeddings from the same corpus.
func EmbeddingCosine(a, b Embedding) (float64, error) {
	return tfidf.Cosine(a, b)
}

// EmbeddingSimilarity recomputes the TF-IDF vectors of a and b against corpus and compares
// them. Prefer ComputeCorpusEmbeddings when comparing many pairs.
func EmbeddingSimilarity(a, b string, corpus []string, opts Options) float64 {
	return tfidf.EmbeddingSimilarity(a, b, corpus, opts.tfidfSettings())
}
