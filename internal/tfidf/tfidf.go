// Package tfidf weights document terms against a fixed corpus.
//
// Weights follow TF * IDF where
//
//	TF  = count(term, doc) / total terms in doc
//	IDF = ln(1 + N / (1 + df))
//
// N is the corpus size and df the number of corpus documents containing the term. The
// smoothing keeps IDF positive even for a term present in every document.
package tfidf

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/jdpolicano/go-similarity/internal/extract"
	"github.com/jdpolicano/go-similarity/internal/vector"
)

// ErrCorpusMismatch is returned when comparing vectors weighted against different corpora.
var ErrCorpusMismatch = errors.New("tf-idf vectors belong to different corpora")

var corpusNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/jdpolicano/go-similarity/corpus"))

// DocumentFrequency selects what counts as a corpus document containing a term.
type DocumentFrequency int

const (
	// RawText matches the term as a whole word, ignoring case, anywhere in the raw
	// document text. Stop words filtered out of a document's own tokens still count.
	RawText DocumentFrequency = iota
	// Tokens only counts documents whose filtered tokens contain the term, so document
	// frequency agrees with the tokenizer settings used for term frequency.
	Tokens
)

func (m DocumentFrequency) String() string {
	switch m {
	case RawText:
		return "raw_text"
	case Tokens:
		return "tokens"
	default:
		return fmt.Sprintf("DocumentFrequency(%d)", int(m))
	}
}

// ParseDocumentFrequency maps "raw_text" or "tokens" to its mode.
func ParseDocumentFrequency(s string) (DocumentFrequency, error) {
	switch s {
	case "raw_text":
		return RawText, nil
	case "tokens":
		return Tokens, nil
	default:
		return RawText, fmt.Errorf("unknown document frequency mode %q", s)
	}
}

// Settings are the knobs that change the weights a corpus produces.
type Settings struct {
	Tokenizer         extract.Options
	DocumentFrequency DocumentFrequency
}

// Index holds the document frequencies of a corpus. It is immutable once built and safe
// for concurrent use.
type Index struct {
	id       uuid.UUID
	settings Settings
	numDocs  int
	df       map[string]int
}

// NewIndex scans every corpus document once and records, per term, how many documents
// contain it.
func NewIndex(corpus []string, settings Settings) *Index {
	words := make([][]string, len(corpus))
	for i, text := range corpus {
		words[i] = extract.Words(text)
	}
	return newIndex(corpus, words, settings)
}

func newIndex(corpus []string, words [][]string, settings Settings) *Index {
	// a whole word, case-insensitive match of a term in the raw text is the same as the
	// term appearing among the document's unfiltered lowercased words.
	opts := extract.Options{IncludeStopWords: true}
	if settings.DocumentFrequency == Tokens {
		opts = settings.Tokenizer
	}

	df := make(map[string]int, 1024)
	for _, docWords := range words {
		for term := range extract.Count(docWords, opts) {
			df[term]++
		}
	}

	return &Index{
		id:       corpusID(corpus, settings),
		settings: settings,
		numDocs:  len(corpus),
		df:       df,
	}
}

// corpusID derives a stable identity from the corpus content and settings, so indexes
// built twice over the same corpus produce comparable vectors.
func corpusID(corpus []string, settings Settings) uuid.UUID {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(settings.DocumentFrequency))
	h.Write(buf[:])
	if settings.Tokenizer.IncludeStopWords {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	for _, text := range corpus {
		binary.BigEndian.PutUint64(buf[:], uint64(len(text)))
		h.Write(buf[:])
		h.Write([]byte(text))
	}
	return uuid.NewSHA1(corpusNamespace, h.Sum(nil))
}

// ID identifies the corpus and settings the index was built from.
func (ix *Index) ID() uuid.UUID {
	return ix.id
}

// Len is the number of documents in the corpus.
func (ix *Index) Len() int {
	return ix.numDocs
}

// Settings returns the settings the index was built with.
func (ix *Index) Settings() Settings {
	return ix.settings
}

// DocumentFrequency returns the number of corpus documents containing term. Terms are
// matched in their lowercased form.
func (ix *Index) DocumentFrequency(term string) int {
	if cnt, exists := ix.df[term]; exists {
		return cnt
	}
	return 0
}

// IDF returns ln(1 + N / (1 + df)).
func (ix *Index) IDF(term string) float64 {
	df := float64(ix.DocumentFrequency(term))
	return math.Log(1 + float64(ix.numDocs)/(1+df))
}

// Vectorize weights a document's term frequencies against the corpus. A document with no
// terms yields an empty vector.
func (ix *Index) Vectorize(tf extract.TermFreqs) Vector {
	weights := make(vector.Vector, len(tf))
	total := tf.Total()
	if total == 0 {
		return Vector{Weights: weights, Corpus: ix.id}
	}

	numTerms := float64(total)
	for term, cnt := range tf {
		weights[term] = float64(cnt) / numTerms * ix.IDF(term)
	}
	return Vector{Weights: weights, Corpus: ix.id}
}

// Vector is a TF-IDF weighted document, tagged with the corpus it was weighted against.
type Vector struct {
	Weights vector.Vector
	Corpus  uuid.UUID
}

// Cosine compares two vectors from the same corpus. Vectors weighted against different
// corpora are not comparable and yield ErrCorpusMismatch.
func Cosine(a, b Vector) (float64, error) {
	if a.Corpus != b.Corpus {
		return 0, fmt.Errorf("%w: %s != %s", ErrCorpusMismatch, a.Corpus, b.Corpus)
	}
	return vector.CosineSimilarity(a.Weights, b.Weights), nil
}

// ComputeTfIdf weights a single document's term frequencies against corpus. The document
// does not have to be part of the corpus.
func ComputeTfIdf(tf extract.TermFreqs, corpus []string, settings Settings) Vector {
	return NewIndex(corpus, settings).Vectorize(tf)
}

// ComputeCorpusEmbeddings tokenizes and weights every corpus document once. The k-th
// vector belongs to the k-th document. Use this instead of ComputeTfIdf when comparing
// many pairs: the corpus scan happens once rather than once per comparison.
func ComputeCorpusEmbeddings(corpus []string, settings Settings) []Vector {
	words := make([][]string, len(corpus))
	for i, text := range corpus {
		words[i] = extract.Words(text)
	}
	ix := newIndex(corpus, words, settings)

	embeddings := make([]Vector, len(corpus))
	for i, docWords := range words {
		embeddings[i] = ix.Vectorize(extract.Count(docWords, settings.Tokenizer))
	}
	return embeddings
}

// EmbeddingSimilarity is the TF-IDF cosine similarity of a and b against corpus. Everything
// is recomputed on each call; batch comparisons should use ComputeCorpusEmbeddings.
func EmbeddingSimilarity(a, b string, corpus []string, settings Settings) float64 {
	ix := NewIndex(corpus, settings)
	va := ix.Vectorize(extract.Tokenize(a, settings.Tokenizer))
	vb := ix.Vectorize(extract.Tokenize(b, settings.Tokenizer))
	return vector.CosineSimilarity(va.Weights, vb.Weights)
}
