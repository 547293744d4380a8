// Package document defines the documents being compared and the fixed corpus they form.
package document

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidArgument is returned for malformed input, such as a document without an id.
var ErrInvalidArgument = errors.New("invalid argument")

// Document is one piece of already extracted text and the id it is known by.
type Document struct {
	ID   string
	Text string
}

// Corpus is the ordered, immutable set of documents compared in one run.
type Corpus struct {
	docs []Document
}

// NewCorpus validates docs and copies them into a corpus. Every problem found is
// reported in the returned error, which matches ErrInvalidArgument.
func NewCorpus(docs []Document) (*Corpus, error) {
	var merr *multierror.Error
	seen := make(map[string]int, len(docs))
	for i, doc := range docs {
		if strings.TrimSpace(doc.ID) == "" {
			merr = multierror.Append(merr, fmt.Errorf("document %d: empty id", i))
			continue
		}
		if first, exists := seen[doc.ID]; exists {
			merr = multierror.Append(merr, fmt.Errorf("document %d: id %q already used by document %d", i, doc.ID, first))
			continue
		}
		seen[doc.ID] = i
	}

	if err := merr.ErrorOrNil(); err != nil {
		merr.ErrorFormat = listFormat
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	owned := make([]Document, len(docs))
	copy(owned, docs)
	return &Corpus{owned}, nil
}

// FromMap turns an id to text mapping into documents ordered by id.
func FromMap(texts map[string]string) []Document {
	docs := make([]Document, 0, len(texts))
	for _, id := range slices.Sorted(maps.Keys(texts)) {
		docs = append(docs, Document{ID: id, Text: texts[id]})
	}
	return docs
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// At returns the i-th document.
func (c *Corpus) At(i int) Document {
	return c.docs[i]
}

// Documents returns a copy of the documents in corpus order.
func (c *Corpus) Documents() []Document {
	docs := make([]Document, len(c.docs))
	copy(docs, c.docs)
	return docs
}

// Texts returns the raw texts in corpus order.
func (c *Corpus) Texts() []string {
	texts := make([]string, len(c.docs))
	for i, doc := range c.docs {
		texts[i] = doc.Text
	}
	return texts
}

// listFormat renders aggregated errors on one line.
func listFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
