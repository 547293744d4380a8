package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCorpus(t *testing.T) {
	docs := []Document{{"a.txt", "alpha"}, {"b.txt", ""}}
	corpus, err := NewCorpus(docs)
	require.NoError(t, err)
	assert.Equal(t, 2, corpus.Len())
	assert.Equal(t, docs[1], corpus.At(1))
	assert.Equal(t, []string{"alpha", ""}, corpus.Texts())

	// the corpus owns its documents.
	docs[0].Text = "changed"
	assert.Equal(t, "alpha", corpus.At(0).Text)
	got := corpus.Documents()
	got[0].Text = "changed"
	assert.Equal(t, "alpha", corpus.At(0).Text)
}

func TestNewCorpusEmpty(t *testing.T) {
	corpus, err := NewCorpus(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, corpus.Len())
}

func TestNewCorpusReportsEveryProblem(t *testing.T) {
	_, err := NewCorpus([]Document{
		{"", "no id"},
		{"a", "one"},
		{"a", "two"},
		{"  ", "blank id"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "document 0: empty id")
	assert.Contains(t, err.Error(), `document 2: id "a" already used by document 1`)
	assert.Contains(t, err.Error(), "document 3: empty id")
}

func TestFromMapOrdersByID(t *testing.T) {
	docs := FromMap(map[string]string{"c": "3", "a": "1", "b": "2"})
	assert.Equal(t, []Document{{"a", "1"}, {"b", "2"}, {"c", "3"}}, docs)
	assert.Empty(t, FromMap(nil))
}
