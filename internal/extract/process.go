// Package extract turns raw document text into normalized words and term frequencies.
package extract

// Options controls how text is tokenized.
type Options struct {
	// IncludeStopWords keeps stop words in the output. The zero value filters them.
	IncludeStopWords bool
}

// TermFreqs maps a normalized word to the number of times it occurs in one document.
// Absent words occur zero times.
type TermFreqs map[string]int

// Total returns the sum of all counts.
func (tf TermFreqs) Total() int {
	total := 0
	for _, cnt := range tf {
		total += cnt
	}
	return total
}

// Terms returns the distinct words as a set.
func (tf TermFreqs) Terms() map[string]struct{} {
	set := make(map[string]struct{}, len(tf))
	for term := range tf {
		set[term] = struct{}{}
	}
	return set
}

// Tokenize lowercases text, splits it on runs of non-word characters and counts each word.
// Stop words are dropped unless opts.IncludeStopWords is set. Empty or all stop word text
// yields an empty map.
func Tokenize(text string, opts Options) TermFreqs {
	return Count(Words(text), opts)
}

// Count builds term frequencies from words already produced by Words.
func Count(words []string, opts Options) TermFreqs {
	termFreqs := make(TermFreqs)
	for _, word := range words {
		if _, isStopWord := stopWords[word]; isStopWord && !opts.IncludeStopWords {
			continue
		}
		termFreqs[word] += 1
	}
	return termFreqs
}
