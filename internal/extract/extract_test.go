package extract

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts Options
		want TermFreqs
	}{
		{
			name: "stop words removed",
			text: "The cat sat",
			want: TermFreqs{"cat": 1, "sat": 1},
		},
		{
			name: "stop words kept",
			text: "The cat sat",
			opts: Options{IncludeStopWords: true},
			want: TermFreqs{"the": 1, "cat": 1, "sat": 1},
		},
		{
			name: "punctuation separates and counts accumulate",
			text: "  Hello, hello... HELLO!  world_wide  ",
			want: TermFreqs{"hello": 3, "world_wide": 1},
		},
		{
			name: "contractions split on the apostrophe",
			text: "Don't panic",
			want: TermFreqs{"panic": 1},
		},
		{
			name: "unicode letters and digits",
			text: "Café 42 naïve",
			want: TermFreqs{"café": 1, "42": 1, "naïve": 1},
		},
		{
			name: "empty text",
			text: "",
			want: TermFreqs{},
		},
		{
			name: "only separators",
			text: " \t\n--!!",
			want: TermFreqs{},
		},
		{
			name: "only stop words",
			text: "The and of it was",
			want: TermFreqs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordsHasNoEmptyTokens(t *testing.T) {
	words := Words("...leading and trailing...")
	assert.Equal(t, []string{"leading", "and", "trailing"}, words)
	for _, w := range words {
		assert.NotEmpty(t, strings.TrimSpace(w))
	}
}

func TestWordsLongWord(t *testing.T) {
	long := strings.Repeat("a", 3*bufio.MaxScanTokenSize)
	words := Words("x " + long + " y")
	require.Len(t, words, 3)
	assert.Equal(t, long, words[1])
}

func TestScanWordTokensAcrossReads(t *testing.T) {
	// a one byte reader forces the split func to see partial words and partial runes.
	r := &oneByteReader{data: []byte("héllo wörld_1, ok")}
	scanner := bufio.NewScanner(r)
	scanner.Split(ScanWordTokens)

	var got []string
	for scanner.Scan() {
		got = append(got, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, []string{"héllo", "wörld_1", "ok"}, got)
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("THE"))
	assert.True(t, IsStopWord("don't"))
	assert.True(t, IsStopWord("aren't"))
	assert.False(t, IsStopWord("cat"))
	assert.Len(t, StopWords(), 179)
}

func TestTermFreqsTotal(t *testing.T) {
	tf := Tokenize("apple banana apple cherry apple", Options{})
	assert.Equal(t, 5, tf.Total())
	assert.Len(t, tf.Terms(), 3)
	assert.Equal(t, 0, TermFreqs{}.Total())
}

type oneByteReader struct {
	data []byte
	pos  int
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.data[r.pos]
	r.pos++
	return 1, nil
}
