package extract

import (
	"bufio"
	_ "embed"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed stop_words.txt
var stopWordsData string
var stopWords = initStopWords()

func initStopWords() map[string]struct{} {
	lines := strings.Split(stopWordsData, "\n")
	stopWords := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		word := strings.ToLower(strings.TrimSpace(line))
		if word != "" {
			stopWords[word] = struct{}{}
		}
	}
	return stopWords
}

// IsStopWord reports whether w is in the embedded stop word set. The match is case-insensitive.
func IsStopWord(w string) bool {
	_, ok := stopWords[lower(w)]
	return ok
}

// StopWords returns the embedded stop word set in sorted order.
func StopWords() []string {
	words := make([]string, 0, len(stopWords))
	for w := range stopWords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// isWordRune matches the characters a word is made of: letters, numbers and the underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// lower folds text to lowercase. A Caser holds state, so one is made per call.
func lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

// ScanWordTokens is a bufio.SplitFunc that yields maximal runs of word runes.
// Any other rune, including invalid UTF-8, separates words.
func ScanWordTokens(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	// skip anything that isn't a word rune to begin.
	for start < len(data) {
		if !atEOF && !utf8.FullRune(data[start:]) {
			return start, nil, nil
		}
		r, size := utf8.DecodeRune(data[start:])
		if isWordRune(r) {
			break
		}
		start += size
	}

	end := start
	for end < len(data) {
		if !atEOF && !utf8.FullRune(data[end:]) {
			return start, nil, nil
		}
		r, size := utf8.DecodeRune(data[end:])
		// we've reached the end of our sequence
		if !isWordRune(r) {
			return end + size, data[start:end], nil
		}
		end += size
	}

	// the word runs to the end of the input
	if atEOF && start < len(data) {
		return len(data), data[start:], nil
	}

	// ask for more data, keeping the partial word.
	return start, nil, nil
}

// Words lowercases text and splits it into words without any stop word filtering.
func Words(text string) []string {
	lowered := lower(text)
	scanner := bufio.NewScanner(strings.NewReader(lowered))
	scanner.Buffer(make([]byte, 0, min(len(lowered)+1, bufio.MaxScanTokenSize)), len(lowered)+1)
	scanner.Split(ScanWordTokens)

	words := make([]string, 0, 64)
	for scanner.Scan() {
		word := scanner.Text()
		if strings.TrimSpace(word) == "" {
			continue
		}
		words = append(words, word)
	}
	// a strings.Reader never fails and the buffer can hold the whole input,
	// so the scanner cannot stop early with an error.
	return words
}
