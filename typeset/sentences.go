package typeset

import (
	"strings"
	"sync"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

var englishTokenizer = sync.OnceValues(func() (*sentences.DefaultSentenceTokenizer, error) {
	return english.NewSentenceTokenizer(nil)
})

// SplitSentences splits text into sentences. Trailing spaces stay with the
// sentence they follow so joining parts reproduces the text.
func SplitSentences(in string) []string {
	tok, err := englishTokenizer()
	if err != nil || tok == nil {
		return []string{in}
	}
	var parts []string
	for _, s := range tok.Tokenize(in) {
		parts = append(parts, s.Text)
	}
	// tokenizer attaches whitespace to the beginning of the next sentence
	for i := range len(parts) - 1 {
		for idx, sym := range parts[i+1] {
			if !unicode.IsSpace(sym) {
				parts[i] += parts[i+1][:idx]
				parts[i+1] = parts[i+1][idx:]
				break
			}
		}
	}
	if len(parts) == 0 {
		return []string{in}
	}
	return parts
}

// TrimSentences drops trailing sentences of text until fits reports true.
// The first sentence is always kept, even when it still does not fit.
func TrimSentences(text string, fits func(string) bool) string {
	parts := SplitSentences(text)
	for n := len(parts); n > 1; n-- {
		candidate := strings.TrimSpace(strings.Join(parts[:n], ""))
		if fits(candidate) {
			return candidate
		}
	}
	return strings.TrimSpace(parts[0])
}
