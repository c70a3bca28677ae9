// Package typeset lays out and draws panel text: marked up narrative
// paragraphs, bulleted stat lines and poster titles. Text is wrapped greedily
// and font size is reduced step by step until the text fits its box.
package typeset

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sentinel characters forcing line breaks.
const (
	Bullet         = '•'
	ZeroWidthSpace = '\u200b'
)

// Run is a piece of text sharing highlight state.
type Run struct {
	Text      string
	Highlight bool
}

// Word is a whitespace free piece of text with highlight state of its run.
type Word struct {
	Text      string
	Highlight bool
}

// Bullet starts new line and is kept, zero width space is only a break.
var breaker = strings.NewReplacer(
	"\r\n", "\n",
	string(Bullet), "\n"+string(Bullet),
	string(ZeroWidthSpace), "\n",
)

// Tokenize splits text into alternating normal and highlighted runs on the
// paired delimiter. Text after an unpaired delimiter is highlighted till the
// end. Empty runs are dropped, empty delimiter disables highlighting.
func Tokenize(s, delim string) []Run {
	s = norm.NFC.String(s)
	if delim == "" {
		if s == "" {
			return nil
		}
		return []Run{{Text: s}}
	}
	var runs []Run
	for i, part := range strings.Split(s, delim) {
		if part == "" {
			continue
		}
		runs = append(runs, Run{Text: part, Highlight: i%2 == 1})
	}
	return runs
}

// Strip removes highlight delimiters from text.
func Strip(s, delim string) string {
	if delim == "" {
		return s
	}
	return strings.ReplaceAll(s, delim, "")
}

// Words splits runs on whitespace. Words never span runs, so text glued to a
// delimiter on both sides produces two words.
func Words(runs []Run) []Word {
	var words []Word
	for _, r := range runs {
		for f := range strings.FieldsSeq(r.Text) {
			words = append(words, Word{Text: f, Highlight: r.Highlight})
		}
	}
	return words
}

// TokenizeLines splits text into hard lines on sentinel characters and new
// lines. Blank lines are dropped.
func TokenizeLines(s string) []string {
	var lines []string
	for line := range strings.SplitSeq(breaker.Replace(norm.NFC.String(s)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Paragraphs tokenizes marked up text and splits it into hard broken
// paragraphs of words. Sentinels may appear inside highlighted runs.
func Paragraphs(s, delim string) [][]Word {
	var (
		paras [][]Word
		cur   []Word
	)
	for _, r := range Tokenize(s, delim) {
		for i, seg := range strings.Split(breaker.Replace(r.Text), "\n") {
			if i > 0 && len(cur) > 0 {
				paras = append(paras, cur)
				cur = nil
			}
			for f := range strings.FieldsSeq(seg) {
				cur = append(cur, Word{Text: f, Highlight: r.Highlight})
			}
		}
	}
	if len(cur) > 0 {
		paras = append(paras, cur)
	}
	return paras
}

// plainParagraphs produces paragraphs for stat text, one per hard line,
// without highlighting.
func plainParagraphs(s string) [][]Word {
	var paras [][]Word
	for _, line := range TokenizeLines(s) {
		var words []Word
		for f := range strings.FieldsSeq(line) {
			words = append(words, Word{Text: f})
		}
		paras = append(paras, words)
	}
	return paras
}
