package typeset

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"panelgen/common"
)

// Measure returns advance width of s drawn with face.
type Measure func(face font.Face, s string) fixed.Int26_6

// MeasureString measures text drawn in one go, kerning included.
func MeasureString(face font.Face, s string) fixed.Int26_6 {
	return font.MeasureString(face, s)
}

// MeasureGlyphs sums advances of individual glyphs, it matches drawing text
// glyph by glyph.
func MeasureGlyphs(face font.Face, s string) fixed.Int26_6 {
	var w fixed.Int26_6
	for _, r := range s {
		adv, _ := face.GlyphAdvance(r)
		w += adv
	}
	return w
}

// Line is a wrapped line of words. Width includes single space advance
// between words.
type Line struct {
	Words []Word
	Width fixed.Int26_6
}

// Text returns line words joined by spaces.
func (l Line) Text() string {
	var sb strings.Builder
	for i, w := range l.Words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.Text)
	}
	return sb.String()
}

// Wrap greedily breaks every paragraph into lines not wider than width.
// A word which does not fit on an empty line is put there anyway.
func Wrap(face font.Face, paras [][]Word, width int, measure Measure) []Line {
	limit := fixed.I(width)
	space := measure(face, " ")

	var lines []Line
	for _, para := range paras {
		var cur Line
		for _, w := range para {
			ww := measure(face, w.Text)
			switch {
			case len(cur.Words) == 0:
				cur = Line{Words: []Word{w}, Width: ww}
			case cur.Width+space+ww <= limit:
				cur.Words = append(cur.Words, w)
				cur.Width += space + ww
			default:
				lines = append(lines, cur)
				cur = Line{Words: []Word{w}, Width: ww}
			}
		}
		if len(cur.Words) > 0 {
			lines = append(lines, cur)
		}
	}
	return lines
}

// FaceFunc returns face for font size in pixels.
type FaceFunc func(size int) (font.Face, error)

// FitOptions controls font size search.
type FitOptions struct {
	Size    int
	MinSize int
	Step    int
	Spacing int
	Measure Measure
}

// Layout is the result of fitting text into a box.
type Layout struct {
	Size       int
	LineHeight int
	Lines      []Line
	// Truncated is set when text does not fit even at minimal size, lines
	// past the box bottom are not drawn.
	Truncated bool

	face    font.Face
	measure Measure
}

// Visible returns lines which fit into box height.
func (l *Layout) Visible(height int) []Line {
	if l == nil || l.LineHeight <= 0 {
		return nil
	}
	return l.Lines[:min(len(l.Lines), max(height/l.LineHeight, 0))]
}

// Height returns height of all wrapped lines.
func (l *Layout) Height() int {
	if l == nil {
		return 0
	}
	return len(l.Lines) * l.LineHeight
}

// Fit wraps paragraphs starting at the initial size and shrinks font by step
// until all lines fit box height or minimal size is reached. Chosen size is
// never above initial size and never below minimal one (minimal size larger
// than initial is ignored).
func Fit(faces FaceFunc, paras [][]Word, box image.Point, opts FitOptions) (*Layout, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("font size %d is not positive: %w", opts.Size, common.ErrInvalidInput)
	}
	minSize := min(max(opts.MinSize, 1), opts.Size)
	step := max(opts.Step, 1)
	measure := opts.Measure
	if measure == nil {
		measure = MeasureString
	}

	size := opts.Size
	for {
		face, err := faces(size)
		if err != nil {
			return nil, err
		}
		l := &Layout{
			Size:       size,
			LineHeight: size + opts.Spacing,
			Lines:      Wrap(face, paras, box.X, measure),
			face:       face,
			measure:    measure,
		}
		if l.Height() <= box.Y {
			return l, nil
		}
		if size <= minSize {
			l.Truncated = true
			return l, nil
		}
		size = max(size-step, minSize)
	}
}
