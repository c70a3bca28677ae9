package typeset

import (
	"image"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// newFaces returns face cache backed by builtin fonts.
func newFaces(t *testing.T) *Faces {
	t.Helper()
	fonts, err := NewFonts(nil, 0, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewFonts() error = %v", err)
	}
	faces := fonts.NewFaces()
	t.Cleanup(func() { _ = faces.Close() })
	return faces
}

func regular(faces *Faces) FaceFunc {
	return func(size int) (font.Face, error) { return faces.Face(FontRegular, size) }
}

// narrative returns text of exactly n characters with one highlighted span.
func narrative(n int) string {
	const body = "Spirit controlled every teamfight and closed the series with a decisive push through the middle lane while the opponents scrambled to defend "
	var sb strings.Builder
	sb.WriteString("^Yatoro^ ")
	for sb.Len() < n {
		sb.WriteString(body)
	}
	return sb.String()[:n]
}

var wrapTexts = []string{
	"short",
	"Team Spirit takes game three after a forty minute slugfest",
	narrative(300),
	"Supercalifragilisticexpialidocious pneumonoultramicroscopicsilicovolcanoconiosis tiny",
	"• KDA 12/3/18 • GPM 712 • XPM 804 • Net worth 31.2k",
}

func TestWrap_LineWidth(t *testing.T) {
	faces := newFaces(t)
	for _, size := range []int{18, 32, 50} {
		face, err := faces.Face(FontRegular, size)
		if err != nil {
			t.Fatal(err)
		}
		for _, measure := range []Measure{MeasureString, MeasureGlyphs} {
			space := measure(face, " ")
			for _, text := range wrapTexts {
				for _, width := range []int{120, 300, 1000} {
					lines := Wrap(face, Paragraphs(text, "^"), width, measure)
					for _, line := range lines {
						var total fixed.Int26_6
						for i, w := range line.Words {
							if i > 0 {
								total += space
							}
							total += measure(face, w.Text)
						}
						if total != line.Width {
							t.Fatalf("line %q width = %v, measured %v", line.Text(), line.Width, total)
						}
						if len(line.Words) > 1 && line.Width > fixed.I(width) {
							t.Errorf("size %d width %d: line %q is %v wide", size, width, line.Text(), line.Width)
						}
					}
				}
			}
		}
	}
}

func TestWrap_OverlongWord(t *testing.T) {
	faces := newFaces(t)
	face, _ := faces.Face(FontRegular, 40)
	lines := Wrap(face, [][]Word{{{Text: "a"}, {Text: "Pneumonoultramicroscopic"}, {Text: "b"}}}, 100, MeasureString)
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %v", len(lines), lines)
	}
	if lines[1].Text() != "Pneumonoultramicroscopic" {
		t.Errorf("overlong word line = %q", lines[1].Text())
	}
}

func TestWrap_HardBreaks(t *testing.T) {
	faces := newFaces(t)
	face, _ := faces.Face(FontRegular, 20)
	lines := Wrap(face, plainParagraphs("• A 1 • B 2"), 1000, MeasureGlyphs)
	if len(lines) != 2 || lines[0].Text() != "• A 1" || lines[1].Text() != "• B 2" {
		t.Errorf("lines = %v", lines)
	}
}

func TestFit_SizeRange(t *testing.T) {
	faces := newFaces(t)
	boxes := []image.Point{{1000, 500}, {400, 120}, {200, 40}, {50, 10}}
	sizes := [][2]int{{50, 50}, {60, 20}, {30, 12}, {20, 40}}
	for _, text := range wrapTexts {
		for _, box := range boxes {
			for _, s := range sizes {
				l, err := Fit(regular(faces), Paragraphs(text, "^"), box, FitOptions{Size: s[0], MinSize: s[1], Step: 3, Spacing: 6})
				if err != nil {
					t.Fatal(err)
				}
				lo := min(s[1], s[0])
				if l.Size > s[0] || l.Size < lo {
					t.Errorf("size %d outside [%d, %d]", l.Size, lo, s[0])
				}
				if !l.Truncated && l.Height() > box.Y {
					t.Errorf("not truncated but %d lines of %d exceed %d", len(l.Lines), l.LineHeight, box.Y)
				}
				if l.Truncated && l.Size != lo {
					t.Errorf("truncated at size %d, minimal is %d", l.Size, lo)
				}
				if got := len(l.Visible(box.Y)) * l.LineHeight; got > box.Y {
					t.Errorf("visible lines take %d px of %d", got, box.Y)
				}
			}
		}
	}
}

func TestFit_Shrinks(t *testing.T) {
	faces := newFaces(t)
	text := narrative(300)
	l, err := Fit(regular(faces), Paragraphs(text, "^"), image.Pt(600, 200), FitOptions{Size: 60, MinSize: 10, Step: 2, Spacing: 4})
	if err != nil {
		t.Fatal(err)
	}
	if l.Size >= 60 || l.Truncated {
		t.Errorf("expected smaller size that fits, got size %d truncated %v", l.Size, l.Truncated)
	}
	if l.Height() > 200 {
		t.Errorf("height %d exceeds box", l.Height())
	}
	// one step larger must not fit
	bigger, err := Fit(regular(faces), Paragraphs(text, "^"), image.Pt(600, 200), FitOptions{Size: l.Size + 2, MinSize: l.Size + 2, Spacing: 4})
	if err != nil {
		t.Fatal(err)
	}
	if !bigger.Truncated {
		t.Errorf("size %d fits too, search stopped early", l.Size+2)
	}
}

func TestFit_ScenarioNarrative(t *testing.T) {
	faces := newFaces(t)
	text := narrative(300)
	if len([]rune(text)) != 300 || strings.Count(text, "^") != 2 {
		t.Fatalf("bad test text %q", text)
	}
	l, err := Fit(regular(faces), Paragraphs(text, "^"), image.Pt(1000, 500), FitOptions{Size: 50, MinSize: 50, Step: 2, Spacing: 10})
	if err != nil {
		t.Fatal(err)
	}
	if l.Size != 50 {
		t.Errorf("size = %d, want 50", l.Size)
	}
	if len(l.Lines) == 0 {
		t.Fatal("no lines")
	}
	if got := len(l.Visible(500)) * l.LineHeight; got > 500 {
		t.Errorf("rendered lines take %d px", got)
	}
	highlighted := 0
	for _, line := range l.Lines {
		for _, w := range line.Words {
			if w.Highlight {
				highlighted++
			}
		}
	}
	if highlighted != 1 {
		t.Errorf("highlighted words = %d, want 1", highlighted)
	}
}

func TestFit_NoMarkersSameAsStripped(t *testing.T) {
	faces := newFaces(t)
	marked := "Yatoro finished with ^twelve kills^ and the fastest ^Roshan^ of the event"
	plain := Strip(marked, "^")

	runs := Tokenize(plain, "^")
	for _, r := range runs {
		if r.Highlight {
			t.Fatalf("unexpected highlighted run %q", r.Text)
		}
	}

	opts := FitOptions{Size: 40, MinSize: 12, Step: 2, Spacing: 4}
	a, err := Fit(regular(faces), Paragraphs(marked, "^"), image.Pt(420, 300), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Fit(regular(faces), Paragraphs(plain, "^"), image.Pt(420, 300), opts)
	if err != nil {
		t.Fatal(err)
	}
	if a.Size != b.Size || len(a.Lines) != len(b.Lines) {
		t.Fatalf("layouts differ: %d/%d vs %d/%d", a.Size, len(a.Lines), b.Size, len(b.Lines))
	}
	for i := range a.Lines {
		if a.Lines[i].Text() != b.Lines[i].Text() {
			t.Errorf("line %d: %q vs %q", i, a.Lines[i].Text(), b.Lines[i].Text())
		}
	}
}

func TestFit_Empty(t *testing.T) {
	faces := newFaces(t)
	l, err := Fit(regular(faces), nil, image.Pt(100, 100), FitOptions{Size: 20})
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Lines) != 0 || l.Truncated || l.Size != 20 {
		t.Errorf("layout = %+v", l)
	}
	if _, err := Fit(regular(faces), nil, image.Pt(100, 100), FitOptions{}); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestFaces_Cache(t *testing.T) {
	faces := newFaces(t)
	a, err := faces.Face(FontBold, 30)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := faces.Face(FontBold, 30)
	if a != b {
		t.Error("face is not cached")
	}
	c, _ := faces.Face("unknown", 30)
	if c == a {
		t.Error("unknown role must not share bold face")
	}
	if _, err := faces.Face(FontBold, 0); err == nil {
		t.Error("expected error for zero size")
	}
}
