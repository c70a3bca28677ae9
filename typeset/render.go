package typeset

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Style describes how a text block is fitted and colored.
type Style struct {
	Font      string
	Size      int
	MinSize   int
	Step      int
	Spacing   int
	Delimiter string
	Color     color.Color
	Accent    color.Color
	// TrimSentences drops trailing sentences of narrative text which does
	// not fit at minimal size.
	TrimSentences bool
}

// TitleStyle adds poster effects drawn below title glyphs.
type TitleStyle struct {
	Style
	Shadows      int
	ShadowStep   int
	ShadowColor  color.Color
	Outline      int
	OutlineColor color.Color
}

// Renderer draws text blocks onto a single canvas.
type Renderer struct {
	dst   draw.Image
	faces *Faces
}

// NewRenderer returns renderer drawing on dst with faces from per build
// cache.
func NewRenderer(dst draw.Image, faces *Faces) *Renderer {
	return &Renderer{dst: dst, faces: faces}
}

func (r *Renderer) faceFunc(role string) FaceFunc {
	return func(size int) (font.Face, error) {
		return r.faces.Face(role, size)
	}
}

func (r *Renderer) fit(box image.Rectangle, paras [][]Word, st Style, measure Measure) (*Layout, error) {
	return Fit(r.faceFunc(st.Font), paras, box.Size(), FitOptions{
		Size:    st.Size,
		MinSize: st.MinSize,
		Step:    st.Step,
		Spacing: st.Spacing,
		Measure: measure,
	})
}

// Layout fits narrative text into box without drawing it. Sentence trimming
// is applied when requested.
func (r *Renderer) Layout(box image.Rectangle, text string, st Style) (*Layout, error) {
	if strings.TrimSpace(text) == "" {
		return &Layout{}, nil
	}
	l, err := r.fit(box, Paragraphs(text, st.Delimiter), st, MeasureString)
	if err != nil || !l.Truncated || !st.TrimSentences {
		return l, err
	}

	trimmed := TrimSentences(text, func(candidate string) bool {
		cl, err := r.fit(box, Paragraphs(candidate, st.Delimiter), st, MeasureString)
		return err == nil && !cl.Truncated
	})
	if trimmed == strings.TrimSpace(text) {
		return l, nil
	}
	return r.fit(box, Paragraphs(trimmed, st.Delimiter), st, MeasureString)
}

// Paragraph draws narrative text, highlighted runs use accent color.
func (r *Renderer) Paragraph(box image.Rectangle, text string, st Style) (*Layout, error) {
	l, err := r.Layout(box, text, st)
	if err != nil {
		return nil, err
	}
	base, accent := colors(st)
	r.eachWord(box, l, func(w Word, dot fixed.Point26_6) {
		d := font.Drawer{Dst: r.dst, Src: pick(w.Highlight, accent, base), Face: l.face, Dot: dot}
		d.DrawString(w.Text)
	})
	return l, nil
}

// StatLines draws structured stat text. Every sentinel starts new line,
// characters are drawn one by one colored by their class.
func (r *Renderer) StatLines(box image.Rectangle, text string, st Style) (*Layout, error) {
	if strings.TrimSpace(text) == "" {
		return &Layout{}, nil
	}
	l, err := r.fit(box, plainParagraphs(text), st, MeasureGlyphs)
	if err != nil {
		return nil, err
	}
	base, accent := colors(st)
	r.eachWord(box, l, func(w Word, dot fixed.Point26_6) {
		d := font.Drawer{Dst: r.dst, Face: l.face, Dot: dot}
		classes := Classify(w.Text)
		i := 0
		for _, ch := range w.Text {
			d.Src = pick(classes[i].Accent(), accent, base)
			adv, _ := l.face.GlyphAdvance(ch)
			start := d.Dot
			d.DrawString(string(ch))
			d.Dot = fixed.Point26_6{X: start.X + adv, Y: start.Y}
			i++
		}
	})
	return l, nil
}

// Title draws text with poster effects: shadow copies offset diagonally,
// outline stamped around every glyph and fill on top. Every effect layer is
// drawn for the whole text before the next one.
func (r *Renderer) Title(box image.Rectangle, text string, st TitleStyle) (*Layout, error) {
	l, err := r.Layout(box, text, st.Style)
	if err != nil {
		return nil, err
	}
	base, accent := colors(st.Style)

	stamp := func(src image.Image, off fixed.Point26_6, colorFor func(Word) image.Image) {
		r.eachWord(box, l, func(w Word, dot fixed.Point26_6) {
			s := src
			if colorFor != nil {
				s = colorFor(w)
			}
			d := font.Drawer{Dst: r.dst, Src: s, Face: l.face, Dot: dot.Add(off)}
			d.DrawString(w.Text)
		})
	}

	shadow := uniform(st.ShadowColor, color.NRGBA{A: 160})
	step := max(st.ShadowStep, 1)
	for i := st.Shadows; i > 0; i-- {
		stamp(shadow, fixed.P(i*step, i*step), nil)
	}
	if st.Outline > 0 {
		outline := uniform(st.OutlineColor, color.Black)
		for _, off := range diskOffsets(st.Outline) {
			stamp(outline, off, nil)
		}
	}
	stamp(nil, fixed.Point26_6{}, func(w Word) image.Image { return pick(w.Highlight, accent, base) })
	return l, nil
}

// diskOffsets returns all non zero integer offsets within radius.
func diskOffsets(radius int) []fixed.Point26_6 {
	var out []fixed.Point26_6
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if (dx != 0 || dy != 0) && dx*dx+dy*dy <= radius*radius {
				out = append(out, fixed.P(dx, dy))
			}
		}
	}
	return out
}

// eachWord walks visible lines and calls fn with baseline origin of every
// word. A single line is centered, several lines are left aligned.
func (r *Renderer) eachWord(box image.Rectangle, l *Layout, fn func(w Word, dot fixed.Point26_6)) {
	lines := l.Visible(box.Dy())
	if len(lines) == 0 {
		return
	}
	space := l.measure(l.face, " ")
	ascent := l.face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		x := fixed.I(box.Min.X)
		if len(l.Lines) == 1 {
			if free := fixed.I(box.Dx()) - line.Width; free > 0 {
				x += free / 2
			}
		}
		y := fixed.I(box.Min.Y + i*l.LineHeight + ascent)
		for _, w := range line.Words {
			fn(w, fixed.Point26_6{X: x, Y: y})
			x += l.measure(l.face, w.Text) + space
		}
	}
}

func uniform(c, def color.Color) *image.Uniform {
	if c == nil {
		c = def
	}
	return image.NewUniform(c)
}

func colors(st Style) (base, accent *image.Uniform) {
	base = uniform(st.Color, color.White)
	accent = uniform(st.Accent, base.C)
	return base, accent
}

func pick(accent bool, a, b *image.Uniform) *image.Uniform {
	if accent {
		return a
	}
	return b
}
