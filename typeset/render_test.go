package typeset

import (
	"image"
	"image/color"
	"testing"
)

func countColor(img *image.RGBA, r image.Rectangle, c color.RGBA) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

// painted counts pixels of r with any coverage.
func painted(img *image.RGBA, r image.Rectangle) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestPainted(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 100, 50))
	canvas.SetRGBA(90, 10, white)
	if n := painted(canvas, image.Rect(0, 0, 50, 50)); n != 0 {
		t.Errorf("pixel outside of rectangle counted: %d", n)
	}
	if n := painted(canvas, image.Rect(50, 0, 100, 50)); n != 1 {
		t.Errorf("painted = %d, want 1", n)
	}
}

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func style() Style {
	return Style{Font: FontBold, Size: 48, MinSize: 16, Step: 2, Spacing: 6, Delimiter: "^", Color: white, Accent: red}
}

func TestParagraph(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 600, 400))
	r := NewRenderer(canvas, newFaces(t))

	box := image.Rect(50, 50, 550, 350)
	l, err := r.Paragraph(box, "Spirit won ^game three^ in thirty minutes", style())
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Lines) == 0 {
		t.Fatal("nothing laid out")
	}
	if countColor(canvas, box, white) == 0 {
		t.Error("no base color pixels")
	}
	if countColor(canvas, box, red) == 0 {
		t.Error("no accent color pixels")
	}
	// nothing drawn above or left of the box
	if n := painted(canvas, image.Rect(0, 0, 600, 40)); n != 0 {
		t.Errorf("%d pixels painted above box", n)
	}
	if n := painted(canvas, image.Rect(0, 0, 45, 400)); n != 0 {
		t.Errorf("%d pixels painted left of box", n)
	}
}

func TestParagraph_SingleLineCentered(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 800, 100))
	r := NewRenderer(canvas, newFaces(t))

	if _, err := r.Paragraph(image.Rect(0, 0, 800, 100), "MVP", style()); err != nil {
		t.Fatal(err)
	}
	left := painted(canvas, image.Rect(0, 0, 300, 100))
	right := painted(canvas, image.Rect(500, 0, 800, 100))
	middle := painted(canvas, image.Rect(300, 0, 500, 100))
	if left != 0 || right != 0 || middle == 0 {
		t.Errorf("single line not centered: left %d middle %d right %d", left, middle, right)
	}
}

func TestParagraph_Empty(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 100, 100))
	r := NewRenderer(canvas, newFaces(t))
	for _, text := range []string{"", "   ", "^^"} {
		l, err := r.Paragraph(canvas.Bounds(), text, style())
		if err != nil {
			t.Fatalf("Paragraph(%q) error = %v", text, err)
		}
		if len(l.Lines) != 0 {
			t.Errorf("Paragraph(%q) lines = %v", text, l.Lines)
		}
	}
	if n := painted(canvas, canvas.Bounds()); n != 0 {
		t.Errorf("%d pixels painted for empty text", n)
	}
}

func TestParagraph_TruncatesBelowBox(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 300, 400))
	r := NewRenderer(canvas, newFaces(t))

	st := style()
	st.MinSize = st.Size
	box := image.Rect(0, 0, 300, 120)
	l, err := r.Paragraph(box, narrative(300), st)
	if err != nil {
		t.Fatal(err)
	}
	if !l.Truncated {
		t.Fatal("expected truncated layout")
	}
	// glyph descenders may reach a bit below the last visible line
	below := image.Rect(0, box.Max.Y+st.Size/2, 300, 400)
	if n := painted(canvas, below); n != 0 {
		t.Errorf("%d pixels painted below box", n)
	}
}

func TestStatLines(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 600, 300))
	r := NewRenderer(canvas, newFaces(t))

	l, err := r.StatLines(canvas.Bounds(), "• Win rate 57.5% • Picks 12", style())
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Lines) != 2 {
		t.Errorf("lines = %d, want 2", len(l.Lines))
	}
	if countColor(canvas, canvas.Bounds(), red) == 0 {
		t.Error("digits are not accented")
	}
	if countColor(canvas, canvas.Bounds(), white) == 0 {
		t.Error("labels are not drawn in base color")
	}
}

func TestStatLines_OnlyLabels(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 600, 300))
	r := NewRenderer(canvas, newFaces(t))

	if _, err := r.StatLines(canvas.Bounds(), "Carry Mid Offlane", style()); err != nil {
		t.Fatal(err)
	}
	if countColor(canvas, canvas.Bounds(), red) != 0 {
		t.Error("accent used without digits")
	}
}

func TestTitle(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 800, 200))
	r := NewRenderer(canvas, newFaces(t))

	st := TitleStyle{
		Style:      style(),
		Shadows:    2,
		ShadowStep: 3,
		Outline:    3,
	}
	st.Size = 72
	if _, err := r.Title(image.Rect(20, 20, 780, 180), "GRAND ^FINAL^", st); err != nil {
		t.Fatal(err)
	}
	if countColor(canvas, canvas.Bounds(), black) == 0 {
		t.Error("no outline pixels")
	}
	if countColor(canvas, canvas.Bounds(), white) == 0 {
		t.Error("no fill pixels")
	}
	if countColor(canvas, canvas.Bounds(), red) == 0 {
		t.Error("no accent fill pixels")
	}
}

func TestDiskOffsets(t *testing.T) {
	if got := len(diskOffsets(1)); got != 4 {
		t.Errorf("radius 1 offsets = %d, want 4", got)
	}
	if got := len(diskOffsets(2)); got != 12 {
		t.Errorf("radius 2 offsets = %d, want 12", got)
	}
	if got := len(diskOffsets(0)); got != 0 {
		t.Errorf("radius 0 offsets = %d", got)
	}
}
