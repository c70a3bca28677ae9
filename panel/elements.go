package panel

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"panelgen/assets"
	"panelgen/common"
	"panelgen/compose"
	"panelgen/config"
	"panelgen/layout"
	"panelgen/typeset"
	"panelgen/utils/images"
)

// drawer holds state of a single panel build.
type drawer struct {
	cfg     *config.EngineConfig
	assets  *assets.Resolver
	canvas  *image.RGBA
	text    *typeset.Renderer
	fields  map[string]string
	baseDir string
	log     *zap.Logger
}

var black = color.NRGBA{A: 0xFF}

func (d *drawer) value(el *layout.Element) string {
	if el.Field == "" {
		return el.Value
	}
	return strings.TrimSpace(d.fields[el.Field])
}

func (d *drawer) draw(el *layout.Element) error {
	switch el.Kind {
	case common.ElementKindFill:
		compose.Fill(d.canvas, el.Box.Rect(), el.Color.NRGBA(black))
		return nil
	case common.ElementKindGradient:
		return d.gradient(el)
	}

	v := d.value(el)
	if v == "" {
		switch {
		case el.Optional:
			return nil
		case el.Kind.NeedsText():
			// nothing to draw
			return nil
		case el.File:
			return fmt.Errorf("%s: no file: %w", el.Field, common.ErrAssetMissing)
		}
		// asset key made of prefix alone resolves to prefix fallback
	}

	switch el.Kind {
	case common.ElementKindImage, common.ElementKindChart:
		return d.image(el, v)
	case common.ElementKindIcon:
		return d.icon(el, v)
	case common.ElementKindCircle:
		return d.circle(el, v)
	case common.ElementKindText:
		l, err := d.text.Paragraph(el.Box.Rect(), v, d.style(el))
		return d.report(el, l, err)
	case common.ElementKindStats:
		l, err := d.text.StatLines(el.Box.Rect(), v, d.style(el))
		return d.report(el, l, err)
	case common.ElementKindTitle:
		l, err := d.text.Title(el.Box.Rect(), v, d.titleStyle(el))
		return d.report(el, l, err)
	case common.ElementKindQrcode:
		return d.qrcode(el, v)
	}
	return fmt.Errorf("unsupported element kind %d: %w", el.Kind, common.ErrInvalidInput)
}

// source loads image for element value, files come from disk and are not
// cached, keys go through asset resolver. Vector assets are rasterized at
// w x h.
func (d *drawer) source(el *layout.Element, v string, w, h int) (image.Image, error) {
	if el.File {
		if !filepath.IsAbs(v) && d.baseDir != "" {
			v = filepath.Join(d.baseDir, v)
		}
		return d.assets.Load(v)
	}
	return d.assets.ImageSized(el.Prefix+v, w, h)
}

// image pastes picture fitted into element box and clipped by it.
func (d *drawer) image(el *layout.Element, v string) error {
	img, err := d.source(el, v, el.Box.W, el.Box.H)
	if err != nil {
		return err
	}
	if err := images.CheckOrientation(img, el.Orientation); err != nil {
		return err
	}
	if !el.Box.Sized() {
		compose.Paste(d.canvas, img, el.Box.Point())
		return nil
	}
	fitted, err := images.Fit(img, el.Box.W, el.Box.H, el.Fit)
	if err != nil {
		return err
	}
	compose.Paste(d.canvas.SubImage(el.Box.Rect()).(*image.RGBA), fitted, el.Box.Point())
	return nil
}

// icon pastes picture scaled to fit element box, centered, never cropped.
func (d *drawer) icon(el *layout.Element, v string) error {
	img, err := d.source(el, v, el.Box.W, el.Box.H)
	if err != nil {
		return err
	}
	if !el.Box.Sized() {
		compose.Paste(d.canvas, img, el.Box.Point())
		return nil
	}
	fitted, err := images.Contain(img, el.Box.W, el.Box.H)
	if err != nil {
		return err
	}
	d.center(el.Box, fitted)
	return nil
}

func (d *drawer) center(box layout.Box, img image.Image) {
	sz := img.Bounds().Size()
	compose.Paste(d.canvas, img, box.Point().Add(image.Pt((box.W-sz.X)/2, (box.H-sz.Y)/2)))
}

func (d *drawer) circle(el *layout.Element, v string) error {
	// masks are drawn supersampled, have vector icons rasterized to match
	img, err := d.source(el, v, el.Box.W*2, el.Box.H*2)
	if err != nil {
		return err
	}
	opts := images.CircleOptions{Blur: d.cfg.Circle.Blur}
	if el.Circle != nil {
		opts.Stroke = el.Circle.Stroke
		if el.Circle.StrokeColor != nil {
			opts.StrokeColor = color.NRGBA(*el.Circle.StrokeColor)
		}
	}
	masked, err := images.CircleMask(img, el.Box.W, el.Box.H, opts)
	if err != nil {
		return err
	}
	compose.Paste(d.canvas, masked, el.Box.Point())
	return nil
}

func (d *drawer) gradient(el *layout.Element) error {
	g := el.Gradient
	if g == nil {
		return fmt.Errorf("gradient parameters are missing: %w", common.ErrInvalidInput)
	}
	return compose.Apply(d.canvas, compose.GradientSpec{
		Kind:     g.Kind,
		Border:   g.Border,
		Rect:     el.Box.Rect(),
		MinAlpha: g.MinAlpha,
		MaxAlpha: g.MaxAlpha,
		Color:    el.Color.NRGBA(black),
	})
}

func (d *drawer) qrcode(el *layout.Element, v string) error {
	size := min(el.Box.W, el.Box.H)
	img, err := images.QRCode(v, size, el.Color.NRGBA(black), color.White)
	if err != nil {
		return err
	}
	d.center(el.Box, img)
	return nil
}

func optColor(c *layout.Color) color.Color {
	if c == nil {
		return nil
	}
	return color.NRGBA(*c)
}

func defaultFont(kind common.ElementKind) string {
	switch kind {
	case common.ElementKindTitle:
		return typeset.FontTitle
	case common.ElementKindStats:
		return typeset.FontBold
	}
	return typeset.FontRegular
}

// style merges element text parameters with configured defaults.
func (d *drawer) style(el *layout.Element) typeset.Style {
	t, tc := el.Text, d.cfg.Text
	if t == nil {
		t = &layout.Text{}
	}
	return typeset.Style{
		Font:          cmp.Or(t.Font, defaultFont(el.Kind)),
		Size:          t.Size,
		MinSize:       cmp.Or(t.MinSize, tc.MinSize),
		Step:          cmp.Or(t.Step, tc.Step),
		Spacing:       cmp.Or(t.Spacing, tc.LineSpacing),
		Delimiter:     tc.Delimiter,
		Color:         optColor(t.Color),
		Accent:        optColor(t.Accent),
		TrimSentences: t.TrimSentences,
	}
}

func (d *drawer) titleStyle(el *layout.Element) typeset.TitleStyle {
	st := typeset.TitleStyle{Style: d.style(el)}
	if e := el.Effects; e != nil {
		st.Shadows = e.Shadows
		st.ShadowStep = e.ShadowStep
		st.ShadowColor = optColor(e.ShadowColor)
		st.Outline = e.Outline
		st.OutlineColor = optColor(e.OutlineColor)
	}
	return st
}

// report logs text which did not fit its box. Overflow is not an error.
func (d *drawer) report(el *layout.Element, l *typeset.Layout, err error) error {
	if err != nil {
		return err
	}
	if l != nil && l.Truncated {
		d.log.Warn("Text does not fit its box, truncated",
			zap.String("field", el.Field), zap.Stringer("box", el.Box), zap.Int("size", l.Size), zap.Int("lines", len(l.Lines)))
	}
	return nil
}
