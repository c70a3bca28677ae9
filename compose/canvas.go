// Package compose implements raster canvas operations used to assemble
// panels: template backed canvases, alpha pasting, same size layer
// compositing, gradient overlays and splitting of double-wide canvases.
//
// Canvas is always *image.RGBA owned by a single build, nothing here keeps
// references to it.
package compose

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"panelgen/common"
	"panelgen/utils/images"
)

// NewCanvas returns fully transparent canvas of w x h pixels.
func NewCanvas(w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d is not positive: %w", w, h, common.ErrSizeMismatch)
	}
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

// FromTemplate returns canvas of w x h pixels with template background drawn
// on it. Templates of other sizes are cropped and scaled to fit, nil template
// produces transparent canvas.
func FromTemplate(tmpl image.Image, w, h int) (*image.RGBA, error) {
	c, err := NewCanvas(w, h)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return c, nil
	}
	src := tmpl
	if b := tmpl.Bounds(); b.Dx() != w || b.Dy() != h {
		if src, err = images.CropResizeToFit(tmpl, w, h); err != nil {
			return nil, fmt.Errorf("unable to fit template: %w", err)
		}
	}
	draw.Draw(c, c.Bounds(), src, src.Bounds().Min, draw.Src)
	return c, nil
}

// Paste alpha blends src over dst with top left corner of src placed at pt.
// Parts falling outside of dst are clipped.
func Paste(dst draw.Image, src image.Image, pt image.Point) {
	if src == nil {
		return
	}
	sb := src.Bounds()
	draw.Draw(dst, image.Rectangle{Min: pt, Max: pt.Add(sb.Size())}, src, sb.Min, draw.Over)
}

// CompositeLayer alpha blends layer over the whole of dst. Layer must have
// exactly the same size as dst, anything else points to a broken layout table
// or asset and is reported as ErrSizeMismatch.
func CompositeLayer(dst *image.RGBA, layer image.Image) error {
	if layer == nil {
		return fmt.Errorf("no layer: %w", common.ErrSizeMismatch)
	}
	ds, ls := dst.Bounds().Size(), layer.Bounds().Size()
	if ds != ls {
		return fmt.Errorf("layer %v does not match canvas %v: %w", ls, ds, common.ErrSizeMismatch)
	}
	draw.Draw(dst, dst.Bounds(), layer, layer.Bounds().Min, draw.Over)
	return nil
}

// Fill blends solid color over rectangle of dst.
func Fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// SplitHorizontal cuts canvas into parts of equal width, left to right.
// Pixels are copied as is so joining parts back reproduces the canvas.
func SplitHorizontal(c *image.RGBA, parts int) ([]*image.RGBA, error) {
	b := c.Bounds()
	if parts <= 0 || b.Dx()%parts != 0 {
		return nil, fmt.Errorf("canvas width %d cannot be split into %d parts: %w", b.Dx(), parts, common.ErrSizeMismatch)
	}
	w := b.Dx() / parts
	out := make([]*image.RGBA, 0, parts)
	for i := range parts {
		r := image.Rect(b.Min.X+i*w, b.Min.Y, b.Min.X+(i+1)*w, b.Max.Y)
		part := image.NewRGBA(image.Rect(0, 0, w, b.Dy()))
		draw.Draw(part, part.Bounds(), c, r.Min, draw.Src)
		out = append(out, part)
	}
	return out, nil
}

// JoinHorizontal places parts side by side. All parts must have the same
// height.
func JoinHorizontal(parts []*image.RGBA) (*image.RGBA, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("nothing to join: %w", common.ErrSizeMismatch)
	}
	h := parts[0].Bounds().Dy()
	var w int
	for i, p := range parts {
		if p.Bounds().Dy() != h {
			return nil, fmt.Errorf("part %d height %d differs from %d: %w", i, p.Bounds().Dy(), h, common.ErrSizeMismatch)
		}
		w += p.Bounds().Dx()
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	x := 0
	for _, p := range parts {
		pb := p.Bounds()
		draw.Draw(out, image.Rect(x, 0, x+pb.Dx(), h), p, pb.Min, draw.Src)
		x += pb.Dx()
	}
	return out, nil
}
