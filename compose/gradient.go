package compose

import (
	"fmt"
	"image"
	"image/color"

	"panelgen/common"
)

// GradientSpec describes darkening overlay.
type GradientSpec struct {
	Kind common.GradientKind
	// Border is ring thickness for edge vignette and strip height for top
	// and bottom fades.
	Border int
	// Rect is faded region for box kind.
	Rect image.Rectangle
	// MinAlpha is only used by box fade, at the top of the box.
	MinAlpha uint8
	MaxAlpha uint8
	// Color of the overlay, alpha is ignored. Zero value is black.
	Color color.NRGBA
}

// Layer builds transparent w x h overlay described by spec.
func (s GradientSpec) Layer(w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("gradient layer size %dx%d is not positive: %w", w, h, common.ErrSizeMismatch)
	}
	switch s.Kind {
	case common.GradientKindEdge:
		return EdgeVignette(w, h, s.Border, s.MaxAlpha, s.Color), nil
	case common.GradientKindTop:
		return TopFade(w, h, s.Border, s.MaxAlpha, s.Color), nil
	case common.GradientKindBottom:
		return BottomFade(w, h, s.Border, s.MaxAlpha, s.Color), nil
	case common.GradientKindBox:
		return BoxFade(w, h, s.Rect, s.MinAlpha, s.MaxAlpha, s.Color), nil
	}
	return nil, fmt.Errorf("unknown gradient kind %s: %w", s.Kind, common.ErrInvalidInput)
}

// Apply composites gradient described by spec over the canvas.
func Apply(dst *image.RGBA, s GradientSpec) error {
	layer, err := s.Layer(dst.Bounds().Dx(), dst.Bounds().Dy())
	if err != nil {
		return err
	}
	return CompositeLayer(dst, layer)
}

// squared falloff, max at distance 0 and zero at border
func squared(d, border int, maxA uint8) uint8 {
	if d >= border {
		return 0
	}
	f := float64(border-d) / float64(border)
	return uint8(float64(maxA)*f*f + 0.5)
}

func linear(d, border int, maxA uint8) uint8 {
	if d >= border {
		return 0
	}
	return uint8(float64(maxA)*float64(border-d)/float64(border) + 0.5)
}

func setAlpha(layer *image.NRGBA, x, y int, c color.NRGBA, a uint8) {
	i := layer.PixOffset(x, y)
	layer.Pix[i+0], layer.Pix[i+1], layer.Pix[i+2], layer.Pix[i+3] = c.R, c.G, c.B, a
}

// EdgeVignette darkens ring of given thickness along all four edges. Pixel
// alpha depends on distance to the nearest edge only, the interior stays
// transparent.
func EdgeVignette(w, h, border int, maxA uint8, c color.NRGBA) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, w, h))
	if border <= 0 {
		return layer
	}
	for y := range h {
		dy := min(y, h-1-y)
		for x := range w {
			d := min(dy, x, w-1-x)
			if d >= border {
				continue
			}
			setAlpha(layer, x, y, c, squared(d, border, maxA))
		}
	}
	return layer
}

// fadeRows fills whole rows with alpha computed from row distance.
func fadeRows(w, h int, c color.NRGBA, alpha func(y int) uint8) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		a := alpha(y)
		if a == 0 {
			continue
		}
		for x := range w {
			setAlpha(layer, x, y, c, a)
		}
	}
	return layer
}

// BottomFade darkens strip along the bottom edge, squared falloff upwards.
func BottomFade(w, h, strip int, maxA uint8, c color.NRGBA) *image.NRGBA {
	return fadeRows(w, h, c, func(y int) uint8 {
		if strip <= 0 {
			return 0
		}
		return squared(h-1-y, strip, maxA)
	})
}

// TopFade darkens strip along the top edge, linear falloff downwards.
func TopFade(w, h, strip int, maxA uint8, c color.NRGBA) *image.NRGBA {
	return fadeRows(w, h, c, func(y int) uint8 {
		if strip <= 0 {
			return 0
		}
		return linear(y, strip, maxA)
	})
}

// BoxFade darkens rectangle r, alpha changes linearly from minA at the top
// row of the box to maxA at its bottom row. Nothing outside r is touched.
func BoxFade(w, h int, r image.Rectangle, minA, maxA uint8, c color.NRGBA) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, w, h))
	r = r.Canon()
	rows := r.Dy()
	clip := r.Intersect(layer.Bounds())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		a := float64(minA)
		if rows > 1 {
			a += (float64(maxA) - float64(minA)) * float64(y-r.Min.Y) / float64(rows-1)
		}
		for x := clip.Min.X; x < clip.Max.X; x++ {
			setAlpha(layer, x, y, c, uint8(a+0.5))
		}
	}
	return layer
}
