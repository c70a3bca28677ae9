package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// supersample is the factor circle masks are drawn at before final downscale.
const supersample = 2

// CircleOptions controls CircleMask rendering.
type CircleOptions struct {
	// Stroke insets visible disk from the box edge, target pixels.
	Stroke int
	// StrokeColor, when set, paints the ring between box edge and the inset
	// disk.
	StrokeColor color.Color
	// Blur is Gaussian sigma applied to the mask edge in supersampled
	// pixels. Zero selects DefaultCircleBlur.
	Blur float64
}

const DefaultCircleBlur = 2.0

// CircleMask produces w x h image with source cropped to fill the box and
// clipped by an anti-aliased ellipse. Corners are fully transparent.
func CircleMask(img image.Image, w, h int, opts CircleOptions) (*image.NRGBA, error) {
	W, H := w*supersample, h*supersample
	big, err := CropResizeToFit(img, W, H)
	if err != nil {
		return nil, err
	}

	sigma := opts.Blur
	if sigma <= 0 {
		sigma = DefaultCircleBlur
	}

	inner := imaging.Blur(ellipseMask(W, H, float64(opts.Stroke*supersample)), sigma)
	var outer *image.NRGBA
	var ring color.NRGBA
	if opts.StrokeColor != nil {
		ring = color.NRGBAModel.Convert(opts.StrokeColor).(color.NRGBA)
		if ring.A > 0 {
			outer = imaging.Blur(ellipseMask(W, H, 0), sigma)
		}
	}

	out := image.NewNRGBA(image.Rect(0, 0, W, H))
	for y := range H {
		for x := range W {
			i := y*out.Stride + x*4
			src := big.Pix[i : i+4 : i+4]
			pa := float64(src[3]) / 255 * float64(inner.Pix[i]) / 255
			if outer == nil {
				out.Pix[i+0], out.Pix[i+1], out.Pix[i+2] = src[0], src[1], src[2]
				out.Pix[i+3] = uint8(pa*255 + 0.5)
				continue
			}
			// photo over ring
			ra := float64(ring.A) / 255 * float64(outer.Pix[i]) / 255
			oa := pa + ra*(1-pa)
			if oa <= 0 {
				continue
			}
			mix := func(pc, rc uint8) uint8 {
				return uint8((float64(pc)*pa+float64(rc)*ra*(1-pa))/oa + 0.5)
			}
			out.Pix[i+0] = mix(src[0], ring.R)
			out.Pix[i+1] = mix(src[1], ring.G)
			out.Pix[i+2] = mix(src[2], ring.B)
			out.Pix[i+3] = uint8(oa*255 + 0.5)
		}
	}
	res := imaging.Resize(out, w, h, Filter)
	clipEllipse(res, 2*sigma/supersample)
	return res, nil
}

// clipEllipse clears pixels outside of the ellipse inscribed into img grown
// by margin. Blur and resampling spread edge alpha outwards and on small
// masks it reaches the corners. Margin is capped so corner pixels always
// stay outside.
func clipEllipse(img *image.NRGBA, margin float64) {
	b := img.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	margin = min(margin, 0.4*min(cx, cy)-0.75)
	rx, ry := cx+margin, cy+margin
	if min(rx, ry) <= 0.5 {
		return
	}
	for y := range b.Dy() {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := range b.Dx() {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy > 1 {
				i := y*img.Stride + x*4
				img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0, 0, 0, 0
			}
		}
	}
}

// ellipseMask returns single channel mask with filled ellipse inscribed into
// w x h box and inset by given number of pixels.
func ellipseMask(w, h int, inset float64) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	rx, ry := cx-inset, cy-inset
	if rx <= 0 || ry <= 0 {
		return mask
	}
	for y := range h {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := range w {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				mask.Pix[y*mask.Stride+x] = 0xFF
			}
		}
	}
	return mask
}
