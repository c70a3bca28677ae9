// Package images holds pixel geometry used by panel builder: aspect
// preserving crops and scaling, circular masks and rasterization of vector
// and generated inputs.
package images

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"panelgen/common"
)

// Filter is resampling filter used for all scaling of photos and icons.
var Filter = imaging.Lanczos

func checkSource(img image.Image) (int, int, error) {
	if img == nil {
		return 0, 0, fmt.Errorf("no image: %w", common.ErrInvalidAsset)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return 0, 0, fmt.Errorf("image has zero area %dx%d: %w", b.Dx(), b.Dy(), common.ErrInvalidAsset)
	}
	return b.Dx(), b.Dy(), nil
}

func checkTarget(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("target size %dx%d is not positive: %w", w, h, common.ErrSizeMismatch)
	}
	return nil
}

// CropResizeToFit returns image of exactly w x h pixels. Source is center
// cropped to target aspect ratio first (horizontally when source is
// relatively wider, vertically otherwise) at full source height or width, and
// the crop is scaled to the target. There is never any letterboxing.
func CropResizeToFit(img image.Image, w, h int) (*image.NRGBA, error) {
	sw, sh, err := checkSource(img)
	if err != nil {
		return nil, err
	}
	if err := checkTarget(w, h); err != nil {
		return nil, err
	}

	cw, ch := cropSize(sw, sh, w, h)
	cropped := imaging.CropCenter(img, cw, ch)
	if cw == w && ch == h {
		return cropped, nil
	}
	return imaging.Resize(cropped, w, h, Filter), nil
}

// cropSize returns size of the largest centered region of sw x sh having
// aspect ratio of w x h.
func cropSize(sw, sh, w, h int) (int, int) {
	// compare sw/sh with w/h without floating point
	if sw*h > sh*w {
		cw := int(math.Round(float64(sh) * float64(w) / float64(h)))
		return min(max(cw, 1), sw), sh
	}
	ch := int(math.Round(float64(sw) * float64(h) / float64(w)))
	return sw, min(max(ch, 1), sh)
}

// ResizeByWidth scales image to requested width keeping aspect ratio.
func ResizeByWidth(img image.Image, w int) (*image.NRGBA, error) {
	sw, sh, err := checkSource(img)
	if err != nil {
		return nil, err
	}
	h := max(int(math.Round(float64(w)*float64(sh)/float64(sw))), 1)
	if err := checkTarget(w, h); err != nil {
		return nil, err
	}
	return imaging.Resize(img, w, h, Filter), nil
}

// ResizeByHeight scales image to requested height keeping aspect ratio.
func ResizeByHeight(img image.Image, h int) (*image.NRGBA, error) {
	sw, sh, err := checkSource(img)
	if err != nil {
		return nil, err
	}
	w := max(int(math.Round(float64(h)*float64(sw)/float64(sh))), 1)
	if err := checkTarget(w, h); err != nil {
		return nil, err
	}
	return imaging.Resize(img, w, h, Filter), nil
}

// Fit scales image into w x h box according to mode.
func Fit(img image.Image, w, h int, mode common.FitMode) (*image.NRGBA, error) {
	switch mode {
	case common.FitModeWidth:
		return ResizeByWidth(img, w)
	case common.FitModeHeight:
		return ResizeByHeight(img, h)
	case common.FitModeStretch:
		if _, _, err := checkSource(img); err != nil {
			return nil, err
		}
		if err := checkTarget(w, h); err != nil {
			return nil, err
		}
		return imaging.Resize(img, w, h, Filter), nil
	default:
		return CropResizeToFit(img, w, h)
	}
}

// CheckOrientation rejects images which do not have required orientation
// rather than silently distorting them.
func CheckOrientation(img image.Image, o common.Orientation) error {
	sw, sh, err := checkSource(img)
	if err != nil {
		return err
	}
	if !o.Accepts(sw, sh) {
		return fmt.Errorf("image %dx%d is not %s: %w", sw, sh, o, common.ErrUnsupportedAspect)
	}
	return nil
}

// Contain scales image to the largest size fitting into w x h box keeping
// aspect ratio.
func Contain(img image.Image, w, h int) (*image.NRGBA, error) {
	sw, sh, err := checkSource(img)
	if err != nil {
		return nil, err
	}
	if err := checkTarget(w, h); err != nil {
		return nil, err
	}
	if sw*h > sh*w {
		return ResizeByWidth(img, w)
	}
	return ResizeByHeight(img, h)
}
