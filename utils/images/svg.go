package images

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"panelgen/common"
)

// defaultSVGSize is used when viewBox does not carry usable dimensions.
const defaultSVGSize = 512

// maxRasterDim caps rasterization size, panels are never larger than double
// wide canvas.
var maxRasterDim = 4096

// RasterizeSVG renders SVG icon onto transparent background.
//
//   - both targetW and targetH <= 0: intrinsic viewBox size
//   - only one of them > 0: scale by that dimension keeping aspect ratio
//   - both > 0: fit into the box keeping aspect ratio
func RasterizeSVG(svgData []byte, targetW, targetH int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("unable to parse svg: %w: %w", err, common.ErrInvalidAsset)
	}

	iw := int(math.Ceil(icon.ViewBox.W))
	ih := int(math.Ceil(icon.ViewBox.H))
	if iw <= 0 {
		iw = defaultSVGSize
	}
	if ih <= 0 {
		ih = defaultSVGSize
	}

	w, h := iw, ih
	switch {
	case targetW <= 0 && targetH <= 0:
	case targetH <= 0:
		w = targetW
		h = int(math.Round(float64(w) * float64(ih) / float64(iw)))
	case targetW <= 0:
		h = targetH
		w = int(math.Round(float64(h) * float64(iw) / float64(ih)))
	default:
		scale := math.Min(float64(targetW)/float64(iw), float64(targetH)/float64(ih))
		w = int(math.Round(float64(iw) * scale))
		h = int(math.Round(float64(ih) * scale))
	}
	w, h = max(w, 1), max(h, 1)
	if w > maxRasterDim || h > maxRasterDim {
		s := min(float64(maxRasterDim)/float64(w), float64(maxRasterDim)/float64(h))
		w = max(int(math.Round(float64(w)*s)), 1)
		h = max(int(math.Round(float64(h)*s)), 1)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return dst, nil
}
