package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"panelgen/common"
)

// IsSVG reports whether named data is SVG document. filetype does not sniff
// text formats so name and content are both checked.
func IsSVG(name string, data []byte) bool {
	if strings.EqualFold(path.Ext(name), ".svg") {
		return true
	}
	head := data[:min(len(data), 512)]
	return bytes.Contains(head, []byte("<svg"))
}

// Decode turns raw asset bytes into an image. SVG data is rasterized at its
// intrinsic size, everything else must be recognized as a raster format.
// EXIF orientation of photos is applied.
func Decode(name string, data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty: %w", name, common.ErrInvalidAsset)
	}
	if IsSVG(name, data) {
		return RasterizeSVG(data, 0, 0)
	}
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("%s is not an image (detected %q): %w", name, kind.MIME.Value, common.ErrInvalidAsset)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w: %w", name, err, common.ErrInvalidAsset)
	}
	if _, _, err := checkSource(img); err != nil {
		return nil, err
	}
	return img, nil
}
