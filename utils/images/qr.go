package images

import (
	"fmt"
	"image"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCode renders text as size x size QR code without quiet zone border.
func QRCode(text string, size int, fg, bg color.Color) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("unable to encode qr code: %w", err)
	}
	q.DisableBorder = true
	if fg != nil {
		q.ForegroundColor = fg
	}
	if bg != nil {
		q.BackgroundColor = bg
	}
	return q.Image(size), nil
}
