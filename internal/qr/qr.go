package qr

import (
	"bytes"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// SharePNG returns PNG bytes of a QR code pointing at url, for handing a
// processed image to a phone camera.
func SharePNG(url string, size int) ([]byte, error) {
	pngBytes, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	// validate png decode
	if _, err := png.Decode(bytes.NewReader(pngBytes)); err != nil {
		return nil, err
	}
	return pngBytes, nil
}
