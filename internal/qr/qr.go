package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Size of the rendered QR image in pixels
const imageSize = 300

// DataURL renders the given URL as a QR code PNG and returns it as a
// base64 data URL, ready to drop into an <img> src attribute.
func DataURL(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, imageSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
