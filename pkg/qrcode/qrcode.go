// Package qrcode renders the guest-facing QR code and the printable event
// template image. Both functions are pure: bytes in, PNG bytes out.
package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRSize is the edge length of generated QR images in pixels.
const QRSize = 300

// GenerateQRCode encodes payload as a square PNG QR code with the highest
// error-correction level.
func GenerateQRCode(payload string, size int) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Highest, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}
