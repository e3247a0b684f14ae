package utils

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

// GenerateQRCode encodes content as a size x size PNG. A non-positive size
// falls back to 256px.
func GenerateQRCode(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultQRSize
	}
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return qr.PNG(size)
}
