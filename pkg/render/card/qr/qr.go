// Package qr generates QR module matrices for the card's contact block.
package qr

import qrcode "github.com/skip2/go-qrcode"

// Modules encodes data at medium error correction and returns the module
// matrix including the quiet zone. Rows are top to bottom; true means a
// dark module.
//
// The bool result is false when data is empty or cannot be encoded; the
// caller renders a blank frame in that case rather than failing, keeping
// the rendering path total.
func Modules(data string) ([][]bool, bool) {
	if data == "" {
		return nil, false
	}
	code, err := qrcode.New(data, qrcode.Medium)
	if err != nil {
		return nil, false
	}
	return code.Bitmap(), true
}
