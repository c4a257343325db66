// Package qr renders QR codes for terminal and paper output.
package qr

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// Render returns a compact block-character QR code for data
func Render(data string) (string, error) {
	if data == "" {
		return "", errors.New("empty QR payload")
	}

	code, err := qrcode.New(data, qrcode.Medium)
	if err != nil {
		return "", errors.Wrap(err, "failed to create QR code")
	}

	return strings.TrimRight(code.ToSmallString(false), "\n"), nil
}

