package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/brdoc/nup/pkg/nup"
)

var (
	// ErrInvalidNUP is returned when the value fails NUP validation.
	ErrInvalidNUP = errors.New("cannot encode an invalid NUP")
	// ErrGenerateFailed is returned when the QR code generation fails.
	ErrGenerateFailed = errors.New("failed to generate QR code")
)

// defaultSize is the size in pixels used when no size is specified.
const defaultSize = 256

// Encode validates value as a NUP and renders it as a PNG QR code.
// Returns the image as a byte slice or an error if validation or
// generation fails.
func Encode(value string, size int) ([]byte, error) {
	if err := nup.Validate(value); err != nil {
		return nil, errors.Join(ErrInvalidNUP, err)
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(value, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrGenerateFailed, err)
	}
	return png, nil
}

// EncodeDataURI validates value as a NUP and returns the QR code as a
// base64-encoded PNG data URI, suitable for embedding in an <img> tag.
func EncodeDataURI(value string, size int) (string, error) {
	png, err := Encode(value, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
