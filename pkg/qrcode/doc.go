// Package qrcode renders validated NUP values as QR code images.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode that adds
// NUP validation before encoding: an invalid protocol number is refused
// rather than silently embedded in an image.
//
// # Usage
//
//	png, err := qrcode.Encode("12345.678901/2023-29", 256)
//	if err != nil {
//	    // handle error
//	}
//
//	dataURI, err := qrcode.EncodeDataURI("12345.678901/2023-29", 256)
//
// # Error Handling
//
// The functions return well-defined sentinel errors:
//
//   - ErrInvalidNUP     – the value failed NUP validation; the core verdict
//     is joined in, so errors.Is also matches nup.ErrInvalidFormat or
//     nup.ErrInvalidCheckDigits.
//   - ErrGenerateFailed – the underlying library could not generate the
//     QR code.
package qrcode
