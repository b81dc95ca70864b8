package nup

import "errors"

// Validation verdicts. Both are returned wrapped, so compare with errors.Is.
var (
	// ErrInvalidFormat is returned when the input matches neither the standard
	// NNNNN.NNNNNN/AAAA-DD shape nor the S/N/AAAA-DD no-number shape.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidCheckDigits is returned when the shape is correct but the
	// supplied check digits differ from the recomputed Módulo-11 result.
	ErrInvalidCheckDigits = errors.New("invalid check digits")
)
