// Package nup validates Brazilian federal protocol numbers (NUP — Número
// Único de Protocolo) against the canonical lexical format and the Módulo-11
// check-digit algorithm defined for the federal administration.
//
// A NUP takes the shape NNNNN.NNNNNN/AAAA-DD: a 5-digit protocolizing-unit
// code, a 6-digit process sequence, a 2- or 4-digit registration year, and two
// trailing check digits. Processes without an assigned sequence use the
// literal marker "S/N" (sem número) in place of the unit and sequence
// segments, still carrying a year and check digits: S/N/AAAA-DD.
//
// # Architecture
//
// The package is a single pure component. Parse matches the input against the
// two accepted shapes and extracts fixed-width digit fields into a Parsed
// value; CheckDigits recomputes the expected Módulo-11 result for those
// fields; Validate glues the two together and reports a verdict. The Módulo-11
// weighting lives in one unexported checkDigit function that is called twice,
// the second time over the sequence extended by the first digit.
//
// All fields are kept as digit strings: leading zeros are significant, and a
// 2-digit year is never expanded to 4 digits before weighting.
//
// # Usage
//
//	if err := nup.Validate("12345.678901/2023-29"); err != nil {
//	    // err.Error() carries the reason, e.g. "invalid format"
//	}
//
//	p, err := nup.Parse("S/N/2023-04")
//	if err == nil {
//	    expected := nup.CheckDigits(p) // "04"
//	}
//
// # Error Handling
//
// Validate and Parse return errors wrapping one of two sentinels:
//
//   - ErrInvalidFormat      – the input matches neither accepted shape.
//   - ErrInvalidCheckDigits – the shape is correct but the supplied check
//     digits differ from the recomputed ones.
//
// Both are verdicts, not faults: every input, however malformed, produces a
// clean negative result and no function in this package ever panics.
//
// # Performance Considerations
//
// Validation is a regexp match plus an integer loop over at most 16 digits;
// there is no hidden state, no I/O, and no allocation beyond the Parsed value,
// so concurrent use needs no coordination.
package nup
