package nup

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	standardRegex = regexp.MustCompile(`^(\d{5})\.(\d{6})/(\d{4}|\d{2})-(\d{2})$`)
	noNumberRegex = regexp.MustCompile(`^S/N/(\d{4}|\d{2})-(\d{2})$`)
)

// Form identifies which of the two accepted NUP shapes a value uses.
type Form int

const (
	// FormStandard is the regular NNNNN.NNNNNN/AAAA-DD shape.
	FormStandard Form = iota
	// FormNoNumber is the S/N/AAAA-DD shape for processes without an
	// assigned sequence number.
	FormNoNumber
)

func (f Form) String() string {
	if f == FormNoNumber {
		return "no-number"
	}
	return "standard"
}

// Parsed holds the fields extracted from one NUP string. Values are produced
// by Parse and never mutated afterwards. Unit and Sequence are empty for
// FormNoNumber; all populated fields are fixed-width digit strings with
// leading zeros preserved.
type Parsed struct {
	Form        Form
	Unit        string
	Sequence    string
	Year        string
	CheckDigits string
}

// Parse matches s against the two accepted shapes and extracts its fields.
// It returns an error wrapping ErrInvalidFormat when neither shape matches;
// it never inspects the check digits beyond their width.
func Parse(s string) (Parsed, error) {
	if m := standardRegex.FindStringSubmatch(s); m != nil {
		return Parsed{
			Form:        FormStandard,
			Unit:        m[1],
			Sequence:    m[2],
			Year:        m[3],
			CheckDigits: m[4],
		}, nil
	}
	if m := noNumberRegex.FindStringSubmatch(s); m != nil {
		return Parsed{
			Form:        FormNoNumber,
			Year:        m[1],
			CheckDigits: m[2],
		}, nil
	}
	return Parsed{}, fmt.Errorf("%w: expected NNNNN.NNNNNN/AAAA-DD or S/N/AAAA-DD (year may be 2 digits)", ErrInvalidFormat)
}

// Validate classifies s as a valid or invalid NUP. It returns nil when the
// shape matches and the supplied check digits equal the recomputed Módulo-11
// result, and an error wrapping ErrInvalidFormat or ErrInvalidCheckDigits
// otherwise. It never panics, for any input.
func Validate(s string) error {
	p, err := Parse(s)
	if err != nil {
		return err
	}
	if expected := CheckDigits(p); expected != p.CheckDigits {
		return fmt.Errorf("%w: want %s, have %s", ErrInvalidCheckDigits, expected, p.CheckDigits)
	}
	return nil
}

// IsValid reports whether s is a valid NUP.
func IsValid(s string) bool {
	return Validate(s) == nil
}

// CheckDigits returns the expected 2-digit check string for p, ignoring
// p.CheckDigits. The check sequence depends on the form: the standard shape
// weights unit+sequence+year, the no-number shape weights the year alone. The
// year contributes exactly as written; a 2-digit year is not expanded.
func CheckDigits(p Parsed) string {
	seq := checkSequence(p)
	d1 := checkDigit(seq)
	d2 := checkDigit(seq + strconv.Itoa(d1))
	return strconv.Itoa(d1) + strconv.Itoa(d2)
}

func checkSequence(p Parsed) string {
	switch p.Form {
	case FormNoNumber:
		return p.Year
	default:
		return p.Unit + p.Sequence + p.Year
	}
}
