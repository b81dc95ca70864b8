package validator

import (
	"fmt"

	"github.com/brdoc/nup/pkg/nup"
)

// ValidNUP validates that a string is a well-formed NUP with correct
// Módulo-11 check digits. The failure message carries the core's reason,
// so format and check-digit problems stay distinguishable to callers.
func ValidNUP(field, value string) Rule {
	err := nup.Validate(value)
	message := "must be a valid NUP"
	if err != nil {
		message = "must be a valid NUP: " + err.Error()
	}
	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}

// NUPFormat validates only the lexical shape of a NUP, ignoring whether the
// supplied check digits are correct.
func NUPFormat(field, value string) Rule {
	_, err := nup.Parse(value)
	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must match NNNNN.NNNNNN/AAAA-DD or S/N/AAAA-DD",
		},
	}
}

// NUPForm validates a NUP and additionally constrains it to one of the two
// accepted variants, e.g. rejecting S/N values where a concrete process
// number is required.
func NUPForm(field, value string, form nup.Form) Rule {
	parsed, err := nup.Parse(value)
	ok := err == nil && parsed.Form == form && nup.CheckDigits(parsed) == parsed.CheckDigits
	return Rule{
		Check: func() bool {
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a valid NUP in the %s form", form),
		},
	}
}
