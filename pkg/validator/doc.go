// Package validator provides a small rule-combinator layer over the core NUP
// checks, so a NUP field can be validated alongside other form fields and the
// failures aggregated into one error value.
//
// Every exported validation function constructs and returns a Rule that pairs
// a boolean Check function with field-level error metadata. Rules are
// evaluated with the Apply helper, which collects failures into a
// ValidationErrors slice satisfying the error interface. There is no hidden
// global state; the package is stateless and goroutine-safe.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidNUP("process_number", input),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // inspect per-field messages with Has, Get, Fields
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements the error interface and works with errors.As,
// so validation problems can be detected without losing field detail. The
// rule messages embed the core package's reason strings ("invalid format",
// "invalid check digits"), keeping the two failure classes distinguishable.
package validator
