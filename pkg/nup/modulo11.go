package nup

// checkDigit computes one Módulo-11 verification digit for a digit string.
// Weights start at 2 on the rightmost digit and increment leftwards, wrapping
// back to 2 after 9. Remainders 0 and 1 both map to digit 0, so the result is
// always a single digit.
func checkDigit(digits string) int {
	sum, weight := 0, 2
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	if r := sum % 11; r > 1 {
		return 11 - r
	}
	return 0
}
