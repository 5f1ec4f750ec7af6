// Package luhn implements the Luhn (mod 10) checksum used by payment card
// numbers.
//
// The empty digit sequence sums to zero and is therefore reported as valid.
// Callers that need a non-empty number must check that separately.
package luhn

import (
	"cardvalidator/pkg/serrors"
)

// ParseDigits converts a string of ASCII digits into their numeric values,
// left to right as displayed. Any other character is rejected with
// serrors.ErrInvalidInput so that an upstream filtering bug stays visible.
func ParseDigits(number string) ([]int, error) {
	digits := make([]int, len(number))
	for i := 0; i < len(number); i++ {
		c := number[i]
		if c < '0' || c > '9' {
			return nil, serrors.With(serrors.ErrInvalidInput, "non-digit character %q at position %d", c, i)
		}
		digits[i] = int(c - '0')
	}

	return digits, nil
}

// Valid reports whether digits satisfy the Luhn checksum. Every second digit
// counting from the rightmost one is doubled, with 9 subtracted when the
// product exceeds 9, and the total must be a multiple of 10.
func Valid(digits []int) bool {
	sum := 0
	n := len(digits)
	for i := 0; i < n; i++ {
		digit := digits[n-i-1]
		if i%2 == 1 {
			digit *= 2
		}
		if digit > 9 {
			digit -= 9
		}
		sum += digit
	}

	return sum%10 == 0
}

// Check parses number and validates its checksum.
func Check(number string) (bool, error) {
	digits, err := ParseDigits(number)
	if err != nil {
		return false, err
	}

	return Valid(digits), nil
}
