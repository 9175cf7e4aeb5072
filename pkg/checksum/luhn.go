package checksum

import "strings"

// Luhn validates a payment card number using the Luhn mod-10 algorithm.
// Spaces are stripped before validation; the remaining string must be all
// digits and between 8 and 19 characters long.
func Luhn(value string) bool {
	cleaned := strings.ReplaceAll(value, " ", "")

	if len(cleaned) < 8 || len(cleaned) > 19 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}

	sum := 0
	double := false

	// Process digits from right to left, doubling every second one.
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')

		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}
