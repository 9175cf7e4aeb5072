package sanitize

import (
	"math"
	"strconv"
)

// RoundTo rounds a floating-point number to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	if places < 0 {
		places = 0
	}

	multiplier := math.Pow(10, float64(places))
	return math.Round(value*multiplier) / multiplier
}

// Ceil rounds a floating-point number up to the nearest integer.
func Ceil(value float64) float64 {
	return math.Ceil(value)
}

// Floor rounds a floating-point number down to the nearest integer.
func Floor(value float64) float64 {
	return math.Floor(value)
}

// Decimal normalizes a number to a fixed-point string with the given number
// of decimal places, e.g. Decimal(1.5, 2) == "1.50".
func Decimal(value float64, places int) string {
	if places < 0 {
		places = 0
	}
	return strconv.FormatFloat(value, 'f', places, 64)
}
