package util

import "math"

// RupeesToPaise converts a rupee amount from the API into whole paise,
// rounding to the nearest paisa.
func RupeesToPaise(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}

// PaiseToRupees converts stored paise back to the rupee amount used on
// the wire.
func PaiseToRupees(paise int64) float64 {
	return float64(paise) / 100.0
}
