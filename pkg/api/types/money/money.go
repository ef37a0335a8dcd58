// Package money converts between stored cents and wire decimal dollars.
//
// Prices are stored as integer cents; the JSON API shows decimal dollars,
// as the storefront UI expects.
package money

import "math"

func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

func ToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
