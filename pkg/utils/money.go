package utils

import (
	"math"
	"strconv"
)

// RoundMoney rounds a monetary amount to 2 decimal places using
// round-half-away-from-zero. All financial figures in the system
// (line items, tax, totals) go through this so that invoice line
// sums reconcile with header totals.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatMoney formats a monetary amount with exactly 2 decimal places,
// e.g. 1150 -> "1150.00". Used for the invoice QR payload and hash
// input, where the textual representation is part of the contract.
func FormatMoney(amount float64) string {
	return strconv.FormatFloat(RoundMoney(amount), 'f', 2, 64)
}
