// Package mathutil holds the rounding rules used for estimate quantities and
// yen amounts. All rounding is half-up on exact decimal values.
package mathutil

import (
	"math"

	"github.com/shopspring/decimal"
)

// QuantityPlaces is the number of decimals kept for physical quantities.
const QuantityPlaces = 2

// Upper bounds for amounts taken from outside. A line at MaxQuantity and
// MaxUnitPrice stays well inside int64 yen.
const (
	MaxQuantity  = 1e6
	MaxUnitPrice = 1e9
	MaxAmount    = 1e15
)

var maxAmount = decimal.NewFromInt(MaxAmount)

// Yen rounds a decimal amount to whole yen.
func Yen(v decimal.Decimal) int64 {
	return v.Round(0).IntPart()
}

// RoundYen rounds a float amount to whole yen.
func RoundYen(v float64) int64 {
	return Yen(decimal.NewFromFloat(v))
}

// LineTotal returns round(quantity * unitPrice) without float error.
func LineTotal(quantity float64, unitPrice int64) int64 {
	return Yen(decimal.NewFromFloat(quantity).Mul(decimal.NewFromInt(unitPrice)))
}

// RoundQuantity rounds a quantity to QuantityPlaces decimals.
func RoundQuantity(v float64) float64 {
	return decimal.NewFromFloat(v).Round(QuantityPlaces).InexactFloat64()
}

// WithinAmount reports whether round(v) is a non-negative yen amount no
// larger than MaxAmount.
func WithinAmount(v decimal.Decimal) bool {
	v = v.Round(0)
	return !v.IsNegative() && v.LessThanOrEqual(maxAmount)
}

// IsFiniteNonNegative reports whether v can be used as a quantity or price.
func IsFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
