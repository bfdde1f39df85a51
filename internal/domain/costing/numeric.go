// Package costing holds the pure cost-estimation computations: numeric
// coercion, the totals engine, and the plan normalizer that shields the
// engine from untrusted oracle output.
package costing

import "math"

// Bounds shared by the normalizer and the totals engine. Quantities and
// monetary values have no business upper bound; the caps only keep broken
// oracle output from overflowing downstream arithmetic.
const (
	MaxQuantity        = 1e9
	MaxMonths          = 1e4
	MaxDedication      = 2
	MaxMoney           = 1e13
	MaxPresupuestoFijo = 1e15

	MinFactorPrestacional = 1.0
	MaxFactorPrestacional = 3.0
	MaxImprevistosPct     = 40
	MaxMargenPct          = 100
)

// CoerceNumber converts v into a finite number clamped to [min, max].
// Non-finite input yields fallback. It never fails: malformed numeric
// input from an untrusted oracle or user must not abort a computation.
func CoerceNumber(v, min, max, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = fallback
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// RoundMoney rounds to the nearest whole currency unit. Non-finite input
// maps to 0.
func RoundMoney(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v)
}

// roundPct rounds a percentage to 2 decimal places.
func roundPct(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}
