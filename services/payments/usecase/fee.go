package usecase

import (
	"math"
)

// Platform fee schedule, in minor currency units
const (
	// FeePercentage is the variable platform fee applied to every charge
	FeePercentage = 0.025

	// FeeFixed is the flat per-charge fee (KSh 20)
	FeeFixed = 2000

	// MinChargeAmount is the smallest chargeable amount (KSh 1)
	MinChargeAmount = 100
)

// CalculateFee computes the platform fee for a charge amount. The
// percentage part rounds half away from zero before the fixed part is
// added.
func CalculateFee(amount int64) int64 {
	return int64(math.Round(float64(amount)*FeePercentage)) + FeeFixed
}
