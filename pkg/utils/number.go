package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// PercentIncrease returns the rounded percentage growth of current over
// previous. A zero previous value yields 0 instead of dividing by zero.
func PercentIncrease(current, previous float64) int {
	if previous == 0 {
		return 0
	}

	return int(math.Round((current - previous) / previous * 100))
}
