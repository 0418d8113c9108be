package domain

import "strconv"

// DefaultLaborRate is the monthly labor cost of one worker in INR.
const DefaultLaborRate = 9000

// CalculateROI returns the payback period in months, rounded to two decimals
// with ties to even on the exact binary quotient. Returns nil when
// monthlySavings is zero.
func CalculateROI(machineCost, monthlySavings float64) *float64 {
	if monthlySavings == 0 {
		return nil
	}
	months := roundCents(machineCost / monthlySavings)
	return &months
}

func roundCents(x float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return r
}
