// Package loan computes the figures shown on the calculator page.
package loan

import "math"

// Quote is the result of one calculator run.
type Quote struct {
	Monthly       int64
	TotalPayment  int64
	TotalInterest int64
}

// Calculate amortizes principal over months at the given annual percentage
// rate. A zero rate degenerates to an even split; non-positive inputs yield a
// zero quote.
func Calculate(principal int64, annualRatePct float64, months int) Quote {
	if principal <= 0 || months <= 0 || annualRatePct < 0 {
		return Quote{}
	}

	var monthly float64
	if annualRatePct == 0 {
		monthly = float64(principal) / float64(months)
	} else {
		r := annualRatePct / 12 / 100
		monthly = float64(principal) * r / (1 - math.Pow(1+r, -float64(months)))
	}

	rounded := int64(math.Round(monthly))
	total := rounded * int64(months)
	return Quote{
		Monthly:       rounded,
		TotalPayment:  total,
		TotalInterest: total - principal,
	}
}
