// Package gst holds the tax arithmetic shared by invoice, purchase-return
// and stock-transfer flows. All prices handled here are tax-inclusive: the
// calculator extracts the GST component already embedded in a stated price,
// it never adds tax on top.
package gst

import "math"

// Breakdown is the tax component extracted from a tax-inclusive price.
type Breakdown struct {
	GSTAmount  float64 `json:"gstAmount"`
	TaxPercent float64 `json:"taxPercent"`
}

// Calculate derives the embedded GST from a tax-inclusive price.
// Invalid numeric input (NaN, Inf) yields a zero breakdown; the function
// never panics so it is safe to call from render paths.
func Calculate(taxInclusivePrice, taxPercent float64) Breakdown {
	if !isFinite(taxInclusivePrice) || !isFinite(taxPercent) {
		return Breakdown{}
	}
	divisor := 1 + taxPercent/100
	if divisor <= 0 {
		return Breakdown{TaxPercent: Round2(taxPercent)}
	}
	amount := taxInclusivePrice - taxInclusivePrice/divisor
	return Breakdown{
		GSTAmount:  Round2(amount),
		TaxPercent: Round2(taxPercent),
	}
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
