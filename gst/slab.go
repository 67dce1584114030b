package gst

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Slab is one tier of a purchase-tax slab table. SlabEnd is the
// tax-inclusive upper price boundary of the tier; SalesTaxPercent is the
// rate used to normalize that boundary back to a pre-tax figure before
// comparing it against a buying price.
type Slab struct {
	ID                 string  `json:"slabId"`
	SlabEnd            float64 `json:"slabEnd"`
	SalesTaxPercent    float64 `json:"salesTaxPercent"`
	PurchaseTaxPercent float64 `json:"purchaseTaxPercent"`
}

// SlabResult reports which slab matched a price and the tax it produces.
// SlabID is empty when no slab table was supplied.
type SlabResult struct {
	GSTAmount  float64 `json:"gstAmount"`
	SlabID     string  `json:"slabId,omitempty"`
	TaxPercent float64 `json:"taxPercent"`
}

// ResolveSlab picks the applicable purchase-tax slab for a transfer/buying
// price and returns the resulting tax amount.
//
// Slabs are evaluated in the given order. Each slab's ceiling is normalized
// to a pre-tax boundary (slabEnd / (1 + salesTax/100)); the first slab whose
// normalized ceiling is >= price wins. A price beyond every ceiling falls
// back to the last slab. A single-slab table applies its rate unconditionally.
func ResolveSlab(slabs []Slab, price float64) SlabResult {
	if len(slabs) == 0 || !isFinite(price) {
		return SlabResult{}
	}
	if len(slabs) == 1 {
		return apply(slabs[0], price)
	}
	for _, slab := range slabs {
		if !isFinite(slab.SlabEnd) {
			continue
		}
		divisor := 1 + slab.SalesTaxPercent/100
		if divisor <= 0 {
			continue
		}
		if price <= slab.SlabEnd/divisor {
			return apply(slab, price)
		}
	}
	return apply(slabs[len(slabs)-1], price)
}

func apply(slab Slab, price float64) SlabResult {
	pct := slab.PurchaseTaxPercent
	if !isFinite(pct) {
		pct = 0
	}
	return SlabResult{
		GSTAmount:  Round2(price * pct / 100),
		SlabID:     slab.ID,
		TaxPercent: Round2(pct),
	}
}

// ValidateSlabs checks a slab table as received from the tax master.
// It is advisory: ResolveSlab tolerates malformed tables and never calls it.
func ValidateSlabs(slabs []Slab) error {
	if len(slabs) == 0 {
		return errors.New("slab table is empty")
	}
	prevEnd := math.Inf(-1)
	for i, slab := range slabs {
		if strings.TrimSpace(slab.ID) == "" {
			return fmt.Errorf("slab %d: id is required", i)
		}
		if !isFinite(slab.SlabEnd) || slab.SlabEnd <= 0 {
			return fmt.Errorf("slab %d: slab end must be a positive amount", i)
		}
		if slab.SalesTaxPercent < 0 || slab.SalesTaxPercent > 100 {
			return fmt.Errorf("slab %d: sales tax must be between 0 and 100", i)
		}
		if slab.PurchaseTaxPercent < 0 || slab.PurchaseTaxPercent > 100 {
			return fmt.Errorf("slab %d: purchase tax must be between 0 and 100", i)
		}
		if slab.SlabEnd <= prevEnd {
			return fmt.Errorf("slab %d: slab ends must be strictly increasing", i)
		}
		prevEnd = slab.SlabEnd
	}
	return nil
}
