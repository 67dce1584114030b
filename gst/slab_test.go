package gst

import (
	"math"
	"testing"
)

func slabTable() []Slab {
	return []Slab{
		{ID: "slab-1", SlabEnd: 100, SalesTaxPercent: 18, PurchaseTaxPercent: 18},
		{ID: "slab-2", SlabEnd: 500, SalesTaxPercent: 18, PurchaseTaxPercent: 12},
	}
}

func TestResolveSlabFirstMatchWins(t *testing.T) {
	// 100/1.18 = 84.74, so 80 lands in the first slab.
	got := ResolveSlab(slabTable(), 80)
	if got.SlabID != "slab-1" {
		t.Fatalf("expected slab-1 got %q", got.SlabID)
	}
	if got.TaxPercent != 18 {
		t.Fatalf("expected 18%% got %.2f", got.TaxPercent)
	}
	if got.GSTAmount != 14.4 {
		t.Fatalf("expected 14.40 got %.2f", got.GSTAmount)
	}
}

func TestResolveSlabFallsBackToLastSlab(t *testing.T) {
	got := ResolveSlab(slabTable(), 1000)
	if got.SlabID != "slab-2" {
		t.Fatalf("expected last slab got %q", got.SlabID)
	}
	if got.TaxPercent != 12 {
		t.Fatalf("expected 12%% got %.2f", got.TaxPercent)
	}
	if got.GSTAmount != 120 {
		t.Fatalf("expected 120.00 got %.2f", got.GSTAmount)
	}
}

func TestResolveSlabSingleSlabShortcut(t *testing.T) {
	slabs := []Slab{{ID: "only", SlabEnd: 10, PurchaseTaxPercent: 5}}
	got := ResolveSlab(slabs, 99999)
	if got.SlabID != "only" || got.TaxPercent != 5 {
		t.Fatalf("expected unconditional 5%% got %+v", got)
	}
	if got.GSTAmount != 4999.95 {
		t.Fatalf("expected 4999.95 got %.2f", got.GSTAmount)
	}
}

func TestResolveSlabEmptyTable(t *testing.T) {
	got := ResolveSlab(nil, 500)
	if got.GSTAmount != 0 || got.SlabID != "" || got.TaxPercent != 0 {
		t.Fatalf("expected zero result got %+v", got)
	}
}

func TestResolveSlabSkipsInvalidCeiling(t *testing.T) {
	slabs := []Slab{
		{ID: "bad", SlabEnd: math.NaN(), SalesTaxPercent: 18, PurchaseTaxPercent: 28},
		{ID: "good", SlabEnd: 5000, SalesTaxPercent: 18, PurchaseTaxPercent: 12},
	}
	got := ResolveSlab(slabs, 100)
	if got.SlabID != "good" {
		t.Fatalf("expected invalid ceiling to be skipped, matched %q", got.SlabID)
	}
}

func TestValidateSlabs(t *testing.T) {
	if err := ValidateSlabs(slabTable()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateSlabs(nil); err == nil {
		t.Fatalf("expected error for empty table")
	}
	decreasing := []Slab{
		{ID: "a", SlabEnd: 500, SalesTaxPercent: 18, PurchaseTaxPercent: 18},
		{ID: "b", SlabEnd: 100, SalesTaxPercent: 18, PurchaseTaxPercent: 12},
	}
	if err := ValidateSlabs(decreasing); err == nil {
		t.Fatalf("expected error for non-increasing slab ends")
	}
	badRate := []Slab{{ID: "a", SlabEnd: 100, SalesTaxPercent: 120, PurchaseTaxPercent: 18}}
	if err := ValidateSlabs(badRate); err == nil {
		t.Fatalf("expected error for out-of-range rate")
	}
}
