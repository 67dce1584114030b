// Package display maps raw entity codes to the human-readable strings the
// pages render. Everything here is deterministic string formatting; no
// business rules live in this package.
package display

import (
	"fmt"
	"strings"
)

// Product type codes as stored on stock and price-master rows.
const (
	ProductOpticalLens = 0
	ProductFrame       = 1
	ProductAccessory   = 2
	ProductContactLens = 3
)

// Product carries the fields the pages combine into a display label.
type Product struct {
	ProductType int
	Brand       string
	Model       string
	Colour      string
	Size        string
	Coating     string
	Index       string
	Power       string
	BatchCode   string
}

// ProductTypeName resolves a product type code to its display name.
func ProductTypeName(code int) string {
	switch code {
	case ProductOpticalLens:
		return "Optical Lens"
	case ProductFrame:
		return "Frame"
	case ProductAccessory:
		return "Accessory"
	case ProductContactLens:
		return "Contact Lens"
	default:
		return "Unknown"
	}
}

// ProductName builds the multi-line label shown in line-item tables:
// the first line identifies the product, the second its type-specific
// attributes. Empty fields are omitted.
func ProductName(p Product) string {
	head := joinNonEmpty(" ", p.Brand, p.Model)
	if head == "" {
		head = ProductTypeName(p.ProductType)
	}
	var detail string
	switch p.ProductType {
	case ProductOpticalLens:
		detail = joinNonEmpty(" | ", p.Coating, indexLabel(p.Index), powerLabel(p.Power))
	case ProductFrame:
		detail = joinNonEmpty(" | ", p.Colour, sizeLabel(p.Size))
	case ProductContactLens:
		detail = joinNonEmpty(" | ", powerLabel(p.Power), batchLabel(p.BatchCode))
	}
	if detail == "" {
		return head
	}
	return head + "\n" + detail
}

// OrderStatus resolves an order status code to its display name.
func OrderStatus(code int) string {
	switch code {
	case 0:
		return "Pending"
	case 1:
		return "In Process"
	case 2:
		return "Ready"
	case 3:
		return "Delivered"
	case 4:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, strings.TrimSpace(part))
		}
	}
	return strings.Join(kept, sep)
}

func indexLabel(index string) string {
	if index == "" {
		return ""
	}
	return "Index " + index
}

func powerLabel(power string) string {
	if power == "" {
		return ""
	}
	return "Power " + power
}

func sizeLabel(size string) string {
	if size == "" {
		return ""
	}
	return fmt.Sprintf("Size %s", size)
}

func batchLabel(batch string) string {
	if batch == "" {
		return ""
	}
	return "Batch " + batch
}
