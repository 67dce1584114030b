// Package invoice computes line and document totals for sales invoices,
// purchase returns and stock transfers. Unit prices are tax-inclusive, so
// GST is extracted from the discounted figure rather than added on top.
package invoice

import (
	"math"

	"github.com/optika-erp/optika-core/gst"
)

// Line is one billable row of a document. FittingPrice is the lens-fitting
// charge for optical lines; it joins the GST base together with the unit
// price.
type Line struct {
	Description     string  `json:"description"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	DiscountPercent float64 `json:"discountPercent"`
	TaxPercent      float64 `json:"taxPercent"`
	FittingPrice    float64 `json:"fittingPrice,omitempty"`
}

// LineTotals breaks a line down into its money components. Total equals
// Net; GST is the portion of Net already embedded as tax.
type LineTotals struct {
	Gross    float64 `json:"gross"`
	Discount float64 `json:"discount"`
	Net      float64 `json:"net"`
	GST      float64 `json:"gst"`
	Total    float64 `json:"total"`
}

// DocumentTotals aggregates line totals. GrandTotal is rounded to the
// nearest rupee; RoundOff is the adjustment applied to get there.
type DocumentTotals struct {
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"totalDiscount"`
	TotalGST      float64 `json:"totalGstValue"`
	RoundOff      float64 `json:"roundOff"`
	GrandTotal    float64 `json:"grandTotal"`
}

// CalculateLine computes the totals for a single line. Invalid numeric
// input yields zero totals.
func CalculateLine(line Line) LineTotals {
	gross := line.Quantity*line.UnitPrice + line.FittingPrice
	if math.IsNaN(gross) || math.IsInf(gross, 0) {
		return LineTotals{}
	}
	discount := gross * line.DiscountPercent / 100
	if math.IsNaN(discount) || math.IsInf(discount, 0) {
		discount = 0
	}
	net := gross - discount
	tax := gst.Calculate(net, line.TaxPercent)
	return LineTotals{
		Gross:    gst.Round2(gross),
		Discount: gst.Round2(discount),
		Net:      gst.Round2(net),
		GST:      tax.GSTAmount,
		Total:    gst.Round2(net),
	}
}

// CalculateDocument sums line totals and applies rupee rounding.
func CalculateDocument(lines []Line) DocumentTotals {
	var doc DocumentTotals
	for _, line := range lines {
		totals := CalculateLine(line)
		doc.Subtotal += totals.Gross
		doc.TotalDiscount += totals.Discount
		doc.TotalGST += totals.GST
		doc.GrandTotal += totals.Total
	}
	doc.Subtotal = gst.Round2(doc.Subtotal)
	doc.TotalDiscount = gst.Round2(doc.TotalDiscount)
	doc.TotalGST = gst.Round2(doc.TotalGST)
	exact := gst.Round2(doc.GrandTotal)
	doc.GrandTotal = math.Round(exact)
	doc.RoundOff = gst.Round2(doc.GrandTotal - exact)
	return doc
}
