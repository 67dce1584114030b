// Package payments turns the payment rows collected by a form into the
// aggregated payload the backend expects on invoice, vendor-payment and
// customer-payment submissions. Rows arrive with free-text type labels and
// free-text amounts; aggregation groups them by canonical type and keeps
// type-specific metadata.
package payments

import "time"

// Canonical payment type keys. The set is open: labels outside this list
// are lower-cased and used as-is so a new tender type on the backend does
// not need a client change.
const (
	TypeCash        = "cash"
	TypeCard        = "card"
	TypeUPI         = "upi"
	TypeCheque      = "cheque"
	TypeBank        = "bank"
	TypeAdvance     = "advance"
	TypeGiftVoucher = "giftVoucher"
)

// EMI describes an instalment plan attached to a card payment.
type EMI struct {
	Enabled bool   `json:"enabled"`
	Months  string `json:"months"`
	Bank    string `json:"bank"`
}

// Entry is one payment row as captured by the form. Type and Amount are
// free text; everything else is optional metadata for the row's tender type.
type Entry struct {
	Type             string     `json:"type"`
	Amount           string     `json:"amount"`
	ReferenceNo      string     `json:"referenceNo,omitempty"`
	PaymentMachineID string     `json:"paymentMachineId,omitempty"`
	BankMasterID     string     `json:"bankMasterId,omitempty"`
	ChequeNumber     string     `json:"chequeNumber,omitempty"`
	ChequeDate       *time.Time `json:"chequeDate,omitempty"`
	BankAccountID    *string    `json:"bankAccountId,omitempty"`
	EMI              *EMI       `json:"emi,omitempty"`
	GVCode           string     `json:"gvCode,omitempty"`
	AdvanceID        string     `json:"advanceId,omitempty"`
}

// CardBucket aggregates card rows. Metadata is last-write-wins.
type CardBucket struct {
	Amount           float64 `json:"amount"`
	PaymentMachineID string  `json:"paymentMachineId"`
	ApprovalCode     string  `json:"approvalCode"`
	EMIEnabled       bool    `json:"emiEnabled,omitempty"`
	EMIMonths        int     `json:"emiMonths,omitempty"`
	EMIBank          string  `json:"emiBank,omitempty"`
}

// UPIBucket aggregates UPI rows.
type UPIBucket struct {
	Amount           float64 `json:"amount"`
	PaymentMachineID string  `json:"paymentMachineId"`
}

// ChequeBucket aggregates cheque rows. ChequeDate is YYYY-MM-DD or null.
type ChequeBucket struct {
	Amount       float64 `json:"amount"`
	BankMasterID string  `json:"bankMasterId"`
	ChequeNumber string  `json:"chequeNumber"`
	ChequeDate   *string `json:"chequeDate"`
}

// BankBucket aggregates bank-transfer rows.
type BankBucket struct {
	Amount        float64 `json:"amount"`
	BankAccountID *string `json:"bankAccountId"`
	ReferenceNo   string  `json:"referenceNo"`
}

// GiftVoucherBucket aggregates gift-voucher rows.
type GiftVoucherBucket struct {
	Amount float64 `json:"amount"`
	GVCode *string `json:"gvCode"`
}

// AdvanceBucket aggregates customer-advance rows. Every referenced advance
// is kept; collapsing to a single id would lose references when a customer
// redeems more than one advance in a sale.
type AdvanceBucket struct {
	Amount     float64  `json:"amount"`
	AdvanceIDs []string `json:"advanceIds"`
}

// Bucket carries amount-only aggregation for tender types the client does
// not know about.
type Bucket struct {
	Amount float64 `json:"amount"`
}

// Payload maps canonical type keys to their aggregated buckets. Cash is a
// plain running total; every other key holds a typed bucket pointer.
type Payload map[string]any

// Total sums the cash scalar and every bucket amount. For any input list
// with parseable amounts this equals the sum of the input amounts.
func (p Payload) Total() float64 {
	var total float64
	for _, v := range p {
		switch b := v.(type) {
		case float64:
			total += b
		case *CardBucket:
			total += b.Amount
		case *UPIBucket:
			total += b.Amount
		case *ChequeBucket:
			total += b.Amount
		case *BankBucket:
			total += b.Amount
		case *GiftVoucherBucket:
			total += b.Amount
		case *AdvanceBucket:
			total += b.Amount
		case *Bucket:
			total += b.Amount
		}
	}
	return total
}

// Warning reports a payment row that was left out of the payload.
type Warning struct {
	Index  int    `json:"index"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}
