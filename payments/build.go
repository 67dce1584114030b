package payments

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// CanonicalType normalizes a free-text tender label to its payload key.
// Unrecognized labels are lower-cased and passed through unchanged.
func CanonicalType(label string) string {
	normalized := strings.ToLower(strings.TrimSpace(label))
	switch normalized {
	case "bank transfer", "bank":
		return TypeBank
	case "cheque":
		return TypeCheque
	case "upi":
		return TypeUPI
	case "card":
		return TypeCard
	case "cash":
		return TypeCash
	case "advance":
		return TypeAdvance
	case "gift voucher", "giftvoucher":
		return TypeGiftVoucher
	default:
		return normalized
	}
}

// Build aggregates payment rows into the submission payload. Rows whose
// amount does not parse are left out of the payload and reported as
// warnings; the caller decides whether warnings block submission.
//
// Amounts accumulate per type; metadata is last-write-wins within a type,
// except advance ids which accumulate.
func Build(entries []Entry) (Payload, []Warning) {
	payload := make(Payload)
	var warnings []Warning

	for i, entry := range entries {
		amount, err := cast.ToFloat64E(strings.TrimSpace(entry.Amount))
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			warnings = append(warnings, Warning{
				Index:  i,
				Type:   entry.Type,
				Reason: "amount is not a number",
			})
			continue
		}

		key := CanonicalType(entry.Type)
		switch key {
		case TypeCash:
			current, _ := payload[TypeCash].(float64)
			payload[TypeCash] = current + amount
		case TypeCard:
			bucket, _ := payload[TypeCard].(*CardBucket)
			if bucket == nil {
				bucket = &CardBucket{}
				payload[TypeCard] = bucket
			}
			bucket.Amount += amount
			bucket.PaymentMachineID = entry.PaymentMachineID
			bucket.ApprovalCode = entry.ReferenceNo
			bucket.EMIEnabled = false
			bucket.EMIMonths = 0
			bucket.EMIBank = ""
			if entry.EMI != nil && entry.EMI.Enabled {
				bucket.EMIEnabled = true
				bucket.EMIMonths, _ = cast.ToIntE(strings.TrimSpace(entry.EMI.Months))
				bucket.EMIBank = entry.EMI.Bank
			}
		case TypeUPI:
			bucket, _ := payload[TypeUPI].(*UPIBucket)
			if bucket == nil {
				bucket = &UPIBucket{}
				payload[TypeUPI] = bucket
			}
			bucket.Amount += amount
			bucket.PaymentMachineID = entry.PaymentMachineID
		case TypeCheque:
			bucket, _ := payload[TypeCheque].(*ChequeBucket)
			if bucket == nil {
				bucket = &ChequeBucket{}
				payload[TypeCheque] = bucket
			}
			bucket.Amount += amount
			bucket.BankMasterID = entry.BankMasterID
			bucket.ChequeNumber = entry.ChequeNumber
			bucket.ChequeDate = nil
			if entry.ChequeDate != nil {
				formatted := entry.ChequeDate.Format("2006-01-02")
				bucket.ChequeDate = &formatted
			}
		case TypeBank:
			bucket, _ := payload[TypeBank].(*BankBucket)
			if bucket == nil {
				bucket = &BankBucket{}
				payload[TypeBank] = bucket
			}
			bucket.Amount += amount
			bucket.BankAccountID = entry.BankAccountID
			bucket.ReferenceNo = entry.ReferenceNo
		case TypeGiftVoucher:
			bucket, _ := payload[TypeGiftVoucher].(*GiftVoucherBucket)
			if bucket == nil {
				bucket = &GiftVoucherBucket{}
				payload[TypeGiftVoucher] = bucket
			}
			bucket.Amount += amount
			bucket.GVCode = nil
			if entry.GVCode != "" {
				code := entry.GVCode
				bucket.GVCode = &code
			}
		case TypeAdvance:
			bucket, _ := payload[TypeAdvance].(*AdvanceBucket)
			if bucket == nil {
				bucket = &AdvanceBucket{}
				payload[TypeAdvance] = bucket
			}
			bucket.Amount += amount
			if entry.AdvanceID != "" {
				bucket.AdvanceIDs = append(bucket.AdvanceIDs, entry.AdvanceID)
			}
		default:
			bucket, _ := payload[key].(*Bucket)
			if bucket == nil {
				bucket = &Bucket{}
				payload[key] = bucket
			}
			bucket.Amount += amount
		}
	}

	return payload, warnings
}
