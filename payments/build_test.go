package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildAccumulatesCash(t *testing.T) {
	payload, warnings := Build([]Entry{
		{Type: "Cash", Amount: "500"},
		{Type: "Cash", Amount: "300"},
	})
	require.Empty(t, warnings)
	require.Len(t, payload, 1)
	require.Equal(t, 800.0, payload[TypeCash])
}

func TestBuildDropsUnparseableAmount(t *testing.T) {
	payload, warnings := Build([]Entry{{Type: "UPI", Amount: "abc"}})
	require.Empty(t, payload)
	require.Len(t, warnings, 1)
	require.Equal(t, 0, warnings[0].Index)
	require.Equal(t, "UPI", warnings[0].Type)
}

func TestBuildChequeLastWriteWins(t *testing.T) {
	first := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	payload, warnings := Build([]Entry{
		{Type: "Cheque", Amount: "100", ChequeNumber: "000111", BankMasterID: "hdfc", ChequeDate: &first},
		{Type: "Cheque", Amount: "200", ChequeNumber: "000222", BankMasterID: "icici", ChequeDate: &second},
	})
	require.Empty(t, warnings)
	bucket, ok := payload[TypeCheque].(*ChequeBucket)
	require.True(t, ok)
	require.Equal(t, 300.0, bucket.Amount)
	require.Equal(t, "000222", bucket.ChequeNumber)
	require.Equal(t, "icici", bucket.BankMasterID)
	require.NotNil(t, bucket.ChequeDate)
	require.Equal(t, "2026-03-15", *bucket.ChequeDate)
}

func TestBuildConservesTotals(t *testing.T) {
	account := "acct-9"
	payload, warnings := Build([]Entry{
		{Type: "Cash", Amount: "150.50"},
		{Type: "Card", Amount: "1000", PaymentMachineID: "pm-1", ReferenceNo: "APPR01"},
		{Type: "UPI", Amount: "249.50", PaymentMachineID: "pm-2"},
		{Type: "Bank Transfer", Amount: "600", BankAccountID: &account, ReferenceNo: "NEFT123"},
		{Type: "Gift Voucher", Amount: "100", GVCode: "GV-77"},
		{Type: "Advance", Amount: "400", AdvanceID: "adv-1"},
		{Type: "Advance", Amount: "100", AdvanceID: "adv-2"},
	})
	require.Empty(t, warnings)
	require.InDelta(t, 2600.0, payload.Total(), 0.001)

	advance, ok := payload[TypeAdvance].(*AdvanceBucket)
	require.True(t, ok)
	require.Equal(t, 500.0, advance.Amount)
	require.Equal(t, []string{"adv-1", "adv-2"}, advance.AdvanceIDs)

	bank, ok := payload[TypeBank].(*BankBucket)
	require.True(t, ok)
	require.Equal(t, "NEFT123", bank.ReferenceNo)
	require.Equal(t, &account, bank.BankAccountID)
}

func TestBuildConservationWithSkippedEntry(t *testing.T) {
	payload, warnings := Build([]Entry{
		{Type: "Cash", Amount: "100"},
		{Type: "Card", Amount: "not-a-number"},
		{Type: "Card", Amount: "250"},
	})
	require.Len(t, warnings, 1)
	require.Equal(t, 1, warnings[0].Index)
	require.InDelta(t, 350.0, payload.Total(), 0.001)
}

func TestBuildCardEMI(t *testing.T) {
	payload, warnings := Build([]Entry{{
		Type:             "Card",
		Amount:           "12000",
		PaymentMachineID: "pm-3",
		ReferenceNo:      "APPR99",
		EMI:              &EMI{Enabled: true, Months: "6", Bank: "HDFC"},
	}})
	require.Empty(t, warnings)
	card, ok := payload[TypeCard].(*CardBucket)
	require.True(t, ok)
	require.True(t, card.EMIEnabled)
	require.Equal(t, 6, card.EMIMonths)
	require.Equal(t, "HDFC", card.EMIBank)
	require.Equal(t, "APPR99", card.ApprovalCode)
}

func TestBuildUnrecognizedTypePassesThrough(t *testing.T) {
	payload, warnings := Build([]Entry{{Type: "Store Credit", Amount: "75"}})
	require.Empty(t, warnings)
	bucket, ok := payload["store credit"].(*Bucket)
	require.True(t, ok)
	require.Equal(t, 75.0, bucket.Amount)
}

func TestCanonicalType(t *testing.T) {
	cases := map[string]string{
		"Bank Transfer": TypeBank,
		"CHEQUE":        TypeCheque,
		"upi":           TypeUPI,
		" Cash ":        TypeCash,
		"Gift Voucher":  TypeGiftVoucher,
		"Advance":       TypeAdvance,
		"Wallet":        "wallet",
	}
	for label, want := range cases {
		require.Equal(t, want, CanonicalType(label), "label %q", label)
	}
}
