// Package wizard holds the multi-step draft state for invoice creation.
// The draft is an explicit, serializable value passed between steps; each
// transition validates its inputs and leaves the draft untouched on
// failure, so a caller can persist or replay a draft at any step.
package wizard

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/optika-erp/optika-core/invoice"
	"github.com/optika-erp/optika-core/payments"
)

// Step identifies where a draft is in the flow.
type Step string

const (
	StepCustomer Step = "customer"
	StepItems    Step = "items"
	StepPayments Step = "payments"
	StepReview   Step = "review"
)

var (
	ErrWrongStep      = errors.New("operation not valid for current step")
	ErrNoLines        = errors.New("at least one line is required")
	ErrShortTender    = errors.New("tendered amount does not cover grand total")
	ErrInvalidPayment = errors.New("payment rows contain invalid amounts")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Customer is the buyer captured in the first step.
type Customer struct {
	Name   string `json:"name" validate:"required"`
	Mobile string `json:"mobile" validate:"required,min=10,max=13"`
	Email  string `json:"email" validate:"omitempty,email"`
	GSTIN  string `json:"gstin" validate:"omitempty,len=15"`
}

// Draft is the wizard state. It serializes cleanly with encoding/json so
// an application shell can stash it between steps.
type Draft struct {
	ID        string           `json:"id"`
	Step      Step             `json:"step"`
	Customer  *Customer        `json:"customer,omitempty"`
	Lines     []invoice.Line   `json:"lines,omitempty"`
	Payments  []payments.Entry `json:"payments,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// SubmitRequest is the JSON-ready body assembled at the end of the flow.
type SubmitRequest struct {
	DraftID       string             `json:"draftId"`
	Customer      Customer           `json:"customer"`
	Lines         []invoice.Line     `json:"lines"`
	Subtotal      float64            `json:"subtotal"`
	TotalDiscount float64            `json:"totalDiscount"`
	TotalGSTValue float64            `json:"totalGstValue"`
	RoundOff      float64            `json:"roundOff"`
	GrandTotal    float64            `json:"grandTotal"`
	Payments      payments.Payload   `json:"payments"`
	Warnings      []payments.Warning `json:"-"`
}

// NewDraft starts a draft at the customer step.
func NewDraft() *Draft {
	return &Draft{
		ID:        uuid.NewString(),
		Step:      StepCustomer,
		CreatedAt: time.Now().UTC(),
	}
}

// SetCustomer records the buyer and advances to the items step.
// Required on entry: a draft at the customer step. Guaranteed on exit:
// Customer is set and valid.
func (d *Draft) SetCustomer(c Customer) error {
	if d.Step != StepCustomer {
		return fmt.Errorf("%w: %s", ErrWrongStep, d.Step)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate customer: %w", err)
	}
	d.Customer = &c
	d.Step = StepItems
	return nil
}

// AddLine appends a billable line. Allowed at the items step and later,
// so a user can go back and adjust the basket before review.
func (d *Draft) AddLine(line invoice.Line) error {
	if d.Step == StepCustomer {
		return fmt.Errorf("%w: %s", ErrWrongStep, d.Step)
	}
	if line.Quantity <= 0 {
		return errors.New("line quantity must be positive")
	}
	if line.UnitPrice < 0 {
		return errors.New("line unit price must not be negative")
	}
	d.Lines = append(d.Lines, line)
	if d.Step == StepReview {
		d.Step = StepPayments
	}
	return nil
}

// CompleteItems closes the basket and advances to the payments step.
// Required on entry: at least one line. Guaranteed on exit: document
// totals are computable.
func (d *Draft) CompleteItems() error {
	if d.Step != StepItems {
		return fmt.Errorf("%w: %s", ErrWrongStep, d.Step)
	}
	if len(d.Lines) == 0 {
		return ErrNoLines
	}
	d.Step = StepPayments
	return nil
}

// AddPayment appends a tender row. Rows are validated in bulk by
// CompletePayments, matching how the form collects them.
func (d *Draft) AddPayment(entry payments.Entry) error {
	if d.Step != StepPayments {
		return fmt.Errorf("%w: %s", ErrWrongStep, d.Step)
	}
	d.Payments = append(d.Payments, entry)
	return nil
}

// CompletePayments checks the tender rows and advances to review.
// Required on entry: every row parses and the tendered total covers the
// grand total. Guaranteed on exit: Submission will succeed.
func (d *Draft) CompletePayments() error {
	if d.Step != StepPayments {
		return fmt.Errorf("%w: %s", ErrWrongStep, d.Step)
	}
	payload, warnings := payments.Build(d.Payments)
	if len(warnings) > 0 {
		return fmt.Errorf("%w: row %d (%s)", ErrInvalidPayment, warnings[0].Index, warnings[0].Reason)
	}
	totals := invoice.CalculateDocument(d.Lines)
	if payload.Total() < totals.GrandTotal {
		return fmt.Errorf("%w: tendered %.2f of %.2f", ErrShortTender, payload.Total(), totals.GrandTotal)
	}
	d.Step = StepReview
	return nil
}

// Submission assembles the request body for the save endpoint. Only valid
// at the review step; the draft itself is left unchanged so the caller can
// retry submission after a network failure.
func (d *Draft) Submission() (SubmitRequest, error) {
	if d.Step != StepReview {
		return SubmitRequest{}, fmt.Errorf("%w: %s", ErrWrongStep, d.Step)
	}
	totals := invoice.CalculateDocument(d.Lines)
	payload, warnings := payments.Build(d.Payments)
	return SubmitRequest{
		DraftID:       d.ID,
		Customer:      *d.Customer,
		Lines:         d.Lines,
		Subtotal:      totals.Subtotal,
		TotalDiscount: totals.TotalDiscount,
		TotalGSTValue: totals.TotalGST,
		RoundOff:      totals.RoundOff,
		GrandTotal:    totals.GrandTotal,
		Payments:      payload,
		Warnings:      warnings,
	}, nil
}
