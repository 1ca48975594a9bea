package main

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(10_000_000)

// recordInput carries the client-supplied fields of a record. Amount
// pointers distinguish a missing field from an explicit zero; decimal
// accepts JSON numbers or strings.
type recordInput struct {
	Name            string           `json:"name"`
	Contact         string           `json:"contact"`
	TotalAmount     *decimal.Decimal `json:"totalAmount"`
	RemainingAmount *decimal.Decimal `json:"remainingAmount"`
	Date            string           `json:"date"`
}

// validRecord holds record fields after validation, ready to persist.
type validRecord struct {
	Name            string
	Contact         string
	TotalAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	Date            time.Time
}

type validationError struct {
	reason string
}

func (e *validationError) Error() string { return e.reason }

func errValidation(reason string) error { return &validationError{reason: reason} }

// validateRecordInput checks field constraints and the balance rule without
// touching storage. It runs before every write; any failure aborts the write
// with no partial state.
func validateRecordInput(in recordInput, now time.Time) (validRecord, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return validRecord{}, errValidation("Name is required")
	}
	if len(name) > 100 {
		return validRecord{}, errValidation("Name cannot exceed 100 characters")
	}
	contact := strings.TrimSpace(in.Contact)
	if contact == "" {
		return validRecord{}, errValidation("Contact is required")
	}
	if len(contact) > 20 {
		return validRecord{}, errValidation("Contact cannot exceed 20 characters")
	}
	if in.TotalAmount == nil {
		return validRecord{}, errValidation("Total amount is required")
	}
	if in.RemainingAmount == nil {
		return validRecord{}, errValidation("Remaining amount is required")
	}
	total := *in.TotalAmount
	remaining := *in.RemainingAmount
	if total.IsNegative() || remaining.IsNegative() {
		return validRecord{}, errValidation("Amounts cannot be negative")
	}
	if total.GreaterThan(maxAmount) || remaining.GreaterThan(maxAmount) {
		return validRecord{}, errValidation("Amount too large")
	}
	if remaining.GreaterThan(total) {
		return validRecord{}, errValidation("Remaining amount cannot be greater than total amount")
	}
	if strings.TrimSpace(in.Date) == "" {
		return validRecord{}, errValidation("Date is required")
	}
	date, err := parseRecordDate(in.Date)
	if err != nil {
		return validRecord{}, errValidation("Invalid date")
	}
	if date.After(now) {
		return validRecord{}, errValidation("Date cannot be in the future")
	}
	return validRecord{
		Name:            name,
		Contact:         contact,
		TotalAmount:     total,
		RemainingAmount: remaining,
		Date:            date,
	}, nil
}

// parseRecordDate accepts a plain calendar date or a full RFC 3339 timestamp.
func parseRecordDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
