package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var validateNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func baseInput() recordInput {
	return recordInput{
		Name:            "Alice",
		Contact:         "555-1234",
		TotalAmount:     dec("1000"),
		RemainingAmount: dec("400"),
		Date:            "2024-01-01",
	}
}

func mustReject(t *testing.T, in recordInput, wantReason string) {
	t.Helper()
	_, err := validateRecordInput(in, validateNow)
	if err == nil {
		t.Fatalf("expected rejection (%s), input accepted", wantReason)
	}
	var ve *validationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validationError, got %T: %v", err, err)
	}
	if ve.Error() != wantReason {
		t.Fatalf("reason = %q, want %q", ve.Error(), wantReason)
	}
}

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	in := baseInput()
	in.Name = "  Alice  "
	in.Contact = " 555-1234 "
	v, err := validateRecordInput(in, validateNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Name != "Alice" || v.Contact != "555-1234" {
		t.Fatalf("fields not trimmed: %+v", v)
	}
	if !v.TotalAmount.Equal(decimal.NewFromInt(1000)) || !v.RemainingAmount.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("amounts mangled: %+v", v)
	}
	if v.Date.Year() != 2024 || v.Date.Month() != time.January || v.Date.Day() != 1 {
		t.Fatalf("date mangled: %v", v.Date)
	}
}

func TestValidateBalanceRule(t *testing.T) {
	in := baseInput()
	in.TotalAmount = dec("100")
	in.RemainingAmount = dec("100.01")
	mustReject(t, in, "Remaining amount cannot be greater than total amount")

	// equal amounts are fine
	in.RemainingAmount = dec("100")
	if _, err := validateRecordInput(in, validateNow); err != nil {
		t.Fatalf("remaining == total rejected: %v", err)
	}

	// zero is a legal balance
	in.RemainingAmount = dec("0")
	if _, err := validateRecordInput(in, validateNow); err != nil {
		t.Fatalf("zero remaining rejected: %v", err)
	}
}

func TestValidateAmountBounds(t *testing.T) {
	in := baseInput()
	in.RemainingAmount = dec("-1")
	mustReject(t, in, "Amounts cannot be negative")

	in = baseInput()
	in.TotalAmount = dec("-0.01")
	mustReject(t, in, "Amounts cannot be negative")

	in = baseInput()
	in.TotalAmount = dec("10000000.01")
	mustReject(t, in, "Amount too large")

	in = baseInput()
	in.TotalAmount = dec("10000000")
	in.RemainingAmount = dec("10000000")
	if _, err := validateRecordInput(in, validateNow); err != nil {
		t.Fatalf("maximum amount rejected: %v", err)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	in := baseInput()
	in.Name = "   "
	mustReject(t, in, "Name is required")

	in = baseInput()
	in.Contact = ""
	mustReject(t, in, "Contact is required")

	in = baseInput()
	in.TotalAmount = nil
	mustReject(t, in, "Total amount is required")

	in = baseInput()
	in.RemainingAmount = nil
	mustReject(t, in, "Remaining amount is required")

	in = baseInput()
	in.Date = ""
	mustReject(t, in, "Date is required")
}

func TestValidateLengths(t *testing.T) {
	in := baseInput()
	in.Name = strings.Repeat("a", 101)
	mustReject(t, in, "Name cannot exceed 100 characters")

	in = baseInput()
	in.Name = strings.Repeat("a", 100)
	if _, err := validateRecordInput(in, validateNow); err != nil {
		t.Fatalf("100-char name rejected: %v", err)
	}

	in = baseInput()
	in.Contact = strings.Repeat("5", 21)
	mustReject(t, in, "Contact cannot exceed 20 characters")

	in = baseInput()
	in.Contact = strings.Repeat("5", 20)
	if _, err := validateRecordInput(in, validateNow); err != nil {
		t.Fatalf("20-char contact rejected: %v", err)
	}
}

func TestValidateDate(t *testing.T) {
	in := baseInput()
	in.Date = "2024-06-02"
	mustReject(t, in, "Date cannot be in the future")

	in = baseInput()
	in.Date = "not-a-date"
	mustReject(t, in, "Invalid date")

	// RFC 3339 timestamps are accepted too
	in = baseInput()
	in.Date = "2024-05-31T09:30:00Z"
	v, err := validateRecordInput(in, validateNow)
	if err != nil {
		t.Fatalf("RFC3339 date rejected: %v", err)
	}
	if v.Date.Hour() != 9 {
		t.Fatalf("timestamp not preserved: %v", v.Date)
	}
}
