package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts serialize as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Record is a single debt/credit ledger entry belonging to exactly one user.
// Amounts are stored as NUMERIC(12,2) so two-decimal currency values survive
// the round trip without float drift.
type Record struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	UserID          uint            `gorm:"index;not null" json:"user"`
	Name            string          `gorm:"size:100;not null" json:"name"`
	Contact         string          `gorm:"size:20;not null" json:"contact"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"totalAmount"`
	RemainingAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"remainingAmount"`
	Date            time.Time       `gorm:"not null" json:"date"`
}
