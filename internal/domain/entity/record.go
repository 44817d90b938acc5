// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the spending category of an expense entry.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "Food"
	CategoryTransport     ExpenseCategory = "Transport"
	CategoryEntertainment ExpenseCategory = "Entertainment"
	CategoryBills         ExpenseCategory = "Bills"
	CategoryShopping      ExpenseCategory = "Shopping"
	CategoryOthers        ExpenseCategory = "Others"
)

// AllCategories lists every valid expense category.
var AllCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryBills,
	CategoryShopping,
	CategoryOthers,
}

// IsValid reports whether the category is one of the known values.
func (c ExpenseCategory) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// IncomeEntry represents a single income record. It is immutable once
// created; corrections are made by deleting and re-adding.
type IncomeEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Source    string
	Date      time.Time
	CreatedAt time.Time
}

// NewIncomeEntry creates a new IncomeEntry entity.
func NewIncomeEntry(userID uuid.UUID, amount decimal.Decimal, source string, date time.Time) *IncomeEntry {
	return &IncomeEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Source:    source,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}

// ExpenseEntry represents a single expense record. Payment metadata is
// opaque to analytics; only amount, category and date participate.
type ExpenseEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Category      ExpenseCategory
	Description   string
	Date          time.Time
	PaymentMethod string
	PaymentStatus string
	CreatedAt     time.Time
}

// NewExpenseEntry creates a new ExpenseEntry entity.
func NewExpenseEntry(userID uuid.UUID, amount decimal.Decimal, category ExpenseCategory, description string, date time.Time) *ExpenseEntry {
	return &ExpenseEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}
