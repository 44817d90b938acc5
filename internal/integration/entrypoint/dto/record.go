package dto

import (
	"time"

	"github.com/finsight/backend/internal/domain/entity"
)

// AddIncomeRequest represents the request body for adding an income entry.
type AddIncomeRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Source string  `json:"source" binding:"required,min=1,max=255"`
	Date   string  `json:"date" binding:"required"` // YYYY-MM-DD
}

// AddExpenseRequest represents the request body for adding an expense entry.
type AddExpenseRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Category      string  `json:"category" binding:"required"`
	Description   string  `json:"description" binding:"max=255"`
	Date          string  `json:"date" binding:"required"` // YYYY-MM-DD
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
}

// IncomeResponse represents an income entry in API responses.
type IncomeResponse struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
	Date   string  `json:"date"`
}

// ExpenseResponse represents an expense entry in API responses.
type ExpenseResponse struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	PaymentStatus string  `json:"payment_status,omitempty"`
}

// RecordListResponse represents both record sets for a user.
type RecordListResponse struct {
	Incomes  []IncomeResponse  `json:"incomes"`
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToIncomeResponse converts an IncomeEntry entity to its response DTO.
func ToIncomeResponse(income *entity.IncomeEntry) IncomeResponse {
	return IncomeResponse{
		ID:     income.ID.String(),
		Amount: income.Amount.InexactFloat64(),
		Source: income.Source,
		Date:   income.Date.Format(time.DateOnly),
	}
}

// ToExpenseResponse converts an ExpenseEntry entity to its response DTO.
func ToExpenseResponse(expense *entity.ExpenseEntry) ExpenseResponse {
	return ExpenseResponse{
		ID:            expense.ID.String(),
		Amount:        expense.Amount.InexactFloat64(),
		Category:      string(expense.Category),
		Description:   expense.Description,
		Date:          expense.Date.Format(time.DateOnly),
		PaymentMethod: expense.PaymentMethod,
		PaymentStatus: expense.PaymentStatus,
	}
}
