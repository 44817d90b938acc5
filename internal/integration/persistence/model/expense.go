package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category      string          `gorm:"type:varchar(32);not null;index"`
	Description   string          `gorm:"type:varchar(255)"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	PaymentMethod string          `gorm:"type:varchar(64)"`
	PaymentStatus string          `gorm:"type:varchar(32)"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain ExpenseEntry entity.
func (m *ExpenseModel) ToEntity() *entity.ExpenseEntry {
	return &entity.ExpenseEntry{
		ID:            m.ID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Category:      entity.ExpenseCategory(m.Category),
		Description:   m.Description,
		Date:          m.Date,
		PaymentMethod: m.PaymentMethod,
		PaymentStatus: m.PaymentStatus,
		CreatedAt:     m.CreatedAt,
	}
}

// ExpenseFromEntity converts a domain ExpenseEntry entity to an ExpenseModel.
func ExpenseFromEntity(expense *entity.ExpenseEntry) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		UserID:        expense.UserID,
		Amount:        expense.Amount,
		Category:      string(expense.Category),
		Description:   expense.Description,
		Date:          expense.Date,
		PaymentMethod: expense.PaymentMethod,
		PaymentStatus: expense.PaymentStatus,
		CreatedAt:     expense.CreatedAt,
	}
}
