// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Source    string          `gorm:"type:varchar(255);not null"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain IncomeEntry entity.
func (m *IncomeModel) ToEntity() *entity.IncomeEntry {
	return &entity.IncomeEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Source:    m.Source,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}

// IncomeFromEntity converts a domain IncomeEntry entity to an IncomeModel.
func IncomeFromEntity(income *entity.IncomeEntry) *IncomeModel {
	return &IncomeModel{
		ID:        income.ID,
		UserID:    income.UserID,
		Amount:    income.Amount,
		Source:    income.Source,
		Date:      income.Date,
		CreatedAt: income.CreatedAt,
	}
}
