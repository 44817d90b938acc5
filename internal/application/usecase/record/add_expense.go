package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/application/adapter"
	"github.com/finsight/backend/internal/domain/entity"
	domainerror "github.com/finsight/backend/internal/domain/error"
)

// AddExpenseInput represents the input for adding an expense entry.
type AddExpenseInput struct {
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Category      entity.ExpenseCategory
	Description   string
	Date          time.Time
	PaymentMethod string
	PaymentStatus string
}

// AddExpenseUseCase handles creating expense entries.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.OverviewCache
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.OverviewCache) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute validates and persists a new expense entry.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*entity.ExpenseEntry, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"expense amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}
	if !input.Category.IsValid() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidCategory,
			"unknown expense category",
			domainerror.ErrInvalidCategory,
		)
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingDate,
			"expense date is required",
			domainerror.ErrMissingDate,
		)
	}

	expense := entity.NewExpenseEntry(input.UserID, input.Amount, input.Category, input.Description, input.Date)
	expense.PaymentMethod = input.PaymentMethod
	expense.PaymentStatus = input.PaymentStatus

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense entry: %w", err)
	}

	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, input.UserID)
	}
	return expense, nil
}
