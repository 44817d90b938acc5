// Package record contains income/expense record-keeping use cases.
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

// AddIncomeInput represents the input for adding an income entry.
type AddIncomeInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
	Source string
	Date   time.Time
}

// AddIncomeUseCase handles creating income entries.
type AddIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	cache      adapter.OverviewCache
}

// NewAddIncomeUseCase creates a new AddIncomeUseCase instance.
func NewAddIncomeUseCase(incomeRepo adapter.IncomeRepository, cache adapter.OverviewCache) *AddIncomeUseCase {
	return &AddIncomeUseCase{
		incomeRepo: incomeRepo,
		cache:      cache,
	}
}

// Execute validates and persists a new income entry.
func (uc *AddIncomeUseCase) Execute(ctx context.Context, input AddIncomeInput) (*entity.IncomeEntry, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"income amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingDate,
			"income date is required",
			domainerror.ErrMissingDate,
		)
	}

	income := entity.NewIncomeEntry(input.UserID, input.Amount, input.Source, input.Date)
	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income entry: %w", err)
	}

	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, input.UserID)
	}
	return income, nil
}
