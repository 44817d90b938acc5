package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/finsight/backend/internal/application/adapter"
)

// DeleteIncomeUseCase handles deleting income entries by identifier.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	cache      adapter.OverviewCache
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository, cache adapter.OverviewCache) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
		cache:      cache,
	}
}

// Execute deletes the given income entry for the user.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, userID, id uuid.UUID) error {
	if err := uc.incomeRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, userID)
	}
	return nil
}

// DeleteExpenseUseCase handles deleting expense entries by identifier.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.OverviewCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.OverviewCache) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute deletes the given expense entry for the user.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, userID, id uuid.UUID) error {
	if err := uc.expenseRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, userID)
	}
	return nil
}
