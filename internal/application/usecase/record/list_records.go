package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finsight/backend/internal/application/adapter"
	"github.com/finsight/backend/internal/domain/entity"
)

// ListRecordsOutput represents both record sets for a user.
type ListRecordsOutput struct {
	Incomes  []*entity.IncomeEntry
	Expenses []*entity.ExpenseEntry
}

// ListRecordsUseCase handles listing a user's income and expense entries.
type ListRecordsUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(incomeRepo adapter.IncomeRepository, expenseRepo adapter.ExpenseRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute fetches every record for the user.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, userID uuid.UUID) (*ListRecordsOutput, error) {
	incomes, err := uc.incomeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	expenses, err := uc.expenseRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return &ListRecordsOutput{Incomes: incomes, Expenses: expenses}, nil
}
