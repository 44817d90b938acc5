package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finsight/backend/internal/application/adapter"
	"github.com/finsight/backend/internal/domain/entity"
)

// GetOverviewInput represents the input for computing the analytics overview.
type GetOverviewInput struct {
	UserID uuid.UUID
	AsOf   time.Time
}

// Overview bundles every derived analytics view for one user at one
// evaluation instant.
type Overview struct {
	AsOf         time.Time                   `json:"as_of"`
	Monthly      []entity.MonthlyAggregate   `json:"monthly"`
	Categories   []entity.CategorySummary    `json:"categories"`
	Yearly       entity.YearlySummary        `json:"yearly"`
	Peaks        entity.PeakAnalysis         `json:"peaks"`
	Quarters     [4]entity.QuarterData       `json:"quarters"`
	CurrentMonth entity.MonthSnapshot        `json:"current_month"`
	Prediction   entity.Prediction           `json:"prediction"`
	HealthScore  entity.FinancialHealthScore `json:"health_score"`
	Insights     []entity.Insight            `json:"insights"`
}

// GetOverviewUseCase assembles the full analytics overview from the
// user's records. The cache is optional; when present it memoizes the
// serialized overview per user and evaluation month, and any cache
// failure falls back to recomputation.
type GetOverviewUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	cache       adapter.OverviewCache
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	cache adapter.OverviewCache,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute fetches the user's records and derives every analytics view.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*Overview, error) {
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	monthKey := asOf.Format("2006-01")

	if uc.cache != nil {
		if payload, ok := uc.cache.Get(ctx, input.UserID, monthKey); ok {
			var cached Overview
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	incomes, err := uc.incomeRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	overview := ComputeOverview(incomes, expenses, asOf)

	if uc.cache != nil {
		if payload, err := json.Marshal(overview); err == nil {
			// Best effort; a failed write never fails the request.
			_ = uc.cache.Set(ctx, input.UserID, monthKey, payload)
		}
	}
	return overview, nil
}

// ComputeOverview derives every analytics view from the given records.
// It is the pure core of the overview use case.
func ComputeOverview(incomes []*entity.IncomeEntry, expenses []*entity.ExpenseEntry, asOf time.Time) *Overview {
	monthly := BuildMonthlyAggregates(incomes, expenses, asOf)
	categories := BuildCategorySummaries(expenses, asOf)
	yearly := BuildYearlySummary(incomes, expenses, asOf)

	return &Overview{
		AsOf:         asOf,
		Monthly:      monthly,
		Categories:   categories,
		Yearly:       yearly,
		Peaks:        BuildPeakAnalysis(monthly),
		Quarters:     BuildQuarterData(incomes, expenses, asOf),
		CurrentMonth: BuildMonthSnapshot(incomes, expenses, asOf),
		Prediction:   Forecast(monthly),
		HealthScore:  ComputeHealthScore(monthly, categories, yearly),
		Insights:     GenerateInsights(incomes, expenses, asOf),
	}
}
