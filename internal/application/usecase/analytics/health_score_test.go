package analytics

import (
	"testing"
	"time"

	"github.com/finsight/backend/internal/domain/entity"
)

func computeScoreFor(t *testing.T, incomes []*entity.IncomeEntry, expenses []*entity.ExpenseEntry, asOf time.Time) entity.FinancialHealthScore {
	t.Helper()
	aggregates := BuildMonthlyAggregates(incomes, expenses, asOf)
	categories := BuildCategorySummaries(expenses, asOf)
	yearly := BuildYearlySummary(incomes, expenses, asOf)
	return ComputeHealthScore(aggregates, categories, yearly)
}

func TestComputeHealthScoreEmptyInputIsValid(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	score := computeScoreFor(t, nil, nil, asOf)

	if score.Score < 0 || score.Score > 100 {
		t.Errorf("expected score within [0,100], got %d", score.Score)
	}
	if score.Grade == "" {
		t.Error("expected a letter grade even for empty input")
	}
	if len(score.Factors) != 5 {
		t.Errorf("expected 5 factors, got %d", len(score.Factors))
	}
}

func TestComputeHealthScoreFactors(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	incomes := []*entity.IncomeEntry{
		income(t, 50000, 2025, time.January),
		income(t, 50000, 2025, time.February),
		income(t, 50000, 2025, time.March),
	}
	expenses := []*entity.ExpenseEntry{
		expense(t, 10000, entity.CategoryFood, 2025, time.January),
		expense(t, 10000, entity.CategoryBills, 2025, time.February),
		expense(t, 10000, entity.CategoryTransport, 2025, time.March),
	}

	score := computeScoreFor(t, incomes, expenses, asOf)

	t.Run("weights sum to one", func(t *testing.T) {
		var total float64
		for _, f := range score.Factors {
			total += f.Weight
		}
		if total < 0.999 || total > 1.001 {
			t.Errorf("expected factor weights to sum to 1, got %f", total)
		}
	})

	t.Run("every factor is clamped", func(t *testing.T) {
		for _, f := range score.Factors {
			if f.Score < 0 || f.Score > 100 {
				t.Errorf("factor %s out of range: %f", f.Name, f.Score)
			}
		}
	})

	t.Run("strong saver earns a top grade", func(t *testing.T) {
		// 80% savings rate, even spending, steady income.
		if score.Score < 85 {
			t.Errorf("expected score >= 85, got %d", score.Score)
		}
		if score.Grade != "A" {
			t.Errorf("expected grade A, got %s", score.Grade)
		}
	})
}

func TestComputeHealthScoreOverspenderScoresLow(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	incomes := []*entity.IncomeEntry{
		income(t, 30000, 2025, time.February),
		income(t, 30000, 2025, time.March),
	}
	expenses := []*entity.ExpenseEntry{
		expense(t, 45000, entity.CategoryShopping, 2025, time.February),
		expense(t, 50000, entity.CategoryShopping, 2025, time.March),
	}

	score := computeScoreFor(t, incomes, expenses, asOf)

	if score.Score >= 55 {
		t.Errorf("expected an overspender to score below 55, got %d", score.Score)
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "A"},
		{85, "A"},
		{84, "B"},
		{70, "B"},
		{69, "C"},
		{55, "C"},
		{54, "D"},
		{40, "D"},
		{39, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := gradeFor(tt.score); got != tt.expected {
			t.Errorf("gradeFor(%d) = %s, expected %s", tt.score, got, tt.expected)
		}
	}
}

func TestDiversityScore(t *testing.T) {
	t.Run("no categories scores full marks", func(t *testing.T) {
		if got := diversityScore(nil); got != 100 {
			t.Errorf("expected 100, got %f", got)
		}
	})

	t.Run("concentrated spending scores low", func(t *testing.T) {
		categories := []entity.CategorySummary{
			{Category: entity.CategoryShopping, Percentage: 90},
			{Category: entity.CategoryFood, Percentage: 10},
		}
		if got := diversityScore(categories); got != 10 {
			t.Errorf("expected 10, got %f", got)
		}
	})
}

func TestStabilityScore(t *testing.T) {
	asOf := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("three income months reach the plateau", func(t *testing.T) {
		incomes := []*entity.IncomeEntry{
			income(t, 1000, 2025, time.April),
			income(t, 1000, 2025, time.May),
			income(t, 1000, 2025, time.June),
		}
		got := stabilityScore(BuildMonthlyAggregates(incomes, nil, asOf))
		if got != 80 {
			t.Errorf("expected 80, got %f", got)
		}
	})

	t.Run("fewer months scale linearly", func(t *testing.T) {
		incomes := []*entity.IncomeEntry{
			income(t, 1000, 2025, time.June),
		}
		got := stabilityScore(BuildMonthlyAggregates(incomes, nil, asOf))
		if got != 25 {
			t.Errorf("expected 25, got %f", got)
		}
	})
}

func TestConsistencyScoreDefaultsWithSparseData(t *testing.T) {
	asOf := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	expenses := []*entity.ExpenseEntry{
		expense(t, 500, entity.CategoryFood, 2025, time.June),
	}
	got := consistencyScore(BuildMonthlyAggregates(nil, expenses, asOf))
	if got != 80 {
		t.Errorf("expected neutral 80 with a single expense month, got %f", got)
	}
}
