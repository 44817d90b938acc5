package analytics

import (
	"math"

	"github.com/finsight/backend/internal/domain/entity"
	"github.com/finsight/backend/internal/domain/valueobject"
)

// Health score factor weights. They must sum to 1.0.
const (
	weightSavingsRate = 0.35
	weightDiversity   = 0.20
	weightConsistency = 0.20
	weightStability   = 0.15
	weightTrend       = 0.10
)

// ComputeHealthScore derives the weighted composite health score from
// the aggregates and category summaries. It is total: empty input yields
// a valid score, never an error.
func ComputeHealthScore(aggregates []entity.MonthlyAggregate, categories []entity.CategorySummary, yearly entity.YearlySummary) entity.FinancialHealthScore {
	factors := []entity.ScoreFactor{
		{Name: "Savings Rate", Score: yearly.SavingsRate * 3.33, Weight: weightSavingsRate},
		{Name: "Expense Diversity", Score: diversityScore(categories), Weight: weightDiversity},
		{Name: "Spending Consistency", Score: consistencyScore(aggregates), Weight: weightConsistency},
		{Name: "Income Stability", Score: stabilityScore(aggregates), Weight: weightStability},
		{Name: "Financial Trend", Score: trendScore(aggregates), Weight: weightTrend},
	}

	score := valueobject.CompositeScore(factors)
	return entity.FinancialHealthScore{
		Score:   score,
		Grade:   gradeFor(score),
		Factors: factors,
	}
}

// diversityScore rewards spending spread across categories: 100 minus
// the share of the largest category. Summaries are sorted descending by
// total, so the first entry is the largest.
func diversityScore(categories []entity.CategorySummary) float64 {
	if len(categories) == 0 {
		return 100
	}
	return 100 - categories[0].Percentage
}

// consistencyScore penalizes month-to-month expense variance via the
// coefficient of variation. Fewer than two active expense months score
// the neutral default of 80.
func consistencyScore(aggregates []entity.MonthlyAggregate) float64 {
	var amounts []float64
	for _, a := range aggregates {
		if a.Expenses.IsPositive() {
			amounts = append(amounts, a.Expenses.InexactFloat64())
		}
	}
	if len(amounts) < 2 {
		return 80
	}

	var sum float64
	for _, v := range amounts {
		sum += v
	}
	mean := sum / float64(len(amounts))
	if mean == 0 {
		return 80
	}

	var varianceSum float64
	for _, v := range amounts {
		diff := v - mean
		varianceSum += diff * diff
	}
	stddev := math.Sqrt(varianceSum / float64(len(amounts)))

	return 100 - (stddev/mean)*100
}

// stabilityScore rewards a steady income history: three or more income
// months earn the full 80, fewer earn 25 points each.
func stabilityScore(aggregates []entity.MonthlyAggregate) float64 {
	incomeMonths := 0
	for _, a := range aggregates {
		if a.Income.IsPositive() {
			incomeMonths++
		}
	}
	if incomeMonths >= 3 {
		return 80
	}
	return float64(incomeMonths) * 25
}

// trendScore compares the savings rate of the two most recent active
// months: 90 when improving, 20 when worsening, 50 when equal or when
// there is not enough history to tell.
func trendScore(aggregates []entity.MonthlyAggregate) float64 {
	var active []entity.MonthlyAggregate
	for _, a := range aggregates {
		if a.Active() {
			active = append(active, a)
		}
	}
	if len(active) < 2 {
		return 50
	}

	latest := active[len(active)-1].SavingsRate
	prior := active[len(active)-2].SavingsRate
	switch {
	case latest > prior:
		return 90
	case latest < prior:
		return 20
	default:
		return 50
	}
}

// gradeFor maps a composite score to its letter grade.
func gradeFor(score int) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 55:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}
