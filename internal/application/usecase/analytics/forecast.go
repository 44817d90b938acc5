package analytics

import (
	"github.com/finsight/backend/internal/domain/entity"
)

// trendBand is the hysteresis band, in percentage points of savings
// rate, that separates an improving or declining trend from a stable
// one. It keeps the label from flapping on noisy month-to-month data.
const trendBand = 3.0

// Forecast projects the next three months from the monthly aggregates
// using a recency-weighted moving average and a simple growth rate.
// With fewer than two active months it returns the defined degenerate
// output: all zeros, an empty projection and a stable trend.
func Forecast(aggregates []entity.MonthlyAggregate) entity.Prediction {
	var active []entity.MonthlyAggregate
	for _, a := range aggregates {
		if a.Active() {
			active = append(active, a)
		}
	}
	if len(active) < 2 {
		return entity.Prediction{Trend: entity.TrendStable}
	}

	incomes := make([]float64, len(active))
	expenses := make([]float64, len(active))
	for i, a := range active {
		incomes[i] = a.Income.InexactFloat64()
		expenses[i] = a.Expenses.InexactFloat64()
	}

	avgIncome := weightedAverage(incomes)
	avgExpense := weightedAverage(expenses)
	incomeGrowth := recentGrowth(incomes)
	expenseGrowth := recentGrowth(expenses)

	projection := make([]entity.ProjectedMonth, 0, 3)
	for t := 1; t <= 3; t++ {
		income := avgIncome * (1 + incomeGrowth*float64(t))
		expense := avgExpense * (1 + expenseGrowth*float64(t))
		projection = append(projection, entity.ProjectedMonth{
			Income:   income,
			Expenses: expense,
			Savings:  income - expense,
		})
	}

	next := projection[0]
	var nextRate float64
	if next.Income > 0 {
		nextRate = next.Savings / next.Income * 100
	}

	return entity.Prediction{
		NextMonthIncome:      next.Income,
		NextMonthExpenses:    next.Expenses,
		NextMonthSavingsRate: nextRate,
		Projection:           projection,
		Trend:                classifyTrend(active),
	}
}

// weightedAverage computes a linearly recency-weighted moving average:
// the oldest value gets weight 1, the newest weight len(values).
func weightedAverage(values []float64) float64 {
	var weightedSum, weightTotal float64
	for i, v := range values {
		w := float64(i + 1)
		weightedSum += v * w
		weightTotal += w
	}
	if weightTotal == 0 {
		return 0
	}
	return weightedSum / weightTotal
}

// recentGrowth derives a per-month growth rate from the first and last
// of the up-to-three most recent values.
func recentGrowth(values []float64) float64 {
	window := 3
	if len(values) < window {
		window = len(values)
	}
	if window < 2 {
		return 0
	}
	first := values[len(values)-window]
	last := values[len(values)-1]

	base := first
	if base < 1 {
		base = 1
	}
	return (last - first) / base / float64(window)
}

// classifyTrend compares the savings rate of the most recent active
// month against the one three active positions back, or the oldest
// available when history is shorter.
func classifyTrend(active []entity.MonthlyAggregate) entity.TrendDirection {
	latest := active[len(active)-1].SavingsRate
	back := len(active) - 4
	if back < 0 {
		back = 0
	}
	delta := latest - active[back].SavingsRate

	switch {
	case delta > trendBand:
		return entity.TrendImproving
	case delta < -trendBand:
		return entity.TrendDeclining
	default:
		return entity.TrendStable
	}
}
