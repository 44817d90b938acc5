// Package analytics implements the financial analytics engine: monthly,
// yearly, quarterly and per-category aggregation, trend forecasting,
// health scoring and insight generation. Every function is a pure
// function of its inputs and an explicit asOf evaluation instant; none
// of them read the wall clock or return errors for well-typed input.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/domain/entity"
)

// monthKey buckets an entry date by calendar month.
type monthKey struct {
	year  int
	month time.Month
}

func keyOf(t time.Time) monthKey {
	return monthKey{year: t.Year(), month: t.Month()}
}

// rateOf returns savings/income*100, or 0 when income is not positive.
func rateOf(savings, income decimal.Decimal) float64 {
	if !income.IsPositive() {
		return 0
	}
	rate, _ := savings.Div(income).Mul(decimal.NewFromInt(100)).Float64()
	return rate
}

// BuildMonthlyAggregates returns one aggregate per trailing calendar
// month ending at asOf's month, oldest first. Months with no entries are
// zero-filled. Entries outside the window are ignored here; the yearly
// and category views still count them.
func BuildMonthlyAggregates(incomes []*entity.IncomeEntry, expenses []*entity.ExpenseEntry, asOf time.Time) []entity.MonthlyAggregate {
	incomeByMonth := make(map[monthKey]decimal.Decimal)
	for _, in := range incomes {
		k := keyOf(in.Date)
		incomeByMonth[k] = incomeByMonth[k].Add(in.Amount)
	}
	expenseByMonth := make(map[monthKey]decimal.Decimal)
	for _, ex := range expenses {
		k := keyOf(ex.Date)
		expenseByMonth[k] = expenseByMonth[k].Add(ex.Amount)
	}

	aggregates := make([]entity.MonthlyAggregate, 0, 12)
	for offset := 11; offset >= 0; offset-- {
		monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location()).AddDate(0, -offset, 0)
		k := keyOf(monthStart)
		income := incomeByMonth[k]
		expense := expenseByMonth[k]
		savings := income.Sub(expense)

		aggregates = append(aggregates, entity.MonthlyAggregate{
			Month:       monthStart.Format("Jan"),
			MonthIndex:  int(monthStart.Month()) - 1,
			Year:        monthStart.Year(),
			Income:      income,
			Expenses:    expense,
			Savings:     savings,
			SavingsRate: rateOf(savings, income),
		})
	}
	return aggregates
}

// BuildCategorySummaries summarizes spending per category over every
// supplied expense, sorted descending by total. Growth compares the
// current calendar month against the previous one, keyed by month of
// year only (a December of an earlier year and the current January are
// treated as adjacent).
func BuildCategorySummaries(expenses []*entity.ExpenseEntry, asOf time.Time) []entity.CategorySummary {
	totals := make(map[entity.ExpenseCategory]decimal.Decimal)
	monthly := make(map[entity.ExpenseCategory]map[string]decimal.Decimal)
	var grandTotal decimal.Decimal

	for _, ex := range expenses {
		totals[ex.Category] = totals[ex.Category].Add(ex.Amount)
		grandTotal = grandTotal.Add(ex.Amount)

		if monthly[ex.Category] == nil {
			monthly[ex.Category] = make(map[string]decimal.Decimal)
		}
		m := ex.Date.Format("Jan")
		monthly[ex.Category][m] = monthly[ex.Category][m].Add(ex.Amount)
	}

	currentLabel := asOf.Format("Jan")
	prevMonth := asOf.Month() - 1
	if prevMonth < time.January {
		prevMonth = time.December
	}
	prevLabel := time.Date(2000, prevMonth, 1, 0, 0, 0, 0, time.UTC).Format("Jan")

	summaries := make([]entity.CategorySummary, 0, len(totals))
	for category, total := range totals {
		var percentage float64
		if grandTotal.IsPositive() {
			percentage, _ = total.Div(grandTotal).Mul(decimal.NewFromInt(100)).Float64()
		}

		var growth float64
		prev := monthly[category][prevLabel]
		if prev.IsPositive() {
			growth, _ = monthly[category][currentLabel].Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Float64()
		}

		summaries = append(summaries, entity.CategorySummary{
			Category:   category,
			Total:      total,
			Percentage: percentage,
			Monthly:    monthly[category],
			Growth:     growth,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Total.Equal(summaries[j].Total) {
			return summaries[i].Total.GreaterThan(summaries[j].Total)
		}
		return summaries[i].Category < summaries[j].Category
	})
	return summaries
}

// BuildYearlySummary aggregates every supplied entry into an
// all-time-to-date summary. Best month is the active month with the
// highest savings rate; worst month is the one with the highest
// expenses. Ties keep the earliest month.
func BuildYearlySummary(incomes []*entity.IncomeEntry, expenses []*entity.ExpenseEntry, asOf time.Time) entity.YearlySummary {
	incomeByMonth := make(map[monthKey]decimal.Decimal)
	expenseByMonth := make(map[monthKey]decimal.Decimal)
	var totalIncome, totalExpenses decimal.Decimal

	for _, in := range incomes {
		k := keyOf(in.Date)
		incomeByMonth[k] = incomeByMonth[k].Add(in.Amount)
		totalIncome = totalIncome.Add(in.Amount)
	}
	for _, ex := range expenses {
		k := keyOf(ex.Date)
		expenseByMonth[k] = expenseByMonth[k].Add(ex.Amount)
		totalExpenses = totalExpenses.Add(ex.Amount)
	}

	// Collect active months in chronological order so tie-breaks are stable.
	keys := make(map[monthKey]bool)
	for k := range incomeByMonth {
		keys[k] = true
	}
	for k := range expenseByMonth {
		keys[k] = true
	}
	months := make([]monthKey, 0, len(keys))
	for k := range keys {
		months = append(months, k)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].year != months[j].year {
			return months[i].year < months[j].year
		}
		return months[i].month < months[j].month
	})

	summary := entity.YearlySummary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		TotalSavings:  totalIncome.Sub(totalExpenses),
	}
	summary.SavingsRate = rateOf(summary.TotalSavings, totalIncome)

	var bestRate float64
	var worstExpenses decimal.Decimal
	active := 0
	for _, k := range months {
		income := incomeByMonth[k]
		expense := expenseByMonth[k]
		if !income.IsPositive() && !expense.IsPositive() {
			continue
		}
		active++

		label := fmt.Sprintf("%s %d", k.month.String()[:3], k.year)
		rate := rateOf(income.Sub(expense), income)
		if summary.BestMonth == "" || rate > bestRate {
			summary.BestMonth = label
			bestRate = rate
		}
		if summary.WorstMonth == "" || expense.GreaterThan(worstExpenses) {
			summary.WorstMonth = label
			worstExpenses = expense
		}
	}

	summary.ActiveMonths = active
	if active > 0 {
		divisor := decimal.NewFromInt(int64(active))
		summary.AvgMonthlyIncome = totalIncome.Div(divisor).Round(2)
		summary.AvgMonthlyExpense = totalExpenses.Div(divisor).Round(2)
	}

	summary.TopCategory = topCategory(expenses)
	return summary
}

// topCategory returns the category with the largest spend, or the empty
// value when there are no expenses. Ties keep the category that sorts
// first alphabetically.
func topCategory(expenses []*entity.ExpenseEntry) entity.ExpenseCategory {
	totals := make(map[entity.ExpenseCategory]decimal.Decimal)
	for _, ex := range expenses {
		totals[ex.Category] = totals[ex.Category].Add(ex.Amount)
	}

	categories := make([]entity.ExpenseCategory, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	var top entity.ExpenseCategory
	var topTotal decimal.Decimal
	for _, c := range categories {
		if top == "" || totals[c].GreaterThan(topTotal) {
			top = c
			topTotal = totals[c]
		}
	}
	return top
}

// BuildPeakAnalysis finds, for income, expenses and savings, the month
// holding the maximum value among the given aggregates and its
// percentage deviation from the mean of active months. When several
// months share the maximum the first one in scan order (oldest) wins.
func BuildPeakAnalysis(aggregates []entity.MonthlyAggregate) entity.PeakAnalysis {
	return entity.PeakAnalysis{
		Income:  peakOf(aggregates, func(a entity.MonthlyAggregate) decimal.Decimal { return a.Income }),
		Expense: peakOf(aggregates, func(a entity.MonthlyAggregate) decimal.Decimal { return a.Expenses }),
		Savings: peakOf(aggregates, func(a entity.MonthlyAggregate) decimal.Decimal { return a.Savings }),
	}
}

func peakOf(aggregates []entity.MonthlyAggregate, value func(entity.MonthlyAggregate) decimal.Decimal) entity.PeakMonth {
	var peak entity.PeakMonth
	var sum decimal.Decimal
	active := 0
	found := false

	for _, a := range aggregates {
		if !a.Active() {
			continue
		}
		v := value(a)
		sum = sum.Add(v)
		active++
		if !found || v.GreaterThan(peak.Value) {
			peak = entity.PeakMonth{Month: fmt.Sprintf("%s %d", a.Month, a.Year), Value: v}
			found = true
		}
	}
	if !found {
		return entity.PeakMonth{}
	}

	mean := sum.Div(decimal.NewFromInt(int64(active)))
	if !mean.IsZero() {
		peak.Deviation, _ = peak.Value.Sub(mean).Div(mean).Mul(decimal.NewFromInt(100)).Float64()
	}
	return peak
}

// BuildQuarterData sums income and expenses into the four calendar
// quarters of asOf's year.
func BuildQuarterData(incomes []*entity.IncomeEntry, expenses []*entity.ExpenseEntry, asOf time.Time) [4]entity.QuarterData {
	var quarters [4]entity.QuarterData
	for i := range quarters {
		quarters[i].Quarter = fmt.Sprintf("Q%d", i+1)
	}

	year := asOf.Year()
	for _, in := range incomes {
		if in.Date.Year() != year {
			continue
		}
		q := (int(in.Date.Month()) - 1) / 3
		quarters[q].Income = quarters[q].Income.Add(in.Amount)
	}
	for _, ex := range expenses {
		if ex.Date.Year() != year {
			continue
		}
		q := (int(ex.Date.Month()) - 1) / 3
		quarters[q].Expenses = quarters[q].Expenses.Add(ex.Amount)
	}

	for i := range quarters {
		quarters[i].Savings = quarters[i].Income.Sub(quarters[i].Expenses)
		quarters[i].SavingsRate = rateOf(quarters[i].Savings, quarters[i].Income)
	}
	return quarters
}

// BuildMonthSnapshot sums the entries of asOf's calendar month only.
func BuildMonthSnapshot(incomes []*entity.IncomeEntry, expenses []*entity.ExpenseEntry, asOf time.Time) entity.MonthSnapshot {
	current := keyOf(asOf)

	var snapshot entity.MonthSnapshot
	for _, in := range incomes {
		if keyOf(in.Date) == current {
			snapshot.Income = snapshot.Income.Add(in.Amount)
		}
	}
	for _, ex := range expenses {
		if keyOf(ex.Date) == current {
			snapshot.Expenses = snapshot.Expenses.Add(ex.Amount)
		}
	}
	snapshot.Savings = snapshot.Income.Sub(snapshot.Expenses)
	snapshot.SavingsRate = rateOf(snapshot.Savings, snapshot.Income)
	return snapshot
}
