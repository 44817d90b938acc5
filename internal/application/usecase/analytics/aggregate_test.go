package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/domain/entity"
)

var testUserID = uuid.New()

func income(t *testing.T, amount float64, year int, month time.Month) *entity.IncomeEntry {
	t.Helper()
	return entity.NewIncomeEntry(testUserID, decimal.NewFromFloat(amount), "Salary", time.Date(year, month, 15, 0, 0, 0, 0, time.UTC))
}

func expense(t *testing.T, amount float64, category entity.ExpenseCategory, year int, month time.Month) *entity.ExpenseEntry {
	t.Helper()
	return entity.NewExpenseEntry(testUserID, decimal.NewFromFloat(amount), category, "", time.Date(year, month, 10, 0, 0, 0, 0, time.UTC))
}

func TestBuildMonthlyAggregates(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

	incomes := []*entity.IncomeEntry{
		income(t, 50000, 2025, time.January),
		income(t, 50000, 2025, time.February),
		income(t, 50000, 2025, time.March),
	}
	expenses := []*entity.ExpenseEntry{
		expense(t, 20000, entity.CategoryBills, 2025, time.January),
		expense(t, 45000, entity.CategoryShopping, 2025, time.February),
		expense(t, 20000, entity.CategoryFood, 2025, time.March),
	}

	aggregates := BuildMonthlyAggregates(incomes, expenses, asOf)

	t.Run("returns exactly twelve months oldest first", func(t *testing.T) {
		if len(aggregates) != 12 {
			t.Fatalf("expected 12 aggregates, got %d", len(aggregates))
		}
		if aggregates[0].Month != "Apr" || aggregates[0].Year != 2024 {
			t.Errorf("expected window to start at Apr 2024, got %s %d", aggregates[0].Month, aggregates[0].Year)
		}
		if aggregates[11].Month != "Mar" || aggregates[11].Year != 2025 {
			t.Errorf("expected window to end at Mar 2025, got %s %d", aggregates[11].Month, aggregates[11].Year)
		}
	})

	t.Run("zero-fills months without entries", func(t *testing.T) {
		for _, a := range aggregates[:9] {
			if a.Active() {
				t.Errorf("expected %s %d to be inactive", a.Month, a.Year)
			}
			if a.SavingsRate != 0 {
				t.Errorf("expected zero savings rate for empty month %s, got %f", a.Month, a.SavingsRate)
			}
		}
	})

	t.Run("savings equals income minus expenses in every month", func(t *testing.T) {
		for _, a := range aggregates {
			if !a.Savings.Equal(a.Income.Sub(a.Expenses)) {
				t.Errorf("%s %d: savings %s != income %s - expenses %s", a.Month, a.Year, a.Savings, a.Income, a.Expenses)
			}
		}
	})

	t.Run("computes savings rate against income", func(t *testing.T) {
		feb := aggregates[10]
		if feb.Month != "Feb" {
			t.Fatalf("expected Feb at index 10, got %s", feb.Month)
		}
		if !feb.Savings.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected Feb savings 5000, got %s", feb.Savings)
		}
		if feb.SavingsRate != 10 {
			t.Errorf("expected Feb savings rate 10, got %f", feb.SavingsRate)
		}
	})

	t.Run("month index matches calendar month", func(t *testing.T) {
		last := aggregates[11]
		if last.MonthIndex != int(time.March)-1 {
			t.Errorf("expected month index %d, got %d", int(time.March)-1, last.MonthIndex)
		}
	})
}

func TestBuildMonthlyAggregatesExpenseOnlyMonth(t *testing.T) {
	asOf := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	expenses := []*entity.ExpenseEntry{
		expense(t, 1200, entity.CategoryFood, 2025, time.June),
	}

	aggregates := BuildMonthlyAggregates(nil, expenses, asOf)
	current := aggregates[11]

	if !current.Savings.Equal(decimal.NewFromInt(-1200)) {
		t.Errorf("expected savings -1200, got %s", current.Savings)
	}
	if current.SavingsRate != 0 {
		t.Errorf("expected savings rate 0 with no income, got %f", current.SavingsRate)
	}
}

func TestBuildCategorySummaries(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	expenses := []*entity.ExpenseEntry{
		expense(t, 6000, entity.CategoryFood, 2025, time.February),
		expense(t, 3000, entity.CategoryFood, 2025, time.March),
		expense(t, 1000, entity.CategoryTransport, 2025, time.March),
	}

	summaries := BuildCategorySummaries(expenses, asOf)

	t.Run("sorted descending by total", func(t *testing.T) {
		if len(summaries) != 2 {
			t.Fatalf("expected 2 summaries, got %d", len(summaries))
		}
		if summaries[0].Category != entity.CategoryFood {
			t.Errorf("expected Food first, got %s", summaries[0].Category)
		}
		if !summaries[0].Total.Equal(decimal.NewFromInt(9000)) {
			t.Errorf("expected Food total 9000, got %s", summaries[0].Total)
		}
	})

	t.Run("percentages sum to 100", func(t *testing.T) {
		var sum float64
		for _, s := range summaries {
			sum += s.Percentage
		}
		if sum < 99.99 || sum > 100.01 {
			t.Errorf("expected percentages to sum to 100, got %f", sum)
		}
	})

	t.Run("growth compares current month against previous month label", func(t *testing.T) {
		food := summaries[0]
		// Feb 6000 -> Mar 3000 is a 50% drop.
		if food.Growth != -50 {
			t.Errorf("expected Food growth -50, got %f", food.Growth)
		}
	})

	t.Run("growth is zero without previous month spending", func(t *testing.T) {
		transport := summaries[1]
		if transport.Growth != 0 {
			t.Errorf("expected Transport growth 0, got %f", transport.Growth)
		}
	})

	t.Run("empty input yields empty summary", func(t *testing.T) {
		if got := BuildCategorySummaries(nil, asOf); len(got) != 0 {
			t.Errorf("expected no summaries, got %d", len(got))
		}
	})
}

func TestBuildCategorySummariesGrowthOverHundredPercent(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	expenses := []*entity.ExpenseEntry{
		expense(t, 20000, entity.CategoryShopping, 2025, time.February),
		expense(t, 45000, entity.CategoryShopping, 2025, time.March),
	}

	summaries := BuildCategorySummaries(expenses, asOf)
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].Growth != 125 {
		t.Errorf("expected growth 125, got %f", summaries[0].Growth)
	}
}

func TestBuildYearlySummary(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	incomes := []*entity.IncomeEntry{
		income(t, 50000, 2025, time.January),
		income(t, 50000, 2025, time.February),
		income(t, 50000, 2025, time.March),
	}
	expenses := []*entity.ExpenseEntry{
		expense(t, 20000, entity.CategoryBills, 2025, time.January),
		expense(t, 45000, entity.CategoryShopping, 2025, time.February),
		expense(t, 20000, entity.CategoryFood, 2025, time.March),
	}

	summary := BuildYearlySummary(incomes, expenses, asOf)

	t.Run("totals", func(t *testing.T) {
		if !summary.TotalIncome.Equal(decimal.NewFromInt(150000)) {
			t.Errorf("expected total income 150000, got %s", summary.TotalIncome)
		}
		if !summary.TotalExpenses.Equal(decimal.NewFromInt(85000)) {
			t.Errorf("expected total expenses 85000, got %s", summary.TotalExpenses)
		}
		if !summary.TotalSavings.Equal(decimal.NewFromInt(65000)) {
			t.Errorf("expected total savings 65000, got %s", summary.TotalSavings)
		}
	})

	t.Run("active months and averages", func(t *testing.T) {
		if summary.ActiveMonths != 3 {
			t.Errorf("expected 3 active months, got %d", summary.ActiveMonths)
		}
		if !summary.AvgMonthlyIncome.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("expected avg income 50000, got %s", summary.AvgMonthlyIncome)
		}
	})

	t.Run("best month has highest savings rate", func(t *testing.T) {
		// Jan and Mar tie at 60%; the earliest wins.
		if summary.BestMonth != "Jan 2025" {
			t.Errorf("expected best month Jan 2025, got %q", summary.BestMonth)
		}
	})

	t.Run("worst month has highest expenses", func(t *testing.T) {
		if summary.WorstMonth != "Feb 2025" {
			t.Errorf("expected worst month Feb 2025, got %q", summary.WorstMonth)
		}
	})

	t.Run("top category by total spend", func(t *testing.T) {
		if summary.TopCategory != entity.CategoryShopping {
			t.Errorf("expected top category Shopping, got %s", summary.TopCategory)
		}
	})

	t.Run("empty input yields zero summary", func(t *testing.T) {
		empty := BuildYearlySummary(nil, nil, asOf)
		if empty.ActiveMonths != 0 || empty.BestMonth != "" || empty.TopCategory != "" {
			t.Errorf("expected zero summary, got %+v", empty)
		}
	})
}

func TestTopCategoryTieBreaksAlphabetically(t *testing.T) {
	expenses := []*entity.ExpenseEntry{
		expense(t, 500, entity.CategoryTransport, 2025, time.January),
		expense(t, 500, entity.CategoryFood, 2025, time.January),
	}
	if got := topCategory(expenses); got != entity.CategoryFood {
		t.Errorf("expected Food on tie, got %s", got)
	}
}

func TestBuildPeakAnalysis(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	incomes := []*entity.IncomeEntry{
		income(t, 40000, 2025, time.January),
		income(t, 60000, 2025, time.February),
		income(t, 50000, 2025, time.March),
	}
	expenses := []*entity.ExpenseEntry{
		expense(t, 10000, entity.CategoryBills, 2025, time.January),
		expense(t, 30000, entity.CategoryBills, 2025, time.February),
		expense(t, 20000, entity.CategoryBills, 2025, time.March),
	}

	aggregates := BuildMonthlyAggregates(incomes, expenses, asOf)
	peaks := BuildPeakAnalysis(aggregates)

	t.Run("peak income month and deviation", func(t *testing.T) {
		if peaks.Income.Month != "Feb 2025" {
			t.Errorf("expected income peak Feb 2025, got %q", peaks.Income.Month)
		}
		// Mean income across active months is 50000; 60000 is +20%.
		if peaks.Income.Deviation != 20 {
			t.Errorf("expected income deviation 20, got %f", peaks.Income.Deviation)
		}
	})

	t.Run("peak expense month", func(t *testing.T) {
		if peaks.Expense.Month != "Feb 2025" {
			t.Errorf("expected expense peak Feb 2025, got %q", peaks.Expense.Month)
		}
		if !peaks.Expense.Value.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("expected expense peak 30000, got %s", peaks.Expense.Value)
		}
	})

	t.Run("no active months yields empty peaks", func(t *testing.T) {
		empty := BuildPeakAnalysis(BuildMonthlyAggregates(nil, nil, asOf))
		if empty.Income.Month != "" || empty.Expense.Month != "" || empty.Savings.Month != "" {
			t.Errorf("expected empty peaks, got %+v", empty)
		}
	})
}

func TestBuildPeakAnalysisTieKeepsOldestMonth(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	incomes := []*entity.IncomeEntry{
		income(t, 50000, 2025, time.January),
		income(t, 50000, 2025, time.February),
	}

	peaks := BuildPeakAnalysis(BuildMonthlyAggregates(incomes, nil, asOf))
	if peaks.Income.Month != "Jan 2025" {
		t.Errorf("expected tie to keep Jan 2025, got %q", peaks.Income.Month)
	}
}

func TestBuildQuarterData(t *testing.T) {
	asOf := time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC)
	incomes := []*entity.IncomeEntry{
		income(t, 30000, 2025, time.February),
		income(t, 30000, 2025, time.April),
		income(t, 30000, 2024, time.November), // outside current year
	}
	expenses := []*entity.ExpenseEntry{
		expense(t, 10000, entity.CategoryBills, 2025, time.March),
		expense(t, 40000, entity.CategoryBills, 2025, time.May),
	}

	quarters := BuildQuarterData(incomes, expenses, asOf)

	if quarters[0].Quarter != "Q1" || quarters[3].Quarter != "Q4" {
		t.Fatalf("expected quarter labels Q1..Q4, got %s..%s", quarters[0].Quarter, quarters[3].Quarter)
	}
	if !quarters[0].Income.Equal(decimal.NewFromInt(30000)) {
		t.Errorf("expected Q1 income 30000, got %s", quarters[0].Income)
	}
	if !quarters[1].Savings.Equal(decimal.NewFromInt(-10000)) {
		t.Errorf("expected Q2 savings -10000, got %s", quarters[1].Savings)
	}
	if !quarters[3].Income.IsZero() {
		t.Errorf("expected prior-year income excluded, got Q4 income %s", quarters[3].Income)
	}
}

func TestBuildMonthSnapshot(t *testing.T) {
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	incomes := []*entity.IncomeEntry{
		income(t, 50000, 2025, time.March),
		income(t, 50000, 2025, time.February),
	}
	expenses := []*entity.ExpenseEntry{
		expense(t, 20000, entity.CategoryFood, 2025, time.March),
		expense(t, 45000, entity.CategoryShopping, 2025, time.February),
	}

	snapshot := BuildMonthSnapshot(incomes, expenses, asOf)

	if !snapshot.Income.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("expected snapshot income 50000, got %s", snapshot.Income)
	}
	if !snapshot.Expenses.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("expected snapshot expenses 20000, got %s", snapshot.Expenses)
	}
	if snapshot.SavingsRate != 60 {
		t.Errorf("expected snapshot savings rate 60, got %f", snapshot.SavingsRate)
	}
}
