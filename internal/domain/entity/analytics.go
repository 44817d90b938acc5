package entity

import (
	"github.com/shopspring/decimal"
)

// MonthlyAggregate holds the summed figures for one calendar month.
// Savings is always Income minus Expenses; SavingsRate is zero when
// there is no income for the month.
type MonthlyAggregate struct {
	Month       string          `json:"month"`       // short month name, e.g. "Mar"
	MonthIndex  int             `json:"month_index"` // 0-11
	Year        int             `json:"year"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Savings     decimal.Decimal `json:"savings"`
	SavingsRate float64         `json:"savings_rate"`
}

// Active reports whether the month has any income or expense activity.
func (m MonthlyAggregate) Active() bool {
	return m.Income.IsPositive() || m.Expenses.IsPositive()
}

// CategorySummary holds per-category spending totals across all supplied
// entries, plus a month-of-year breakdown and the growth of the current
// calendar month over the previous one.
type CategorySummary struct {
	Category   ExpenseCategory            `json:"category"`
	Total      decimal.Decimal            `json:"total"`
	Percentage float64                    `json:"percentage"`
	Monthly    map[string]decimal.Decimal `json:"monthly"`
	Growth     float64                    `json:"growth"`
}

// YearlySummary aggregates every supplied entry (not just the trailing
// window) into all-time-to-date figures.
type YearlySummary struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	TotalSavings      decimal.Decimal `json:"total_savings"`
	SavingsRate       float64         `json:"savings_rate"`
	TopCategory       ExpenseCategory `json:"top_category"`
	BestMonth         string          `json:"best_month"`  // highest savings rate among active months
	WorstMonth        string          `json:"worst_month"` // highest expenses among active months
	AvgMonthlyIncome  decimal.Decimal `json:"avg_monthly_income"`
	AvgMonthlyExpense decimal.Decimal `json:"avg_monthly_expense"`
	ActiveMonths      int             `json:"active_months"`
}

// PeakMonth identifies the month holding the maximum value for one metric
// and its percentage deviation from the mean of active months.
type PeakMonth struct {
	Month     string          `json:"month"`
	Value     decimal.Decimal `json:"value"`
	Deviation float64         `json:"deviation"`
}

// PeakAnalysis holds the peak month for income, expenses and savings.
type PeakAnalysis struct {
	Income  PeakMonth `json:"income"`
	Expense PeakMonth `json:"expense"`
	Savings PeakMonth `json:"savings"`
}

// QuarterData holds the summed figures for one calendar quarter of the
// current year.
type QuarterData struct {
	Quarter     string          `json:"quarter"` // "Q1".."Q4"
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Savings     decimal.Decimal `json:"savings"`
	SavingsRate float64         `json:"savings_rate"`
}

// MonthSnapshot holds the figures for the current calendar month only.
type MonthSnapshot struct {
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Savings     decimal.Decimal `json:"savings"`
	SavingsRate float64         `json:"savings_rate"`
}

// TrendDirection classifies the forecast trend.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// ProjectedMonth is a single month of the forward projection.
type ProjectedMonth struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// Prediction holds the next-month estimate and a three-month projection.
// With fewer than two active months every field is zero and the trend is
// stable; this is the defined degenerate output, not an error.
type Prediction struct {
	NextMonthIncome      float64          `json:"next_month_income"`
	NextMonthExpenses    float64          `json:"next_month_expenses"`
	NextMonthSavingsRate float64          `json:"next_month_savings_rate"`
	Projection           []ProjectedMonth `json:"projection"`
	Trend                TrendDirection   `json:"trend"`
}

// ScoreFactor is one weighted component of a composite score.
type ScoreFactor struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"` // clamped to [0,100] before weighting
	Weight float64 `json:"weight"`
}

// FinancialHealthScore is the weighted composite health assessment.
// Factor weights always sum to 1.0.
type FinancialHealthScore struct {
	Score   int           `json:"score"` // 0-100
	Grade   string        `json:"grade"` // A-F
	Factors []ScoreFactor `json:"factors"`
}

// InsightSeverity tags an insight with its urgency class.
type InsightSeverity string

const (
	SeverityInfo    InsightSeverity = "info"
	SeveritySuccess InsightSeverity = "success"
	SeverityWarning InsightSeverity = "warning"
	SeverityDanger  InsightSeverity = "danger"
	SeverityTip     InsightSeverity = "tip" // planner insights only
)

// Insight is a single human-readable finding. Insights are pure outputs
// and are never persisted.
type Insight struct {
	Severity InsightSeverity `json:"severity"`
	Message  string          `json:"message"`
}
