package dto

import (
	"time"

	"github.com/finsight/backend/internal/application/usecase/analytics"
	"github.com/finsight/backend/internal/domain/entity"
)

// OverviewResponse represents the full analytics overview API response.
type OverviewResponse struct {
	AsOf         string                  `json:"as_of"`
	Monthly      []MonthlyAggregateResponse `json:"monthly"`
	Categories   []CategorySummaryResponse  `json:"categories"`
	Yearly       YearlySummaryResponse      `json:"yearly"`
	Peaks        PeakAnalysisResponse       `json:"peaks"`
	Quarters     []QuarterResponse          `json:"quarters"`
	CurrentMonth MonthSnapshotResponse      `json:"current_month"`
	Prediction   PredictionResponse         `json:"prediction"`
	HealthScore  HealthScoreResponse        `json:"health_score"`
	Insights     []InsightResponse          `json:"insights"`
}

// MonthlyAggregateResponse represents one month in the response.
type MonthlyAggregateResponse struct {
	Month       string  `json:"month"`
	MonthIndex  int     `json:"month_index"`
	Year        int     `json:"year"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Savings     float64 `json:"savings"`
	SavingsRate float64 `json:"savings_rate"`
}

// CategorySummaryResponse represents one category summary in the response.
type CategorySummaryResponse struct {
	Category   string             `json:"category"`
	Total      float64            `json:"total"`
	Percentage float64            `json:"percentage"`
	Monthly    map[string]float64 `json:"monthly"`
	Growth     float64            `json:"growth"`
}

// YearlySummaryResponse represents the yearly summary in the response.
type YearlySummaryResponse struct {
	TotalIncome       float64 `json:"total_income"`
	TotalExpenses     float64 `json:"total_expenses"`
	TotalSavings      float64 `json:"total_savings"`
	SavingsRate       float64 `json:"savings_rate"`
	TopCategory       string  `json:"top_category"`
	BestMonth         string  `json:"best_month"`
	WorstMonth        string  `json:"worst_month"`
	AvgMonthlyIncome  float64 `json:"avg_monthly_income"`
	AvgMonthlyExpense float64 `json:"avg_monthly_expense"`
	ActiveMonths      int     `json:"active_months"`
}

// PeakMonthResponse represents one peak in the response.
type PeakMonthResponse struct {
	Month     string  `json:"month"`
	Value     float64 `json:"value"`
	Deviation float64 `json:"deviation"`
}

// PeakAnalysisResponse represents the peak analysis in the response.
type PeakAnalysisResponse struct {
	Income  PeakMonthResponse `json:"income"`
	Expense PeakMonthResponse `json:"expense"`
	Savings PeakMonthResponse `json:"savings"`
}

// QuarterResponse represents one quarter in the response.
type QuarterResponse struct {
	Quarter     string  `json:"quarter"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Savings     float64 `json:"savings"`
	SavingsRate float64 `json:"savings_rate"`
}

// MonthSnapshotResponse represents the current-month snapshot.
type MonthSnapshotResponse struct {
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Savings     float64 `json:"savings"`
	SavingsRate float64 `json:"savings_rate"`
}

// PredictionResponse represents the forecast in the response.
type PredictionResponse struct {
	NextMonthIncome      float64                  `json:"next_month_income"`
	NextMonthExpenses    float64                  `json:"next_month_expenses"`
	NextMonthSavingsRate float64                  `json:"next_month_savings_rate"`
	Projection           []ProjectedMonthResponse `json:"projection"`
	Trend                string                   `json:"trend"`
}

// ProjectedMonthResponse represents one projected month.
type ProjectedMonthResponse struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// ScoreFactorResponse represents one weighted factor in a score.
type ScoreFactorResponse struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// HealthScoreResponse represents the health score in the response.
type HealthScoreResponse struct {
	Score   int                   `json:"score"`
	Grade   string                `json:"grade"`
	Factors []ScoreFactorResponse `json:"factors"`
}

// InsightResponse represents one insight in the response.
type InsightResponse struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// ToOverviewResponse converts an analytics Overview to its response DTO.
func ToOverviewResponse(overview *analytics.Overview) OverviewResponse {
	monthly := make([]MonthlyAggregateResponse, len(overview.Monthly))
	for i, m := range overview.Monthly {
		monthly[i] = MonthlyAggregateResponse{
			Month:       m.Month,
			MonthIndex:  m.MonthIndex,
			Year:        m.Year,
			Income:      m.Income.InexactFloat64(),
			Expenses:    m.Expenses.InexactFloat64(),
			Savings:     m.Savings.InexactFloat64(),
			SavingsRate: m.SavingsRate,
		}
	}

	categories := make([]CategorySummaryResponse, len(overview.Categories))
	for i, c := range overview.Categories {
		monthlyAmounts := make(map[string]float64, len(c.Monthly))
		for month, amount := range c.Monthly {
			monthlyAmounts[month] = amount.InexactFloat64()
		}
		categories[i] = CategorySummaryResponse{
			Category:   string(c.Category),
			Total:      c.Total.InexactFloat64(),
			Percentage: c.Percentage,
			Monthly:    monthlyAmounts,
			Growth:     c.Growth,
		}
	}

	quarters := make([]QuarterResponse, len(overview.Quarters))
	for i, q := range overview.Quarters {
		quarters[i] = QuarterResponse{
			Quarter:     q.Quarter,
			Income:      q.Income.InexactFloat64(),
			Expenses:    q.Expenses.InexactFloat64(),
			Savings:     q.Savings.InexactFloat64(),
			SavingsRate: q.SavingsRate,
		}
	}

	return OverviewResponse{
		AsOf:       overview.AsOf.Format(time.RFC3339),
		Monthly:    monthly,
		Categories: categories,
		Yearly: YearlySummaryResponse{
			TotalIncome:       overview.Yearly.TotalIncome.InexactFloat64(),
			TotalExpenses:     overview.Yearly.TotalExpenses.InexactFloat64(),
			TotalSavings:      overview.Yearly.TotalSavings.InexactFloat64(),
			SavingsRate:       overview.Yearly.SavingsRate,
			TopCategory:       string(overview.Yearly.TopCategory),
			BestMonth:         overview.Yearly.BestMonth,
			WorstMonth:        overview.Yearly.WorstMonth,
			AvgMonthlyIncome:  overview.Yearly.AvgMonthlyIncome.InexactFloat64(),
			AvgMonthlyExpense: overview.Yearly.AvgMonthlyExpense.InexactFloat64(),
			ActiveMonths:      overview.Yearly.ActiveMonths,
		},
		Peaks: PeakAnalysisResponse{
			Income:  toPeakMonthResponse(overview.Peaks.Income),
			Expense: toPeakMonthResponse(overview.Peaks.Expense),
			Savings: toPeakMonthResponse(overview.Peaks.Savings),
		},
		Quarters: quarters,
		CurrentMonth: MonthSnapshotResponse{
			Income:      overview.CurrentMonth.Income.InexactFloat64(),
			Expenses:    overview.CurrentMonth.Expenses.InexactFloat64(),
			Savings:     overview.CurrentMonth.Savings.InexactFloat64(),
			SavingsRate: overview.CurrentMonth.SavingsRate,
		},
		Prediction:  ToPredictionResponse(overview.Prediction),
		HealthScore: ToHealthScoreResponse(overview.HealthScore),
		Insights:    ToInsightResponses(overview.Insights),
	}
}

func toPeakMonthResponse(peak entity.PeakMonth) PeakMonthResponse {
	return PeakMonthResponse{
		Month:     peak.Month,
		Value:     peak.Value.InexactFloat64(),
		Deviation: peak.Deviation,
	}
}

// ToPredictionResponse converts a Prediction entity to its response DTO.
func ToPredictionResponse(prediction entity.Prediction) PredictionResponse {
	projection := make([]ProjectedMonthResponse, len(prediction.Projection))
	for i, p := range prediction.Projection {
		projection[i] = ProjectedMonthResponse{
			Income:   p.Income,
			Expenses: p.Expenses,
			Savings:  p.Savings,
		}
	}
	return PredictionResponse{
		NextMonthIncome:      prediction.NextMonthIncome,
		NextMonthExpenses:    prediction.NextMonthExpenses,
		NextMonthSavingsRate: prediction.NextMonthSavingsRate,
		Projection:           projection,
		Trend:                string(prediction.Trend),
	}
}

// ToHealthScoreResponse converts a FinancialHealthScore to its response DTO.
func ToHealthScoreResponse(score entity.FinancialHealthScore) HealthScoreResponse {
	return HealthScoreResponse{
		Score:   score.Score,
		Grade:   score.Grade,
		Factors: toScoreFactorResponses(score.Factors),
	}
}

func toScoreFactorResponses(factors []entity.ScoreFactor) []ScoreFactorResponse {
	out := make([]ScoreFactorResponse, len(factors))
	for i, f := range factors {
		out[i] = ScoreFactorResponse{Name: f.Name, Score: f.Score, Weight: f.Weight}
	}
	return out
}

// ToInsightResponses converts insights to their response DTOs.
func ToInsightResponses(insights []entity.Insight) []InsightResponse {
	out := make([]InsightResponse, len(insights))
	for i, in := range insights {
		out[i] = InsightResponse{Severity: string(in.Severity), Message: in.Message}
	}
	return out
}
