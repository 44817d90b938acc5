package dto

import (
	"time"

	"github.com/finsight/backend/internal/domain/entity"
)

// PlanPurchaseRequest represents the request body for a purchase simulation.
type PlanPurchaseRequest struct {
	Profile  ProfileRequest  `json:"profile" binding:"required"`
	Purchase PurchaseRequest `json:"purchase" binding:"required"`
}

// ProfileRequest represents the caller-supplied financial profile.
type ProfileRequest struct {
	MonthlyIncome   float64 `json:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	MonthlyBills    float64 `json:"monthly_bills"`
	ExistingSavings float64 `json:"existing_savings"`
	ExtraSaving     float64 `json:"extra_saving"`
}

// PurchaseRequest represents the purchase description.
type PurchaseRequest struct {
	ItemName      string  `json:"item_name" binding:"required,min=1,max=255"`
	Price         float64 `json:"price" binding:"required"`
	Mode          string  `json:"mode" binding:"required"`
	DownPayment   float64 `json:"down_payment"`
	TenureMonths  int     `json:"tenure_months"`
	AnnualRate    float64 `json:"annual_rate"`
	MonthlySaving float64 `json:"monthly_saving"`
	StartDate     string  `json:"start_date"` // YYYY-MM-DD, optional
	EndDate       string  `json:"end_date"`   // YYYY-MM-DD, optional
}

// ToEntities converts the request into domain inputs. Date parsing
// failures surface as zero times; validation happens in the use case.
func (r PlanPurchaseRequest) ToEntities() (entity.FinancialProfile, entity.PurchaseDetails) {
	profile := entity.FinancialProfile{
		MonthlyIncome:   r.Profile.MonthlyIncome,
		MonthlyExpenses: r.Profile.MonthlyExpenses,
		MonthlyBills:    r.Profile.MonthlyBills,
		ExistingSavings: r.Profile.ExistingSavings,
		ExtraSaving:     r.Profile.ExtraSaving,
	}

	details := entity.PurchaseDetails{
		ItemName:      r.Purchase.ItemName,
		Price:         r.Purchase.Price,
		Mode:          entity.PurchaseMode(r.Purchase.Mode),
		DownPayment:   r.Purchase.DownPayment,
		TenureMonths:  r.Purchase.TenureMonths,
		AnnualRate:    r.Purchase.AnnualRate,
		MonthlySaving: r.Purchase.MonthlySaving,
	}
	if r.Purchase.StartDate != "" {
		details.StartDate, _ = time.Parse(time.DateOnly, r.Purchase.StartDate)
	}
	if r.Purchase.EndDate != "" {
		details.EndDate, _ = time.Parse(time.DateOnly, r.Purchase.EndDate)
	}
	return profile, details
}

// EMIResponse represents the installment analysis in the response.
type EMIResponse struct {
	Principal        float64 `json:"principal"`
	MonthlyPayment   float64 `json:"monthly_payment"`
	TotalPaid        float64 `json:"total_paid"`
	TotalInterest    float64 `json:"total_interest"`
	DisposableIncome float64 `json:"disposable_income"`
	BurdenPercent    float64 `json:"burden_percent"`
	NewSavingsRate   float64 `json:"new_savings_rate"`
	IsAffordable     bool    `json:"is_affordable"`
}

// SavingsPointResponse represents one timeline point.
type SavingsPointResponse struct {
	Month       int     `json:"month"`
	Accumulated float64 `json:"accumulated"`
}

// SavingsResponse represents the savings analysis in the response.
type SavingsResponse struct {
	MonthsRequired     int                    `json:"months_required"`
	MonthlySaving      float64                `json:"monthly_saving"`
	Timeline           []SavingsPointResponse `json:"timeline"`
	FeasibleWithinYear bool                   `json:"feasible_within_year"`
	InterestAvoided    float64                `json:"interest_avoided"`
}

// PurchaseScoreResponse represents the feasibility score in the response.
type PurchaseScoreResponse struct {
	Score       int                   `json:"score"`
	Feasibility string                `json:"feasibility"`
	Factors     []ScoreFactorResponse `json:"factors"`
}

// PurchasePlanResponse represents the full simulation response.
type PurchasePlanResponse struct {
	EMI            EMIResponse           `json:"emi"`
	Savings        SavingsResponse       `json:"savings"`
	BreakEvenMonth int                   `json:"break_even_month"`
	Score          PurchaseScoreResponse `json:"score"`
	Insights       []InsightResponse     `json:"insights"`
}

// ToPurchasePlanResponse converts a PurchasePlan to its response DTO.
func ToPurchasePlanResponse(plan *entity.PurchasePlan) PurchasePlanResponse {
	timeline := make([]SavingsPointResponse, len(plan.Savings.Timeline))
	for i, p := range plan.Savings.Timeline {
		timeline[i] = SavingsPointResponse{Month: p.Month, Accumulated: p.Accumulated}
	}

	return PurchasePlanResponse{
		EMI: EMIResponse{
			Principal:        plan.EMI.Principal,
			MonthlyPayment:   plan.EMI.MonthlyPayment,
			TotalPaid:        plan.EMI.TotalPaid,
			TotalInterest:    plan.EMI.TotalInterest,
			DisposableIncome: plan.EMI.DisposableIncome,
			BurdenPercent:    plan.EMI.BurdenPercent,
			NewSavingsRate:   plan.EMI.NewSavingsRate,
			IsAffordable:     plan.EMI.IsAffordable,
		},
		Savings: SavingsResponse{
			MonthsRequired:     plan.Savings.MonthsRequired,
			MonthlySaving:      plan.Savings.MonthlySaving,
			Timeline:           timeline,
			FeasibleWithinYear: plan.Savings.FeasibleWithinYear,
			InterestAvoided:    plan.Savings.InterestAvoided,
		},
		BreakEvenMonth: plan.Comparison.BreakEvenMonth,
		Score: PurchaseScoreResponse{
			Score:       plan.Score.Score,
			Feasibility: plan.Score.Feasibility,
			Factors:     toScoreFactorResponses(plan.Score.Factors),
		},
		Insights: ToInsightResponses(plan.Insights),
	}
}
