package entity

import "time"

// PurchaseMode selects how a planned purchase would be financed.
type PurchaseMode string

const (
	ModeInstallment PurchaseMode = "installment"
	ModeLumpSum     PurchaseMode = "lump-sum-savings"
	ModeSaveThenBuy PurchaseMode = "save-then-buy"
)

// IsValid reports whether the mode is one of the known values.
func (m PurchaseMode) IsValid() bool {
	return m == ModeInstallment || m == ModeLumpSum || m == ModeSaveThenBuy
}

// FinancialProfile is the caller-supplied monthly financial picture the
// planner simulates against. It is typically pre-filled from the yearly
// summary but the caller may override any field.
type FinancialProfile struct {
	MonthlyIncome   float64 `json:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	MonthlyBills    float64 `json:"monthly_bills"`
	ExistingSavings float64 `json:"existing_savings"`
	ExtraSaving     float64 `json:"extra_saving"`
}

// DisposableIncome is what remains after expenses and routine bills.
func (p FinancialProfile) DisposableIncome() float64 {
	return p.MonthlyIncome - p.MonthlyExpenses - p.MonthlyBills
}

// PurchaseDetails describes the purchase being simulated.
type PurchaseDetails struct {
	ItemName      string       `json:"item_name"`
	Price         float64      `json:"price"`
	Mode          PurchaseMode `json:"mode"`
	DownPayment   float64      `json:"down_payment"`   // installment mode
	TenureMonths  int          `json:"tenure_months"`  // installment mode
	AnnualRate    float64      `json:"annual_rate"`    // installment mode, percent
	MonthlySaving float64      `json:"monthly_saving"` // savings modes
	StartDate     time.Time    `json:"start_date"`
	EndDate       time.Time    `json:"end_date"` // optional target completion date
}

// EMIAnalysis is the derived installment-financing picture.
type EMIAnalysis struct {
	Principal        float64 `json:"principal"`
	MonthlyPayment   float64 `json:"monthly_payment"`
	TotalPaid        float64 `json:"total_paid"`
	TotalInterest    float64 `json:"total_interest"`
	DisposableIncome float64 `json:"disposable_income"`
	BurdenPercent    float64 `json:"burden_percent"` // payment as % of disposable income
	NewSavingsRate   float64 `json:"new_savings_rate"`
	IsAffordable     bool    `json:"is_affordable"` // burden strictly below 40%
}

// SavingsPoint is one month of the accumulation timeline.
type SavingsPoint struct {
	Month       int     `json:"month"`
	Accumulated float64 `json:"accumulated"`
}

// SavingsAnalysis is the derived save-to-purchase picture.
type SavingsAnalysis struct {
	MonthsRequired     int            `json:"months_required"`
	MonthlySaving      float64        `json:"monthly_saving"`
	Timeline           []SavingsPoint `json:"timeline"` // capped at 60 points for display
	FeasibleWithinYear bool           `json:"feasible_within_year"`
	InterestAvoided    float64        `json:"interest_avoided"`
}

// ComparisonData places both financing options side by side regardless of
// the caller's chosen mode.
type ComparisonData struct {
	EMI            EMIAnalysis     `json:"emi"`
	Savings        SavingsAnalysis `json:"savings"`
	BreakEvenMonth int             `json:"break_even_month"` // 0 when never reached within the EMI tenure
}

// PurchaseScore is the weighted feasibility assessment of the purchase.
type PurchaseScore struct {
	Score       int           `json:"score"`       // 0-100
	Feasibility string        `json:"feasibility"` // safe, moderate, risky
	Factors     []ScoreFactor `json:"factors"`
}

// PurchasePlan bundles every derived planner output for one simulation.
type PurchasePlan struct {
	EMI        EMIAnalysis     `json:"emi"`
	Savings    SavingsAnalysis `json:"savings"`
	Comparison ComparisonData  `json:"comparison"`
	Score      PurchaseScore   `json:"score"`
	Insights   []Insight       `json:"insights"`
}
