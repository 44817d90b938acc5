package planner

import (
	"github.com/finsight/backend/internal/domain/entity"
	"github.com/finsight/backend/internal/domain/valueobject"
)

// Purchase score factor weights. They must sum to 1.0.
const (
	weightAffordability  = 0.30
	weightSavingsImpact  = 0.25
	weightCushion        = 0.20
	weightTimeEfficiency = 0.15
	weightDebtRisk       = 0.10
)

// Feasibility bands for the composite purchase score.
const (
	feasibilitySafeMin     = 65
	feasibilityModerateMin = 40
)

// ScorePurchase derives the weighted feasibility assessment from the two
// analyses. It shares the clamp-weight-sum discipline with the health
// score.
func ScorePurchase(profile entity.FinancialProfile, details entity.PurchaseDetails, emi entity.EMIAnalysis, savings entity.SavingsAnalysis) entity.PurchaseScore {
	factors := []entity.ScoreFactor{
		{Name: "Affordability", Score: affordabilityScore(details, emi, savings), Weight: weightAffordability},
		{Name: "Savings Impact", Score: savingsImpactScore(profile, details, emi), Weight: weightSavingsImpact},
		{Name: "Financial Cushion", Score: cushionScore(profile), Weight: weightCushion},
		{Name: "Time Efficiency", Score: timeEfficiencyScore(details, savings), Weight: weightTimeEfficiency},
		{Name: "Debt Risk", Score: debtRiskScore(details, emi), Weight: weightDebtRisk},
	}

	score := valueobject.CompositeScore(factors)
	return entity.PurchaseScore{
		Score:       score,
		Feasibility: feasibilityFor(score),
		Factors:     factors,
	}
}

// affordabilityScore tiers by EMI burden for installment purchases and
// by months to save otherwise.
func affordabilityScore(details entity.PurchaseDetails, emi entity.EMIAnalysis, savings entity.SavingsAnalysis) float64 {
	if details.Mode == entity.ModeInstallment {
		switch {
		case emi.BurdenPercent < 20:
			return 100
		case emi.BurdenPercent < 30:
			return 80
		case emi.BurdenPercent < affordableBurdenLimit:
			return 60
		case emi.BurdenPercent < 50:
			return 35
		default:
			return 10
		}
	}

	switch {
	case savings.MonthsRequired == 0:
		return 100
	case savings.MonthsRequired <= 6:
		return 90
	case savings.MonthsRequired <= 12:
		return 70
	case savings.MonthsRequired <= 24:
		return 50
	default:
		return 25
	}
}

// savingsImpactScore tiers by the savings rate left after the purchase
// commitment.
func savingsImpactScore(profile entity.FinancialProfile, details entity.PurchaseDetails, emi entity.EMIAnalysis) float64 {
	rate := emi.NewSavingsRate
	if details.Mode != entity.ModeInstallment && profile.MonthlyIncome > 0 {
		rate = (profile.DisposableIncome() - details.MonthlySaving) / profile.MonthlyIncome * 100
	}

	switch {
	case rate >= 20:
		return 100
	case rate >= 10:
		return 70
	case rate >= 0:
		return 40
	default:
		return 10
	}
}

// cushionScore tiers by how many months of disposable income the
// existing savings cover.
func cushionScore(profile entity.FinancialProfile) float64 {
	disposable := profile.DisposableIncome()
	if disposable <= 0 {
		return 0
	}
	months := profile.ExistingSavings / disposable

	switch {
	case months >= 6:
		return 100
	case months >= 3:
		return 75
	case months >= 1:
		return 50
	default:
		return 20
	}
}

// timeEfficiencyScore tiers by how long the purchase takes to complete:
// the tenure for installments, the saving timeline otherwise.
func timeEfficiencyScore(details entity.PurchaseDetails, savings entity.SavingsAnalysis) float64 {
	months := savings.MonthsRequired
	if details.Mode == entity.ModeInstallment {
		months = details.TenureMonths
	}

	switch {
	case months == 0:
		return 100
	case months <= 6:
		return 90
	case months <= 12:
		return 75
	case months <= 24:
		return 50
	default:
		return 30
	}
}

// debtRiskScore rewards avoiding debt entirely; financed purchases score
// by the affordability flag.
func debtRiskScore(details entity.PurchaseDetails, emi entity.EMIAnalysis) float64 {
	if details.Mode != entity.ModeInstallment {
		return 100
	}
	if emi.IsAffordable {
		return 90
	}
	return 30
}

// feasibilityFor maps a composite score to its feasibility label.
func feasibilityFor(score int) string {
	switch {
	case score >= feasibilitySafeMin:
		return "safe"
	case score >= feasibilityModerateMin:
		return "moderate"
	default:
		return "risky"
	}
}
