package planner

import (
	"context"

	"github.com/finsight/backend/internal/domain/entity"
	domainerror "github.com/finsight/backend/internal/domain/error"
)

// PlanPurchaseInput represents the input for simulating a purchase.
type PlanPurchaseInput struct {
	Profile entity.FinancialProfile
	Details entity.PurchaseDetails
}

// PlanPurchaseUseCase runs the full purchase simulation: both financing
// analyses, the comparison, the feasibility score and the planner
// insights.
type PlanPurchaseUseCase struct{}

// NewPlanPurchaseUseCase creates a new PlanPurchaseUseCase instance.
func NewPlanPurchaseUseCase() *PlanPurchaseUseCase {
	return &PlanPurchaseUseCase{}
}

// Execute validates the purchase description and assembles the plan.
// Degenerate profile numbers (zero income, zero savings) pass through
// and produce neutral output; only logically impossible requests fail.
func (uc *PlanPurchaseUseCase) Execute(_ context.Context, input PlanPurchaseInput) (*entity.PurchasePlan, error) {
	if err := validateDetails(input.Details); err != nil {
		return nil, err
	}

	comparison := Compare(input.Profile, input.Details)
	score := ScorePurchase(input.Profile, input.Details, comparison.EMI, comparison.Savings)
	insights := GenerateInsights(input.Profile, input.Details, comparison, score)

	return &entity.PurchasePlan{
		EMI:        comparison.EMI,
		Savings:    comparison.Savings,
		Comparison: comparison,
		Score:      score,
		Insights:   insights,
	}, nil
}

// validateDetails rejects purchase descriptions that are logically
// impossible rather than merely degenerate. A non-positive price is
// degenerate, not impossible: the calculators yield a zeroed plan for it.
func validateDetails(details entity.PurchaseDetails) error {
	if !details.Mode.IsValid() {
		return domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidMode,
			"unknown purchase mode",
			domainerror.ErrInvalidMode,
		)
	}

	if details.Mode == entity.ModeInstallment {
		if details.TenureMonths < 1 {
			return domainerror.NewPlannerError(
				domainerror.ErrCodeInvalidTenure,
				"installment tenure must be at least one month",
				domainerror.ErrInvalidTenure,
			)
		}
		if details.DownPayment > details.Price {
			return domainerror.NewPlannerError(
				domainerror.ErrCodeDownPaymentExceedsPrice,
				"down payment exceeds the purchase price",
				domainerror.ErrDownPaymentExceedsPrice,
			)
		}
	}

	if !details.StartDate.IsZero() && !details.EndDate.IsZero() && !details.EndDate.After(details.StartDate) {
		return domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidSchedule,
			"schedule end date must be after its start date",
			domainerror.ErrInvalidSchedule,
		)
	}

	return nil
}
