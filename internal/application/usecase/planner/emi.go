// Package planner implements the purchase feasibility planner: the
// installment (EMI) calculator, the savings-timeline calculator, their
// side-by-side comparison, the weighted purchase score and the planner
// insight templates. All computations are pure functions of a
// caller-supplied financial profile and purchase description; degenerate
// numeric inputs yield zeroed, well-typed output instead of errors.
package planner

import (
	"math"

	"github.com/finsight/backend/internal/domain/entity"
)

// affordableBurdenLimit is the EMI burden, as a percent of disposable
// income, below which a purchase counts as affordable. The bound is
// strict: a burden of exactly 40% is not affordable.
const affordableBurdenLimit = 40.0

// CalculateEMI derives the installment-financing picture for the
// purchase. A zero interest rate divides the principal evenly over the
// tenure; a non-positive disposable income pins the burden at 100%.
func CalculateEMI(profile entity.FinancialProfile, details entity.PurchaseDetails) entity.EMIAnalysis {
	principal := details.Price - details.DownPayment
	if principal < 0 {
		principal = 0
	}

	var payment float64
	n := details.TenureMonths
	if n > 0 && principal > 0 {
		monthlyRate := details.AnnualRate / 12 / 100
		if monthlyRate == 0 {
			payment = principal / float64(n)
		} else {
			compound := math.Pow(1+monthlyRate, float64(n))
			payment = principal * monthlyRate * compound / (compound - 1)
		}
	}

	totalPaid := payment*float64(n) + details.DownPayment
	totalInterest := payment*float64(n) - principal
	if totalInterest < 0 {
		totalInterest = 0
	}

	disposable := profile.DisposableIncome()
	burden := 100.0
	if disposable > 0 {
		burden = payment / disposable * 100
	}

	var newSavingsRate float64
	if profile.MonthlyIncome > 0 {
		newSavingsRate = (disposable - payment) / profile.MonthlyIncome * 100
	}

	return entity.EMIAnalysis{
		Principal:        principal,
		MonthlyPayment:   payment,
		TotalPaid:        totalPaid,
		TotalInterest:    totalInterest,
		DisposableIncome: disposable,
		BurdenPercent:    burden,
		NewSavingsRate:   newSavingsRate,
		IsAffordable:     burden < affordableBurdenLimit,
	}
}
