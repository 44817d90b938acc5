package planner

import (
	"github.com/finsight/backend/internal/domain/entity"
)

// Compare runs both analyses regardless of the caller's chosen mode, so
// a user planning an installment still sees the savings-only alternative
// and vice versa. The break-even month is the first month, within the
// EMI tenure, where cumulative hypothetical savings contributions
// overtake cumulative installment outlay (down payment included); zero
// when that never happens.
func Compare(profile entity.FinancialProfile, details entity.PurchaseDetails) entity.ComparisonData {
	emi := CalculateEMI(profile, details)
	savings := AnalyzeSavings(profile, details)

	breakEven := 0
	saving := savings.MonthlySaving
	for m := 1; m <= details.TenureMonths; m++ {
		saved := saving * float64(m)
		paid := details.DownPayment + emi.MonthlyPayment*float64(m)
		if saved > paid {
			breakEven = m
			break
		}
	}

	return entity.ComparisonData{
		EMI:            emi,
		Savings:        savings,
		BreakEvenMonth: breakEven,
	}
}
