package planner

import (
	"math"

	"github.com/finsight/backend/internal/domain/entity"
)

const (
	// timelineCap bounds the accumulation timeline returned for display.
	timelineCap = 60

	// avoidedInterestRate is the flat annual-equivalent rate used to
	// estimate the interest avoided by saving instead of financing.
	avoidedInterestRate = 0.12
)

// monthlySavingFor picks the saving amount the timeline accumulates at:
// the purchase's planned saving, falling back to the profile's extra
// saving, floored at 1 to keep the division defined.
func monthlySavingFor(profile entity.FinancialProfile, details entity.PurchaseDetails) float64 {
	saving := details.MonthlySaving
	if saving <= 0 {
		saving = profile.ExtraSaving
	}
	if saving < 1 {
		saving = 1
	}
	return saving
}

// AnalyzeSavings derives the save-to-purchase picture. With existing
// savings already covering the price, zero months are required and the
// purchase is immediately feasible.
func AnalyzeSavings(profile entity.FinancialProfile, details entity.PurchaseDetails) entity.SavingsAnalysis {
	saving := monthlySavingFor(profile, details)

	remaining := details.Price - profile.ExistingSavings
	monthsRequired := 0
	if remaining > 0 {
		monthsRequired = int(math.Ceil(remaining / saving))
	}

	timelineLen := monthsRequired
	if timelineLen > timelineCap {
		timelineLen = timelineCap
	}
	timeline := make([]entity.SavingsPoint, 0, timelineLen)
	for m := 1; m <= timelineLen; m++ {
		timeline = append(timeline, entity.SavingsPoint{
			Month:       m,
			Accumulated: profile.ExistingSavings + saving*float64(m),
		})
	}

	return entity.SavingsAnalysis{
		MonthsRequired:     monthsRequired,
		MonthlySaving:      saving,
		Timeline:           timeline,
		FeasibleWithinYear: monthsRequired <= 12,
		InterestAvoided:    details.Price * avoidedInterestRate * float64(monthsRequired) / 12,
	}
}
