package planner

import (
	"fmt"

	"github.com/finsight/backend/internal/domain/entity"
)

// plannerContext carries the simulation inputs and derived analyses the
// planner rules read.
type plannerContext struct {
	profile    entity.FinancialProfile
	details    entity.PurchaseDetails
	emi        entity.EMIAnalysis
	savings    entity.SavingsAnalysis
	comparison entity.ComparisonData
	score      entity.PurchaseScore
}

// plannerRule is one independent condition-to-message rule scoped to the
// single simulated purchase.
type plannerRule struct {
	name  string
	apply func(ctx *plannerContext, out *[]entity.Insight)
}

// plannerRules is the fixed evaluation order of the planner rule bank.
var plannerRules = []plannerRule{
	{"verdict", verdictRules},
	{"price-to-income", priceToIncomeRules},
	{"emi-burden", emiBurdenRules},
	{"emi-what-if", emiWhatIfRules},
	{"emi-interest", emiInterestRules},
	{"savings-timeline", savingsTimelineRules},
	{"comparison", comparisonRules},
	{"cushion-risk", cushionRiskRules},
	{"planner-tips", plannerTipRules},
}

// GenerateInsights evaluates the planner rule bank for one simulated
// purchase. Deterministic for identical inputs.
func GenerateInsights(profile entity.FinancialProfile, details entity.PurchaseDetails, comparison entity.ComparisonData, score entity.PurchaseScore) []entity.Insight {
	ctx := &plannerContext{
		profile:    profile,
		details:    details,
		emi:        comparison.EMI,
		savings:    comparison.Savings,
		comparison: comparison,
		score:      score,
	}

	var insights []entity.Insight
	for _, rule := range plannerRules {
		rule.apply(ctx, &insights)
	}
	return insights
}

func addInsight(out *[]entity.Insight, severity entity.InsightSeverity, format string, args ...interface{}) {
	*out = append(*out, entity.Insight{
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
	})
}

// verdictRules opens with the overall feasibility verdict.
func verdictRules(ctx *plannerContext, out *[]entity.Insight) {
	switch ctx.score.Feasibility {
	case "safe":
		addInsight(out, entity.SeveritySuccess, "Buying %s looks financially safe with a feasibility score of %d/100.", ctx.details.ItemName, ctx.score.Score)
	case "moderate":
		addInsight(out, entity.SeverityWarning, "Buying %s is manageable but will stretch your budget (score %d/100).", ctx.details.ItemName, ctx.score.Score)
	default:
		addInsight(out, entity.SeverityDanger, "Buying %s now would strain your finances (score %d/100). Consider waiting.", ctx.details.ItemName, ctx.score.Score)
	}

	if ctx.profile.ExistingSavings >= ctx.details.Price && ctx.details.Price > 0 {
		addInsight(out, entity.SeveritySuccess, "Your existing savings already cover the full price of %s. You could buy it outright today.", ctx.details.ItemName)
	}
}

// priceToIncomeRules comments on the purchase size relative to income.
func priceToIncomeRules(ctx *plannerContext, out *[]entity.Insight) {
	if ctx.profile.MonthlyIncome <= 0 || ctx.details.Price <= 0 {
		return
	}
	ratio := ctx.details.Price / ctx.profile.MonthlyIncome
	switch {
	case ratio <= 1:
		addInsight(out, entity.SeverityInfo, "The price is under one month's income. A minor purchase for your budget.")
	case ratio <= 3:
		addInsight(out, entity.SeverityInfo, "The price equals %.1f months of income. Plan for it, but it is within reach.", ratio)
	case ratio <= 6:
		addInsight(out, entity.SeverityWarning, "The price equals %.1f months of income. This is a major purchase for your budget.", ratio)
	default:
		addInsight(out, entity.SeverityDanger, "The price equals %.1f months of income. Purchases this large deserve serious deliberation.", ratio)
	}
}

// emiBurdenRules covers installment-specific affordability.
func emiBurdenRules(ctx *plannerContext, out *[]entity.Insight) {
	if ctx.details.Mode != entity.ModeInstallment {
		return
	}

	if ctx.emi.DisposableIncome <= 0 {
		addInsight(out, entity.SeverityDanger, "You have no disposable income after expenses and bills. Any installment would be unaffordable right now.")
		return
	}

	switch {
	case ctx.emi.BurdenPercent < 20:
		addInsight(out, entity.SeveritySuccess, "The monthly payment of %.0f uses only %.1f%% of your disposable income.", ctx.emi.MonthlyPayment, ctx.emi.BurdenPercent)
	case ctx.emi.IsAffordable:
		addInsight(out, entity.SeverityInfo, "The monthly payment of %.0f uses %.1f%% of your disposable income. Affordable, but keep an eye on other commitments.", ctx.emi.MonthlyPayment, ctx.emi.BurdenPercent)
	default:
		addInsight(out, entity.SeverityDanger, "The monthly payment of %.0f would consume %.1f%% of your disposable income, at or beyond the 40%% affordability limit.", ctx.emi.MonthlyPayment, ctx.emi.BurdenPercent)
	}

	if ctx.emi.NewSavingsRate < 10 && ctx.emi.NewSavingsRate >= 0 {
		addInsight(out, entity.SeverityWarning, "After the installment your savings rate drops to %.1f%%. Your buffer-building will stall during the tenure.", ctx.emi.NewSavingsRate)
	} else if ctx.emi.NewSavingsRate < 0 {
		addInsight(out, entity.SeverityDanger, "After the installment you would be running a monthly deficit.")
	}
}

// emiWhatIfRules suggests concrete changes when the installment is not
// affordable as specified.
func emiWhatIfRules(ctx *plannerContext, out *[]entity.Insight) {
	if ctx.details.Mode != entity.ModeInstallment || ctx.emi.IsAffordable || ctx.emi.DisposableIncome <= 0 {
		return
	}

	// Longer tenure spreads the principal thinner.
	if ctx.details.TenureMonths > 0 && ctx.details.TenureMonths < 48 {
		extended := ctx.details
		extended.TenureMonths = ctx.details.TenureMonths + 6
		if CalculateEMI(ctx.profile, extended).IsAffordable {
			addInsight(out, entity.SeverityTip, "Extending the tenure from %d to %d months would bring the payment within the affordable range.", ctx.details.TenureMonths, extended.TenureMonths)
		}
	}

	// A larger down payment shrinks the principal.
	if ctx.profile.ExistingSavings > ctx.details.DownPayment {
		larger := ctx.details
		larger.DownPayment = ctx.details.DownPayment + (ctx.profile.ExistingSavings-ctx.details.DownPayment)/2
		if CalculateEMI(ctx.profile, larger).IsAffordable {
			addInsight(out, entity.SeverityTip, "Raising the down payment to %.0f (using part of your savings) would make the installment affordable.", larger.DownPayment)
		}
	}
}

// emiInterestRules puts the financing cost in perspective.
func emiInterestRules(ctx *plannerContext, out *[]entity.Insight) {
	if ctx.details.Mode != entity.ModeInstallment || ctx.emi.TotalInterest <= 0 || ctx.details.Price <= 0 {
		return
	}
	share := ctx.emi.TotalInterest / ctx.details.Price * 100
	if share > 20 {
		addInsight(out, entity.SeverityWarning, "Financing adds %.0f in interest, %.1f%% on top of the price. Saving first would avoid most of it.", ctx.emi.TotalInterest, share)
	} else {
		addInsight(out, entity.SeverityInfo, "Financing adds %.0f in interest over the tenure (%.1f%% of the price).", ctx.emi.TotalInterest, share)
	}
}

// savingsTimelineRules covers the save-to-purchase path.
func savingsTimelineRules(ctx *plannerContext, out *[]entity.Insight) {
	if ctx.details.Mode == entity.ModeInstallment {
		return
	}

	switch {
	case ctx.savings.MonthsRequired == 0:
		addInsight(out, entity.SeverityInfo, "No saving period needed; your current savings already cover the price.")
	case ctx.savings.FeasibleWithinYear:
		addInsight(out, entity.SeveritySuccess, "Saving %.0f per month gets you to %s in %d months.", ctx.savings.MonthlySaving, ctx.details.ItemName, ctx.savings.MonthsRequired)
	case ctx.savings.MonthsRequired <= 24:
		addInsight(out, entity.SeverityInfo, "At %.0f per month you would need %d months. Raising the monthly amount would shorten the wait.", ctx.savings.MonthlySaving, ctx.savings.MonthsRequired)
	default:
		addInsight(out, entity.SeverityWarning, "At %.0f per month the purchase is %d months away. Reconsider the amount saved or the target.", ctx.savings.MonthlySaving, ctx.savings.MonthsRequired)
	}

	if ctx.savings.InterestAvoided > 0 && ctx.savings.MonthsRequired > 0 {
		addInsight(out, entity.SeverityTip, "Saving instead of financing avoids roughly %.0f in interest.", ctx.savings.InterestAvoided)
	}
}

// comparisonRules contrasts the two paths when both are meaningful.
func comparisonRules(ctx *plannerContext, out *[]entity.Insight) {
	if ctx.details.TenureMonths <= 0 || ctx.emi.MonthlyPayment <= 0 {
		return
	}
	if ctx.comparison.BreakEvenMonth > 0 {
		addInsight(out, entity.SeverityInfo, "By month %d your hypothetical savings contributions would overtake the cumulative installment outlay.", ctx.comparison.BreakEvenMonth)
	}
}

// cushionRiskRules warns when the purchase erodes the emergency buffer.
func cushionRiskRules(ctx *plannerContext, out *[]entity.Insight) {
	disposable := ctx.profile.DisposableIncome()
	if disposable <= 0 {
		return
	}
	cushionMonths := ctx.profile.ExistingSavings / disposable

	if cushionMonths < 3 {
		addInsight(out, entity.SeverityWarning, "Your savings cover %.1f months of disposable income. Build a 3-month cushion before committing to this purchase.", cushionMonths)
	}
	if ctx.details.Mode != entity.ModeInstallment && ctx.details.Price > 0 && ctx.profile.ExistingSavings >= ctx.details.Price {
		remaining := ctx.profile.ExistingSavings - ctx.details.Price
		if remaining < disposable*3 {
			addInsight(out, entity.SeverityWarning, "Paying outright would leave only %.0f in savings, thinning your emergency buffer.", remaining)
		}
	}
}

// plannerTipRules appends the evergreen planner advice.
func plannerTipRules(ctx *plannerContext, out *[]entity.Insight) {
	addInsight(out, entity.SeverityTip, "Price the total cost of ownership, not just the sticker price, before deciding.")
	if ctx.details.Mode == entity.ModeInstallment {
		addInsight(out, entity.SeverityTip, "Shorter tenures cost less in interest even though the monthly payment is higher.")
	}
}
