package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/domain/entity"
)

// insightContext carries every derived view the rules read. It is built
// once per evaluation so all rules see the same instant.
type insightContext struct {
	asOf       time.Time
	aggregates []entity.MonthlyAggregate
	categories []entity.CategorySummary
	yearly     entity.YearlySummary
	snapshot   entity.MonthSnapshot
	prediction entity.Prediction
}

// insightRule is one independent condition-to-message rule. A rule may
// append zero, one or several insights.
type insightRule struct {
	name  string
	apply func(ctx *insightContext, out *[]entity.Insight)
}

// insightRules is the fixed evaluation order of the rule bank. Consumers
// rely on this ordering: structural findings first, generic tips last.
var insightRules = []insightRule{
	{"savings-rate-tiers", savingsRateRules},
	{"category-overspend", categoryOverspendRules},
	{"month-over-month", monthOverMonthRules},
	{"budget-breach", budgetBreachRules},
	{"best-worst-month", bestWorstMonthRules},
	{"spending-consistency", spendingConsistencyRules},
	{"emergency-fund", emergencyFundRules},
	{"positive-streak", positiveStreakRules},
	{"investment-suggestion", investmentRules},
	{"forecast", forecastRules},
	{"named-category", namedCategoryRules},
	{"expense-anomaly", anomalyRules},
	{"needs-ratio", needsRatioRules},
	{"category-growth", categoryGrowthRules},
	{"general-tips", generalTipRules},
}

// GenerateInsights evaluates the full rule bank against the user's
// records at the given instant. With no records at all it returns
// exactly one informational getting-started insight. Output is
// deterministic for identical inputs.
func GenerateInsights(incomes []*entity.IncomeEntry, expenses []*entity.ExpenseEntry, asOf time.Time) []entity.Insight {
	if len(incomes) == 0 && len(expenses) == 0 {
		return []entity.Insight{{
			Severity: entity.SeverityInfo,
			Message:  "Start by adding your income and expenses to unlock personalized insights about your finances.",
		}}
	}

	aggregates := BuildMonthlyAggregates(incomes, expenses, asOf)
	ctx := &insightContext{
		asOf:       asOf,
		aggregates: aggregates,
		categories: BuildCategorySummaries(expenses, asOf),
		yearly:     BuildYearlySummary(incomes, expenses, asOf),
		snapshot:   BuildMonthSnapshot(incomes, expenses, asOf),
		prediction: Forecast(aggregates),
	}

	var insights []entity.Insight
	for _, rule := range insightRules {
		rule.apply(ctx, &insights)
	}
	return insights
}

func add(out *[]entity.Insight, severity entity.InsightSeverity, format string, args ...interface{}) {
	*out = append(*out, entity.Insight{
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
	})
}

// savingsRateRules grades the overall savings rate into tiers.
func savingsRateRules(ctx *insightContext, out *[]entity.Insight) {
	rate := ctx.yearly.SavingsRate
	switch {
	case rate >= 30:
		add(out, entity.SeveritySuccess, "Excellent! You are saving %.1f%% of your income, well above the recommended 20%%.", rate)
	case rate >= 20:
		add(out, entity.SeveritySuccess, "Good job. Your savings rate of %.1f%% meets the recommended 20%% target.", rate)
	case rate >= 10:
		add(out, entity.SeverityInfo, "Your savings rate is %.1f%%. Try to push it toward 20%% by trimming discretionary spending.", rate)
	case rate > 0:
		add(out, entity.SeverityWarning, "Your savings rate is only %.1f%%. Small recurring costs are a good place to start cutting.", rate)
	default:
		if ctx.yearly.TotalIncome.IsPositive() {
			add(out, entity.SeverityDanger, "You are spending more than you earn. Review your largest expense categories urgently.")
		}
	}
}

// categoryOverspendRules flags concentration in the largest category.
func categoryOverspendRules(ctx *insightContext, out *[]entity.Insight) {
	if len(ctx.categories) == 0 {
		return
	}
	top := ctx.categories[0]
	switch {
	case top.Percentage > 50:
		add(out, entity.SeverityDanger, "%s takes up %.1f%% of your spending. More than half your money goes to a single category.", top.Category, top.Percentage)
	case top.Percentage > 40:
		add(out, entity.SeverityWarning, "%s is your dominant expense at %.1f%% of total spending.", top.Category, top.Percentage)
	case top.Percentage > 30:
		add(out, entity.SeverityInfo, "%s leads your spending at %.1f%% of the total.", top.Category, top.Percentage)
	}
}

// monthOverMonthRules compares the two most recent months of the
// trailing window.
func monthOverMonthRules(ctx *insightContext, out *[]entity.Insight) {
	n := len(ctx.aggregates)
	if n < 2 {
		return
	}
	current := ctx.aggregates[n-1]
	previous := ctx.aggregates[n-2]
	if !previous.Expenses.IsPositive() {
		return
	}

	change, _ := current.Expenses.Sub(previous.Expenses).Div(previous.Expenses).Mul(decimal.NewFromInt(100)).Float64()
	switch {
	case change > 20:
		add(out, entity.SeverityWarning, "Your expenses rose %.1f%% compared to %s. Check what changed.", change, previous.Month)
	case change < -20:
		add(out, entity.SeveritySuccess, "Nice work, your expenses dropped %.1f%% compared to %s.", -change, previous.Month)
	}
}

// budgetBreachRules flags every trailing month where spending exceeded
// income despite income being present.
func budgetBreachRules(ctx *insightContext, out *[]entity.Insight) {
	for _, a := range ctx.aggregates {
		if a.Income.IsPositive() && a.Expenses.GreaterThan(a.Income) {
			add(out, entity.SeverityDanger, "In %s %d your expenses exceeded your income. That month broke your budget.", a.Month, a.Year)
		}
	}
}

// bestWorstMonthRules surfaces the strongest and weakest months.
func bestWorstMonthRules(ctx *insightContext, out *[]entity.Insight) {
	if ctx.yearly.BestMonth != "" && ctx.yearly.ActiveMonths >= 2 {
		add(out, entity.SeverityInfo, "%s was your best month for saving; %s had your highest spending.", ctx.yearly.BestMonth, ctx.yearly.WorstMonth)
	}
}

// spendingConsistencyRules warns on erratic month-to-month spending.
func spendingConsistencyRules(ctx *insightContext, out *[]entity.Insight) {
	consistency := consistencyScore(ctx.aggregates)
	if consistency < 50 {
		add(out, entity.SeverityWarning, "Your monthly spending varies a lot. A consistent budget makes planning much easier.")
	}
}

// emergencyFundRules checks accumulated savings against monthly spending.
func emergencyFundRules(ctx *insightContext, out *[]entity.Insight) {
	if !ctx.yearly.AvgMonthlyExpense.IsPositive() {
		return
	}
	monthsCovered, _ := ctx.yearly.TotalSavings.Div(ctx.yearly.AvgMonthlyExpense).Float64()
	switch {
	case monthsCovered < 0:
		// Negative savings already covered by the savings-rate rules.
	case monthsCovered < 3:
		add(out, entity.SeverityDanger, "Your savings cover only %.1f months of expenses. Aim for an emergency fund of at least 3 months.", monthsCovered)
	case monthsCovered < 6:
		add(out, entity.SeverityWarning, "Your savings cover %.1f months of expenses. A 6-month emergency fund gives you a safer cushion.", monthsCovered)
	default:
		add(out, entity.SeveritySuccess, "Your emergency fund covers %.1f months of expenses. Well protected.", monthsCovered)
	}
}

// positiveStreakRules rewards consecutive months of positive savings.
func positiveStreakRules(ctx *insightContext, out *[]entity.Insight) {
	streak := 0
	for i := len(ctx.aggregates) - 1; i >= 0; i-- {
		a := ctx.aggregates[i]
		if !a.Active() {
			break
		}
		if !a.Savings.IsPositive() {
			break
		}
		streak++
	}
	if streak >= 3 {
		add(out, entity.SeveritySuccess, "You have saved money for %d months in a row. Keep the streak going.", streak)
	}
}

// investmentRules suggests investing once the rate and balance allow.
func investmentRules(ctx *insightContext, out *[]entity.Insight) {
	if ctx.yearly.SavingsRate < 20 || !ctx.yearly.AvgMonthlyExpense.IsPositive() {
		return
	}
	monthsCovered, _ := ctx.yearly.TotalSavings.Div(ctx.yearly.AvgMonthlyExpense).Float64()
	if monthsCovered >= 6 {
		add(out, entity.SeverityInfo, "With a %.1f%% savings rate and a solid emergency fund, consider putting surplus savings into investments.", ctx.yearly.SavingsRate)
	}
}

// forecastRules translates the prediction into guidance.
func forecastRules(ctx *insightContext, out *[]entity.Insight) {
	switch ctx.prediction.Trend {
	case entity.TrendImproving:
		add(out, entity.SeveritySuccess, "Your savings trend is improving. Next month's savings rate is projected at %.1f%%.", ctx.prediction.NextMonthSavingsRate)
	case entity.TrendDeclining:
		add(out, entity.SeverityWarning, "Your savings trend is declining. Next month's savings rate is projected at %.1f%%.", ctx.prediction.NextMonthSavingsRate)
	}
	if len(ctx.prediction.Projection) > 0 && ctx.prediction.Projection[0].Savings < 0 {
		add(out, entity.SeverityDanger, "At the current pace you are projected to overspend next month by %.0f.", -ctx.prediction.Projection[0].Savings)
	}
}

// namedCategoryRules applies per-category heuristics.
func namedCategoryRules(ctx *insightContext, out *[]entity.Insight) {
	for _, c := range ctx.categories {
		switch c.Category {
		case entity.CategoryFood:
			if c.Percentage > 25 {
				add(out, entity.SeverityInfo, "Food is %.1f%% of your spending. Meal planning and cooking at home can bring this down.", c.Percentage)
			}
		case entity.CategoryEntertainment:
			if c.Percentage > 15 {
				add(out, entity.SeverityWarning, "Entertainment is %.1f%% of your spending. Look for subscriptions you no longer use.", c.Percentage)
			}
		case entity.CategoryShopping:
			if c.Percentage > 20 {
				add(out, entity.SeverityWarning, "Shopping is %.1f%% of your spending. A 24-hour rule before purchases helps curb impulse buys.", c.Percentage)
			}
		case entity.CategoryBills:
			if c.Percentage > 40 {
				add(out, entity.SeverityInfo, "Bills are %.1f%% of your spending. It may be worth renegotiating recurring contracts.", c.Percentage)
			}
		case entity.CategoryTransport:
			if c.Percentage > 15 {
				add(out, entity.SeverityInfo, "Transport is %.1f%% of your spending. Consider cheaper commute options where possible.", c.Percentage)
			}
		}
	}
}

// anomalyRules flags months whose spending deviates more than 1.5x from
// the average of active expense months.
func anomalyRules(ctx *insightContext, out *[]entity.Insight) {
	var sum decimal.Decimal
	count := 0
	for _, a := range ctx.aggregates {
		if a.Expenses.IsPositive() {
			sum = sum.Add(a.Expenses)
			count++
		}
	}
	if count < 2 {
		return
	}
	mean := sum.Div(decimal.NewFromInt(int64(count)))
	threshold := mean.Mul(decimal.NewFromFloat(1.5))

	for _, a := range ctx.aggregates {
		if a.Expenses.GreaterThan(threshold) {
			ratio, _ := a.Expenses.Div(mean).Float64()
			add(out, entity.SeverityWarning, "Spending in %s %d was %.1fx your monthly average. Worth a closer look.", a.Month, a.Year, ratio)
		}
	}
}

// needsRatioRules applies the 50/30/20 needs check: essentials should
// stay under half of income.
func needsRatioRules(ctx *insightContext, out *[]entity.Insight) {
	if !ctx.yearly.TotalIncome.IsPositive() {
		return
	}
	var needs decimal.Decimal
	for _, c := range ctx.categories {
		switch c.Category {
		case entity.CategoryFood, entity.CategoryBills, entity.CategoryTransport:
			needs = needs.Add(c.Total)
		}
	}
	share, _ := needs.Div(ctx.yearly.TotalIncome).Mul(decimal.NewFromInt(100)).Float64()
	if share > 50 {
		add(out, entity.SeverityWarning, "Essentials (food, bills, transport) take %.1f%% of your income, above the 50%% guideline of the 50/30/20 rule.", share)
	}
}

// categoryGrowthRules summarizes sharp category movements between the
// current and previous month.
func categoryGrowthRules(ctx *insightContext, out *[]entity.Insight) {
	for _, c := range ctx.categories {
		switch {
		case c.Growth > 100:
			add(out, entity.SeverityDanger, "%s spending more than doubled this month (up %.0f%%).", c.Category, c.Growth)
		case c.Growth > 50:
			add(out, entity.SeverityWarning, "%s spending grew %.0f%% over last month.", c.Category, c.Growth)
		case c.Growth < -30:
			add(out, entity.SeveritySuccess, "%s spending fell %.0f%% compared to last month.", c.Category, -c.Growth)
		}
	}
}

// generalTipRules appends the fixed set of evergreen tips.
func generalTipRules(_ *insightContext, out *[]entity.Insight) {
	add(out, entity.SeverityInfo, "Review your subscriptions every few months; forgotten ones quietly add up.")
	add(out, entity.SeverityInfo, "Automating a transfer to savings on payday makes your savings rate effortless.")
	add(out, entity.SeverityInfo, "Tracking every expense, however small, is the single best habit for staying on budget.")
}
