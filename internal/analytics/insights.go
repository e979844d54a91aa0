package analytics

import (
	"fmt"
	"math"
	"strings"

	"rupeerise/internal/core"
)

type InsightKind string

const (
	InsightBudgetExceeded  InsightKind = "budget_exceeded"
	InsightApproachingLimit InsightKind = "approaching_limit"
	InsightSpendingUp      InsightKind = "spending_up"
	InsightSpendingDown    InsightKind = "spending_down"
	InsightDailyBurn       InsightKind = "daily_burn"
	InsightTopCategory     InsightKind = "top_category"
)

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCaution  Severity = "caution"
	SeverityPositive Severity = "positive"
	SeverityInfo     Severity = "info"
)

// Insight is a tagged record; the presentation layer maps Kind to an
// icon and renderer.
type Insight struct {
	Kind     InsightKind
	Severity Severity
	Title    string
	Message  string
}

// GenerateInsights runs the ordered rule list against the current
// snapshot. Rules are independent: each firing rule appends one record
// and none suppresses another.
func GenerateInsights(window []MonthlyBucket, cats []core.BudgetCategory, sum core.BudgetSummary) []Insight {
	var insights []Insight

	var exceeded, approaching []string
	for _, c := range cats {
		switch ratio := c.SpendRatio(); {
		case ratio >= 1.0:
			exceeded = append(exceeded, c.Name)
		case ratio >= 0.8:
			approaching = append(approaching, c.Name)
		}
	}

	if len(exceeded) > 0 {
		insights = append(insights, Insight{
			Kind:     InsightBudgetExceeded,
			Severity: SeverityWarning,
			Title:    "Budget Exceeded",
			Message: fmt.Sprintf("%d %s exceeded the limit: %s",
				len(exceeded), pluralize(len(exceeded), "category has", "categories have"),
				strings.Join(exceeded, ", ")),
		})
	}

	if len(approaching) > 0 {
		insights = append(insights, Insight{
			Kind:     InsightApproachingLimit,
			Severity: SeverityCaution,
			Title:    "Approaching Limit",
			Message: fmt.Sprintf("%d %s above 80%%: %s",
				len(approaching), pluralize(len(approaching), "category is", "categories are"),
				strings.Join(approaching, ", ")),
		})
	}

	change := MonthOverMonthChange(window)
	if change > 20 {
		insights = append(insights, Insight{
			Kind:     InsightSpendingUp,
			Severity: SeverityWarning,
			Title:    "Spending Increased",
			Message: fmt.Sprintf("Your spending this month is %d%% higher than last month. Consider reviewing your expenses.",
				int(math.Round(change))),
		})
	} else if change < -10 {
		insights = append(insights, Insight{
			Kind:     InsightSpendingDown,
			Severity: SeverityPositive,
			Title:    "Great Savings!",
			Message: fmt.Sprintf("You've reduced spending by %d%% compared to last month. Keep it up!",
				int(math.Abs(math.Round(change)))),
		})
	}

	if sum.DailyBurnRate.Paise > 0 {
		days := sum.DaysUntilAllowance
		if days < 1 {
			days = 1
		}
		safe := core.Money{Paise: sum.Remaining.Paise / int64(days)}
		insights = append(insights, Insight{
			Kind:     InsightDailyBurn,
			Severity: SeverityInfo,
			Title:    "Daily Burn Rate",
			Message: fmt.Sprintf("You can safely spend %s per day until your next allowance. %d days remaining.",
				core.FormatRupee(safe), sum.DaysUntilAllowance),
		})
	}

	if top, ok := topCategory(cats); ok && top.Spent.Paise > 0 {
		insights = append(insights, Insight{
			Kind:     InsightTopCategory,
			Severity: SeverityInfo,
			Title:    "Top Spending",
			Message: fmt.Sprintf("%s is your biggest expense at %s (%d%% of limit).",
				top.Name, core.FormatRupee(top.Spent), int(math.Round(top.SpendRatio()*100))),
		})
	}

	return insights
}

func topCategory(cats []core.BudgetCategory) (core.BudgetCategory, bool) {
	if len(cats) == 0 {
		return core.BudgetCategory{}, false
	}
	top := cats[0]
	for _, c := range cats[1:] {
		if c.Spent.Paise > top.Spent.Paise {
			top = c
		}
	}
	return top, true
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
