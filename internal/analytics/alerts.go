package analytics

import (
	"fmt"
	"math"

	"rupeerise/internal/core"
)

type AlertLevel string

const (
	AlertError   AlertLevel = "error"
	AlertWarning AlertLevel = "warning"
	AlertSuccess AlertLevel = "success"
)

type AlertEvent struct {
	Kind    string
	Level   AlertLevel
	Title   string
	Message string
}

// lowBurnThreshold is the daily burn rate below which the remaining
// allowance is considered critically tight.
var lowBurnThreshold = core.Money{Paise: 10000}

// EvaluateAlerts derives the active alert set from the current
// snapshot. It holds no state; suppressing repeats is the caller's
// concern.
func EvaluateAlerts(cats []core.BudgetCategory, sum core.BudgetSummary) []AlertEvent {
	var events []AlertEvent

	for _, c := range cats {
		ratio := c.SpendRatio()
		pct := int(math.Round(ratio * 100))
		switch {
		case ratio >= 1.0:
			events = append(events, AlertEvent{
				Kind:    "category_exceeded",
				Level:   AlertError,
				Title:   fmt.Sprintf("%s Budget Exceeded!", c.Name),
				Message: fmt.Sprintf("You've spent %s of your %s limit (%d%%).", core.FormatRupee(c.Spent), core.FormatRupee(c.LimitAmount), pct),
			})
		case ratio >= 0.9:
			events = append(events, AlertEvent{
				Kind:    "category_near_limit",
				Level:   AlertWarning,
				Title:   fmt.Sprintf("%s Almost at Limit", c.Name),
				Message: fmt.Sprintf("You've used %d%% of your %s budget.", pct, c.Name),
			})
		}
	}

	if sum.TotalBudget.Paise > 0 {
		overall := float64(sum.TotalSpent.Paise) / float64(sum.TotalBudget.Paise)
		if overall >= 0.95 {
			events = append(events, AlertEvent{
				Kind:    "overall_critical",
				Level:   AlertError,
				Title:   "Overall Budget Critical",
				Message: fmt.Sprintf("You've used %d%% of your total monthly budget.", int(math.Round(overall*100))),
			})
		}
		if overall < 0.5 && sum.DaysUntilAllowance < 15 && sum.TotalSpent.Paise > 0 {
			events = append(events, AlertEvent{
				Kind:    "on_track",
				Level:   AlertSuccess,
				Title:   "You're Doing Great!",
				Message: fmt.Sprintf("Less than half your budget used with %d days to go.", sum.DaysUntilAllowance),
			})
		}
	}

	if sum.DailyBurnRate.Paise > 0 && sum.DailyBurnRate.Paise < lowBurnThreshold.Paise && sum.DaysUntilAllowance > 3 {
		events = append(events, AlertEvent{
			Kind:    "low_burn_rate",
			Level:   AlertWarning,
			Title:   "Tight Budget Ahead",
			Message: fmt.Sprintf("Only %s per day available for the next %d days.", core.FormatRupee(sum.DailyBurnRate), sum.DaysUntilAllowance),
		})
	}

	return events
}
