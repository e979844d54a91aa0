package http

import (
	"net/http"

	"rupeerise/internal/analytics"
	"rupeerise/internal/core"
	"rupeerise/internal/log"
)

type monthlyBucketJSON struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Spending moneyJSON `json:"spending"`
	Income   moneyJSON `json:"income"`
}

type insightJSON struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

type badgeJSON struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

type streaksJSON struct {
	CurrentStreak int         `json:"current_streak"`
	LongestStreak int         `json:"longest_streak"`
	XP            int         `json:"xp"`
	Level         int         `json:"level"`
	LevelProgress int         `json:"level_progress"`
	Badges        []badgeJSON `json:"badges"`
}

type heatmapDayJSON struct {
	Day   int       `json:"day"`
	Spent moneyJSON `json:"spent"`
	Band  string    `json:"band"`
	Blank bool      `json:"blank"`
}

type heatmapJSON struct {
	Year           int              `json:"year"`
	Month          int              `json:"month"`
	MonthLabel     string           `json:"month_label"`
	Days           []heatmapDayJSON `json:"days"`
	OverBudgetDays int              `json:"over_budget_days"`
	ZeroSpendDays  int              `json:"zero_spend_days"`
	PeakDaySpend   moneyJSON        `json:"peak_day_spend"`
}

type analyticsResponse struct {
	Window    []monthlyBucketJSON `json:"window"`
	MoMChange float64             `json:"mom_change_pct"`
	Insights  []insightJSON       `json:"insights"`
	Streaks   streaksJSON         `json:"streaks"`
	Heatmap   heatmapJSON         `json:"heatmap"`
}

// dailyBudgetFor spreads the total monthly budget over a 30-day month.
// Streak and heatmap classification both use this figure.
func dailyBudgetFor(sum core.BudgetSummary) core.Money {
	return core.Money{Paise: sum.TotalBudget.Paise / 30}
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "analytics"
	if cached, ok := s.analyticsCache.Get(cacheKey); ok {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	snap, err := s.loadSnapshot(r.Context())
	if err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "load analytics snapshot", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to load analytics")
		return
	}

	now := s.now()
	window := analytics.BuildMonthlyWindow(snap.txs, now, analytics.DefaultWindowSize)
	dailyBudget := dailyBudgetFor(snap.summary)

	resp := analyticsResponse{
		Window:    toWindowJSON(window),
		MoMChange: analytics.MonthOverMonthChange(window),
		Insights:  toInsightsJSON(analytics.GenerateInsights(window, snap.cats, snap.summary)),
		Streaks:   toStreaksJSON(analytics.ComputeStreaks(snap.txs, dailyBudget, now)),
		Heatmap:   toHeatmapJSON(analytics.BuildHeatmap(snap.txs, dailyBudget, now)),
	}

	s.analyticsCache.Set(cacheKey, resp)
	respondJSON(w, http.StatusOK, resp)
}

func toWindowJSON(window []analytics.MonthlyBucket) []monthlyBucketJSON {
	out := make([]monthlyBucketJSON, 0, len(window))
	for _, b := range window {
		out = append(out, monthlyBucketJSON{
			Key:      b.Key,
			Label:    b.Label,
			Spending: toMoneyJSON(b.Spending),
			Income:   toMoneyJSON(b.Income),
		})
	}
	return out
}

func toInsightsJSON(insights []analytics.Insight) []insightJSON {
	out := make([]insightJSON, 0, len(insights))
	for _, in := range insights {
		out = append(out, insightJSON{
			Kind:     string(in.Kind),
			Severity: string(in.Severity),
			Title:    in.Title,
			Message:  in.Message,
		})
	}
	return out
}

func toStreaksJSON(st analytics.StreakState) streaksJSON {
	badges := make([]badgeJSON, 0, len(st.Badges))
	for _, b := range st.Badges {
		badges = append(badges, badgeJSON{
			Kind:        string(b.Kind),
			Name:        b.Name,
			Description: b.Description,
			Earned:      b.Earned,
		})
	}
	return streaksJSON{
		CurrentStreak: st.CurrentStreak,
		LongestStreak: st.LongestStreak,
		XP:            st.XP,
		Level:         st.Level,
		LevelProgress: st.LevelProgress,
		Badges:        badges,
	}
}

func toHeatmapJSON(hm analytics.Heatmap) heatmapJSON {
	days := make([]heatmapDayJSON, 0, len(hm.Days))
	for _, d := range hm.Days {
		days = append(days, heatmapDayJSON{
			Day:   d.Day,
			Spent: toMoneyJSON(d.Spent),
			Band:  string(d.Band),
			Blank: d.Blank,
		})
	}
	return heatmapJSON{
		Year:           hm.Year,
		Month:          int(hm.Month),
		MonthLabel:     hm.MonthLabel,
		Days:           days,
		OverBudgetDays: hm.Stats.OverBudgetDays,
		ZeroSpendDays:  hm.Stats.ZeroSpendDays,
		PeakDaySpend:   toMoneyJSON(hm.Stats.PeakDaySpend),
	}
}
