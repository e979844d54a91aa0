package http

import (
	"context"
	"net/http"

	"rupeerise/internal/analytics"
	"rupeerise/internal/core"
	"rupeerise/internal/log"
)

type summaryJSON struct {
	TotalBudget        moneyJSON `json:"total_budget"`
	TotalSpent         moneyJSON `json:"total_spent"`
	TotalIncome        moneyJSON `json:"total_income"`
	Remaining          moneyJSON `json:"remaining"`
	DailyBurnRate      moneyJSON `json:"daily_burn_rate"`
	DaysUntilAllowance int       `json:"days_until_allowance"`
}

type categoryJSON struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Icon  string    `json:"icon"`
	Color string    `json:"color"`
	Limit moneyJSON `json:"limit"`
	Spent moneyJSON `json:"spent"`
	Ratio float64   `json:"ratio"`
}

type chaiSamosaEntryJSON struct {
	Category string    `json:"category"`
	Icon     string    `json:"icon"`
	Amount   moneyJSON `json:"amount"`
	Meals    int       `json:"meals_equivalent"`
}

type chaiSamosaJSON struct {
	Entries    []chaiSamosaEntryJSON `json:"entries"`
	TotalSpend moneyJSON             `json:"total_spend"`
	TotalMeals int                   `json:"total_meals"`
}

type festiveJSON struct {
	IsFestive     bool   `json:"is_festive"`
	Festival      string `json:"festival,omitempty"`
	BufferPercent int    `json:"buffer_percent,omitempty"`
}

type profileJSON struct {
	DisplayName       string    `json:"display_name"`
	City              string    `json:"city"`
	MonthlyAllowance  moneyJSON `json:"monthly_allowance"`
	NextAllowanceDate string    `json:"next_allowance_date,omitempty"`
}

type dashboardResponse struct {
	Summary    summaryJSON    `json:"summary"`
	Categories []categoryJSON `json:"categories"`
	ChaiSamosa chaiSamosaJSON `json:"chai_samosa"`
	Festive    festiveJSON    `json:"festive"`
	Profile    profileJSON    `json:"profile"`
}

// snapshot bundles the reads every derived view starts from.
type snapshot struct {
	txs     []core.Transaction
	cats    []core.BudgetCategory
	profile core.UserProfile
	summary core.BudgetSummary
}

func (s *Server) loadSnapshot(ctx context.Context) (snapshot, error) {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return snapshot{}, err
	}
	budgets, err := s.store.ListBudgets(ctx)
	if err != nil {
		return snapshot{}, err
	}
	profile, err := s.store.GetProfile(ctx)
	if err != nil {
		return snapshot{}, err
	}

	now := s.now()
	cats := analytics.DeriveCategorySpend(txs, budgets, now)
	return snapshot{
		txs:     txs,
		cats:    cats,
		profile: profile,
		summary: analytics.ComputeSummary(cats, txs, profile, now),
	}, nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "dashboard"
	if cached, ok := s.dashboardCache.Get(cacheKey); ok {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	snap, err := s.loadSnapshot(r.Context())
	if err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "load dashboard snapshot", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	resp := dashboardResponse{
		Summary:    toSummaryJSON(snap.summary),
		Categories: toCategoriesJSON(snap.cats),
		ChaiSamosa: toChaiSamosaJSON(analytics.ComputeChaiSamosa(snap.cats, snap.profile.City)),
		Festive:    toFestiveJSON(core.FestiveSeason(s.now())),
		Profile:    toProfileJSON(snap.profile),
	}

	s.dashboardCache.Set(cacheKey, resp)
	respondJSON(w, http.StatusOK, resp)
}

func toSummaryJSON(sum core.BudgetSummary) summaryJSON {
	return summaryJSON{
		TotalBudget:        toMoneyJSON(sum.TotalBudget),
		TotalSpent:         toMoneyJSON(sum.TotalSpent),
		TotalIncome:        toMoneyJSON(sum.TotalIncome),
		Remaining:          toMoneyJSON(sum.Remaining),
		DailyBurnRate:      toMoneyJSON(sum.DailyBurnRate),
		DaysUntilAllowance: sum.DaysUntilAllowance,
	}
}

func toCategoriesJSON(cats []core.BudgetCategory) []categoryJSON {
	out := make([]categoryJSON, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryJSON{
			ID:    c.ID,
			Name:  c.Name,
			Icon:  c.Icon,
			Color: c.Color,
			Limit: toMoneyJSON(c.LimitAmount),
			Spent: toMoneyJSON(c.Spent),
			Ratio: c.SpendRatio(),
		})
	}
	return out
}

func toChaiSamosaJSON(idx analytics.ChaiSamosaIndex) chaiSamosaJSON {
	entries := make([]chaiSamosaEntryJSON, 0, len(idx.Entries))
	for _, e := range idx.Entries {
		entries = append(entries, chaiSamosaEntryJSON{
			Category: e.Category,
			Icon:     e.Icon,
			Amount:   toMoneyJSON(e.Amount),
			Meals:    e.MealsEquivalent,
		})
	}
	return chaiSamosaJSON{
		Entries:    entries,
		TotalSpend: toMoneyJSON(idx.TotalSpend),
		TotalMeals: idx.TotalMeals,
	}
}

func toFestiveJSON(fi core.FestiveInfo) festiveJSON {
	return festiveJSON{
		IsFestive:     fi.IsFestive,
		Festival:      fi.Festival,
		BufferPercent: fi.BufferPercent,
	}
}

func toProfileJSON(p core.UserProfile) profileJSON {
	out := profileJSON{
		DisplayName:      p.DisplayName,
		City:             p.City,
		MonthlyAllowance: toMoneyJSON(p.MonthlyAllowance),
	}
	if !p.NextAllowanceDate.IsZero() {
		out.NextAllowanceDate = p.NextAllowanceDate.Format("2006-01-02")
	}
	return out
}
