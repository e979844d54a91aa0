package http

import (
	"encoding/json"
	"net/http"

	"rupeerise/internal/analytics"
	"rupeerise/internal/core"
	"rupeerise/internal/log"
)

type whatIfItemJSON struct {
	Name     string `json:"name"`
	Cost     string `json:"cost"` // rupees, decimal string
	Quantity int    `json:"quantity"`
}

type whatIfRequest struct {
	Items []whatIfItemJSON `json:"items"`
}

type whatIfResponse struct {
	TotalSavings  moneyJSON `json:"total_savings"`
	ExtraDays     int       `json:"extra_days"`
	ExtraRentDays int       `json:"extra_rent_days"`
	ExtraMeals    int       `json:"extra_meals"`
}

func (s *Server) handleWhatIf(w http.ResponseWriter, r *http.Request) {
	var req whatIfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		respondError(w, r, http.StatusBadRequest, "at least one item is required")
		return
	}

	items := make([]analytics.SkippedItem, 0, len(req.Items))
	for _, it := range req.Items {
		paise, err := core.ParseDecimalToPaise(it.Cost)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "invalid cost for item "+it.Name)
			return
		}
		items = append(items, analytics.SkippedItem{
			Name:     it.Name,
			Cost:     core.Money{Paise: paise},
			Quantity: it.Quantity,
		})
	}

	snap, err := s.loadSnapshot(r.Context())
	if err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "load what-if snapshot", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to compute projection")
		return
	}

	proj := analytics.Project(items,
		snap.summary.DailyBurnRate,
		monthlyRentFor(snap.cats),
		core.StreetFoodPrice(snap.profile.City),
	)

	respondJSON(w, http.StatusOK, whatIfResponse{
		TotalSavings:  toMoneyJSON(proj.TotalSavings),
		ExtraDays:     proj.ExtraDays,
		ExtraRentDays: proj.ExtraRentDays,
		ExtraMeals:    proj.ExtraMeals,
	})
}

// monthlyRentFor reads the rent budget's limit, falling back to the
// default when no rent category is configured.
func monthlyRentFor(cats []core.BudgetCategory) core.Money {
	for _, c := range cats {
		if c.Name == "PG/Rent" {
			return c.LimitAmount
		}
	}
	return analytics.DefaultMonthlyRent
}
