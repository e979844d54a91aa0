package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"rupeerise/internal/core"
	"rupeerise/internal/log"
	"rupeerise/internal/store"
)

type recurringJSON struct {
	ID          string    `json:"id"`
	Amount      moneyJSON `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	DayOfMonth  int       `json:"day_of_month"`
	IsActive    bool      `json:"is_active"`
	NextRun     string    `json:"next_run"`
	LastRun     string    `json:"last_run,omitempty"`
}

type createRecurringRequest struct {
	Amount      string `json:"amount"` // rupees, decimal string
	Category    string `json:"category"`
	Description string `json:"description"`
	Type        string `json:"type"`
	DayOfMonth  int    `json:"day_of_month"`
}

func toRecurringJSON(rt core.RecurringTemplate) recurringJSON {
	out := recurringJSON{
		ID:          rt.ID,
		Amount:      toMoneyJSON(rt.Amount),
		Category:    rt.Category,
		Description: rt.Description,
		Type:        string(rt.Type),
		DayOfMonth:  rt.DayOfMonth,
		IsActive:    rt.IsActive,
		NextRun:     rt.NextRun.Format("2006-01-02"),
	}
	if !rt.LastRun.IsZero() {
		out.LastRun = rt.LastRun.Format("2006-01-02")
	}
	return out
}

// nextRunFor picks the first occurrence of dayOfMonth on or after today.
func nextRunFor(dayOfMonth int, now time.Time) time.Time {
	year, month, day := now.Date()
	next := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, now.Location())
	if dayOfMonth < day {
		next = next.AddDate(0, 1, 0)
	}
	return next
}

func (s *Server) handleListRecurring(w http.ResponseWriter, r *http.Request) {
	templates, err := s.store.ListTemplates(r.Context())
	if err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "list recurring templates", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to list recurring transactions")
		return
	}

	out := make([]recurringJSON, 0, len(templates))
	for _, rt := range templates {
		out = append(out, toRecurringJSON(rt))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateRecurring(w http.ResponseWriter, r *http.Request) {
	var req createRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	paise, err := core.ParseDecimalToPaise(req.Amount)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid amount")
		return
	}

	rt := core.RecurringTemplate{
		ID:          uuid.NewString(),
		Amount:      core.Money{Paise: paise},
		Category:    req.Category,
		Description: req.Description,
		Type:        core.TransactionType(req.Type),
		DayOfMonth:  req.DayOfMonth,
		IsActive:    true,
		NextRun:     nextRunFor(req.DayOfMonth, s.now()),
	}
	if err := rt.Validate(); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.CreateTemplate(r.Context(), rt); err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "create recurring template", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to create recurring transaction")
		return
	}

	respondJSON(w, http.StatusCreated, toRecurringJSON(rt))
}

func (s *Server) handleDeleteRecurring(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteTemplate(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "recurring transaction not found")
			return
		}
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "delete recurring template",
			log.FieldTemplateID, id, log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to delete recurring transaction")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleRunRecurring(w http.ResponseWriter, r *http.Request) {
	processed, err := s.recurring.ProcessDue(r.Context(), s.now())
	if err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "process recurring templates", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to process recurring transactions")
		return
	}

	if processed > 0 {
		s.invalidateSnapshots()
	}
	respondJSON(w, http.StatusOK, map[string]int{"processed": processed})
}
