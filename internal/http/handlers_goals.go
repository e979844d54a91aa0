package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rupeerise/internal/core"
	"rupeerise/internal/log"
	"rupeerise/internal/store"
)

type goalJSON struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Icon          string    `json:"icon,omitempty"`
	TargetAmount  moneyJSON `json:"target_amount"`
	CurrentAmount moneyJSON `json:"current_amount"`
	Completed     bool      `json:"completed"`
	CompletedAt   string    `json:"completed_at,omitempty"`
}

type createGoalRequest struct {
	Title  string `json:"title"`
	Icon   string `json:"icon"`
	Target string `json:"target"` // rupees, decimal string
}

type depositRequest struct {
	Amount string `json:"amount"` // rupees, decimal string
}

func toGoalJSON(g core.SavingsGoal) goalJSON {
	out := goalJSON{
		ID:            g.ID,
		Title:         g.Title,
		Icon:          g.Icon,
		TargetAmount:  toMoneyJSON(g.TargetAmount),
		CurrentAmount: toMoneyJSON(g.CurrentAmount),
		Completed:     g.Completed(),
	}
	if g.Completed() {
		out.CompletedAt = g.CompletedAt.Format("2006-01-02")
	}
	return out
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.store.ListGoals(r.Context())
	if err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "list goals", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to list goals")
		return
	}

	out := make([]goalJSON, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalJSON(g))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	paise, err := core.ParseDecimalToPaise(req.Target)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid target amount")
		return
	}

	goal := core.SavingsGoal{
		Title:        req.Title,
		Icon:         req.Icon,
		TargetAmount: core.Money{Paise: paise},
	}

	created, err := s.goals.CreateGoal(r.Context(), goal)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, toGoalJSON(created))
}

func (s *Server) handleGoalDeposit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	paise, err := core.ParseDecimalToPaise(req.Amount)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid deposit amount")
		return
	}

	updated, err := s.goals.Deposit(r.Context(), id, core.Money{Paise: paise}, s.now())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(w, r, http.StatusNotFound, "goal not found")
		case errors.Is(err, core.ErrGoalCompleted):
			respondError(w, r, http.StatusConflict, "goal already completed")
		case errors.Is(err, core.ErrInvalidAmount):
			respondError(w, r, http.StatusBadRequest, "invalid deposit amount")
		default:
			log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "goal deposit",
				log.FieldGoalID, id, log.FieldError, err)
			respondError(w, r, http.StatusInternalServerError, "failed to record deposit")
		}
		return
	}

	respondJSON(w, http.StatusOK, toGoalJSON(updated))
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.goals.DeleteGoal(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "goal not found")
			return
		}
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "delete goal",
			log.FieldGoalID, id, log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to delete goal")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
