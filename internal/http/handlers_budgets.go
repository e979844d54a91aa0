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

type updateBudgetRequest struct {
	Limit string `json:"limit"` // rupees, decimal string
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	snap, err := s.loadSnapshot(r.Context())
	if err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "list budgets", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to list budgets")
		return
	}
	respondJSON(w, http.StatusOK, toCategoriesJSON(snap.cats))
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	paise, err := core.ParseDecimalToPaise(req.Limit)
	if err != nil || paise <= 0 {
		respondError(w, r, http.StatusBadRequest, "invalid limit")
		return
	}

	if err := s.store.UpdateBudgetLimit(r.Context(), id, core.Money{Paise: paise}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "budget not found")
			return
		}
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "update budget",
			log.FieldCategory, id, log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to update budget")
		return
	}

	s.invalidateSnapshots()
	respondJSON(w, http.StatusNoContent, nil)
}
