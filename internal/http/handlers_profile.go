package http

import (
	"encoding/json"
	"net/http"
	"time"

	"rupeerise/internal/core"
	"rupeerise/internal/log"
)

type updateProfileRequest struct {
	DisplayName       string `json:"display_name"`
	City              string `json:"city"`
	MonthlyAllowance  string `json:"monthly_allowance"` // rupees, decimal string
	NextAllowanceDate string `json:"next_allowance_date"`
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.GetProfile(r.Context())
	if err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "get profile", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to load profile")
		return
	}
	respondJSON(w, http.StatusOK, toProfileJSON(profile))
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DisplayName == "" {
		respondError(w, r, http.StatusBadRequest, "display name is required")
		return
	}

	paise, err := core.ParseDecimalToPaise(req.MonthlyAllowance)
	if err != nil || paise <= 0 {
		respondError(w, r, http.StatusBadRequest, "invalid monthly allowance")
		return
	}

	profile := core.UserProfile{
		DisplayName:      req.DisplayName,
		City:             req.City,
		MonthlyAllowance: core.Money{Paise: paise},
	}
	if profile.City == "" {
		profile.City = s.defaultCity
	}
	if req.NextAllowanceDate != "" {
		next, err := time.Parse("2006-01-02", req.NextAllowanceDate)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "invalid next allowance date, expected YYYY-MM-DD")
			return
		}
		profile.NextAllowanceDate = next
	}

	if err := s.store.UpdateProfile(r.Context(), profile); err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "update profile", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to update profile")
		return
	}

	s.invalidateSnapshots()
	respondJSON(w, http.StatusOK, toProfileJSON(profile))
}
