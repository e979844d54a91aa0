package http

import (
	"encoding/json"
	"net/http"

	"rupeerise/internal/core"
	"rupeerise/internal/log"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithComponent(log.ComponentHTTP).Error("encode response", log.FieldError, err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, status, errorResponse{
		Error:     message,
		RequestID: requestID(r.Context()),
	})
}

// moneyJSON carries an amount both as exact paise and as a formatted
// display string so clients never re-implement Indian grouping.
type moneyJSON struct {
	Paise   int64  `json:"paise"`
	Display string `json:"display"`
}

func toMoneyJSON(m core.Money) moneyJSON {
	return moneyJSON{Paise: m.Paise, Display: core.FormatRupee(m)}
}
