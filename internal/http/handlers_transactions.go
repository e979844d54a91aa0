package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"rupeerise/internal/core"
	"rupeerise/internal/log"
	"rupeerise/internal/store"
)

type transactionJSON struct {
	ID          string    `json:"id"`
	Amount      moneyJSON `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	UPIHandle   string    `json:"upi_handle,omitempty"`
	Type        string    `json:"type"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type createTransactionRequest struct {
	Amount      string `json:"amount"` // rupees, decimal string
	Category    string `json:"category"`
	Description string `json:"description"`
	UPIHandle   string `json:"upi_handle"`
	Type        string `json:"type"`
	Date        string `json:"date"` // 2006-01-02, defaults to today
}

func toTransactionJSON(tx core.Transaction) transactionJSON {
	return transactionJSON{
		ID:          tx.ID,
		Amount:      toMoneyJSON(tx.Amount),
		Category:    tx.Category,
		Description: tx.Description,
		UPIHandle:   tx.UPIHandle,
		Type:        string(tx.Type),
		Date:        tx.Date.Format("2006-01-02"),
		CreatedAt:   tx.CreatedAt,
	}
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.store.ListTransactions(r.Context())
	if err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "list transactions", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	out := make([]transactionJSON, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionJSON(tx))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	paise, err := core.ParseDecimalToPaise(req.Amount)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid amount")
		return
	}

	date := s.now()
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
	}

	tx := core.Transaction{
		Amount:      core.Money{Paise: paise},
		Category:    req.Category,
		Description: req.Description,
		UPIHandle:   req.UPIHandle,
		Type:        core.TransactionType(req.Type),
		Date:        date,
	}

	created, err := s.ledger.CreateTransaction(r.Context(), tx)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	s.invalidateSnapshots()
	respondJSON(w, http.StatusCreated, toTransactionJSON(created))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.ledger.DeleteTransaction(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "transaction not found")
			return
		}
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "delete transaction",
			log.FieldTransactionID, id, log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to delete transaction")
		return
	}

	s.invalidateSnapshots()
	respondJSON(w, http.StatusNoContent, nil)
}
