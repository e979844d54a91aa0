package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"rupeerise/internal/core"
	"rupeerise/internal/log"
)

type billShareJSON struct {
	Name    string    `json:"name"`
	Share   moneyJSON `json:"share"`
	Paid    bool      `json:"paid"`
	UPILink string    `json:"upi_link"`
}

type billSplitJSON struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	TotalAmount moneyJSON       `json:"total_amount"`
	People      int             `json:"people"`
	PerPerson   moneyJSON       `json:"per_person"`
	Shares      []billShareJSON `json:"shares"`
	CreatedAt   string          `json:"created_at"`
}

type createBillSplitRequest struct {
	Title   string   `json:"title"`
	Total   string   `json:"total"` // rupees, decimal string
	Friends []string `json:"friends"`
}

func toBillSplitJSON(b core.BillSplit) billSplitJSON {
	perPerson := core.SplitEvenly(b.TotalAmount, b.PeopleCount())
	shares := make([]billShareJSON, 0, len(b.Shares))
	for _, s := range b.Shares {
		shares = append(shares, billShareJSON{
			Name:    s.Name,
			Share:   toMoneyJSON(s.Share),
			Paid:    s.Paid,
			UPILink: core.UPIPayLink(s.Name, s.Share, b.Title),
		})
	}
	return billSplitJSON{
		ID:          b.ID,
		Title:       b.Title,
		TotalAmount: toMoneyJSON(b.TotalAmount),
		People:      b.PeopleCount(),
		PerPerson:   toMoneyJSON(perPerson),
		Shares:      shares,
		CreatedAt:   b.CreatedAt.Format("2006-01-02"),
	}
}

func (s *Server) handleListBillSplits(w http.ResponseWriter, r *http.Request) {
	splits, err := s.store.ListBillSplits(r.Context())
	if err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "list bill splits", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to list bill splits")
		return
	}

	out := make([]billSplitJSON, 0, len(splits))
	for _, b := range splits {
		out = append(out, toBillSplitJSON(b))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateBillSplit(w http.ResponseWriter, r *http.Request) {
	var req createBillSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	paise, err := core.ParseDecimalToPaise(req.Total)
	if err != nil || paise <= 0 {
		respondError(w, r, http.StatusBadRequest, "invalid total amount")
		return
	}
	total := core.Money{Paise: paise}

	// Blank rows from the form are dropped, same as unnamed friends.
	friends := make([]string, 0, len(req.Friends))
	for _, name := range req.Friends {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			friends = append(friends, trimmed)
		}
	}
	if len(friends) == 0 {
		respondError(w, r, http.StatusBadRequest, "at least one friend is required")
		return
	}

	// The owner counts as a head too, and pays the same share.
	perPerson := core.SplitEvenly(total, len(friends)+1)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Untitled Split"
	}

	split := core.BillSplit{
		ID:          uuid.NewString(),
		Title:       title,
		TotalAmount: total,
		CreatedAt:   s.now(),
	}
	for _, name := range friends {
		split.Shares = append(split.Shares, core.BillShare{Name: name, Share: perPerson})
	}

	if err := s.store.CreateBillSplit(r.Context(), split); err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "create bill split", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to save bill split")
		return
	}

	respondJSON(w, http.StatusCreated, toBillSplitJSON(split))
}
