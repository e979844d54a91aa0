package http

import (
	"net/http"
	"sync"

	"rupeerise/internal/analytics"
	"rupeerise/internal/log"
)

// alertDisplayDelayMs staggers toast rendering on the client so a burst
// of alerts does not land at once.
const alertDisplayDelayMs = 1500

type alertJSON struct {
	Kind    string `json:"kind"`
	Level   string `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type alertsResponse struct {
	Alerts         []alertJSON `json:"alerts"`
	DisplayDelayMs int         `json:"display_delay_ms"`
}

// alertLatch remembers which alerts each client has already been shown
// so polling does not repeat them. In-memory only; a restart re-arms
// every alert.
type alertLatch struct {
	mu   sync.Mutex
	seen map[string]map[string]bool // client key -> alert key
}

func newAlertLatch() *alertLatch {
	return &alertLatch{seen: make(map[string]map[string]bool)}
}

// firstDelivery marks the alert delivered to the client and reports
// whether this was the first time.
func (l *alertLatch) firstDelivery(client, alertKey string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	delivered, ok := l.seen[client]
	if !ok {
		delivered = make(map[string]bool)
		l.seen[client] = delivered
	}
	if delivered[alertKey] {
		return false
	}
	delivered[alertKey] = true
	return true
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	snap, err := s.loadSnapshot(r.Context())
	if err != nil {
		log.WithComponent(log.ComponentHTTP).ErrorContext(r.Context(), "load alerts snapshot", log.FieldError, err)
		respondError(w, r, http.StatusInternalServerError, "failed to evaluate alerts")
		return
	}

	client := clientIP(r)
	events := analytics.EvaluateAlerts(snap.cats, snap.summary)

	alerts := make([]alertJSON, 0, len(events))
	for _, ev := range events {
		// Latch on kind plus title so two categories tripping the
		// same rule each get delivered once.
		if !s.alertLatch.firstDelivery(client, ev.Kind+"|"+ev.Title) {
			continue
		}
		alerts = append(alerts, alertJSON{
			Kind:    ev.Kind,
			Level:   string(ev.Level),
			Title:   ev.Title,
			Message: ev.Message,
		})
	}

	respondJSON(w, http.StatusOK, alertsResponse{
		Alerts:         alerts,
		DisplayDelayMs: alertDisplayDelayMs,
	})
}
