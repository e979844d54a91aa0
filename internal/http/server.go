// Package http exposes the JSON API: dashboard and analytics reads,
// ledger and configuration writes, and the alert feed.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"rupeerise/internal/cache"
	"rupeerise/internal/core"
	"rupeerise/internal/services"
	"rupeerise/internal/store"
)

type Server struct {
	http.Server
	store     store.Store
	ledger    *services.LedgerService
	goals     *services.GoalService
	recurring *services.RecurringProcessor

	rateLimiter *rateLimiter
	alertLatch  *alertLatch

	// Derived snapshots are cheap but recomputed on every dashboard
	// poll; a short TTL takes the edge off.
	dashboardCache *cache.LRU[dashboardResponse]
	analyticsCache *cache.LRU[analyticsResponse]

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once

	// Fallback city for profile updates that omit one.
	defaultCity string

	// Overridable in tests for deterministic snapshots.
	now func() time.Time
}

func NewServer(addr string, st store.Store, ledger *services.LedgerService, goals *services.GoalService, recurring *services.RecurringProcessor, defaultCity string) *Server {
	if defaultCity == "" {
		defaultCity = core.DefaultCity
	}
	s := &Server{
		Server: http.Server{
			Addr: addr,
		},
		defaultCity: defaultCity,
		store:            st,
		ledger:           ledger,
		goals:            goals,
		recurring:        recurring,
		rateLimiter:      newRateLimiter(),
		alertLatch:       newAlertLatch(),
		dashboardCache:   cache.NewLRU[dashboardResponse](100, 5*time.Minute),
		analyticsCache:   cache.NewLRU[analyticsResponse](100, 5*time.Minute),
		stopCacheCleanup: make(chan struct{}),
		now:              time.Now,
	}

	r := chi.NewRouter()
	r.Use(s.withObservability)

	r.Get("/healthz", handleHealth)
	r.Get("/readyz", handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/analytics", s.handleAnalytics)
		r.Post("/whatif", s.handleWhatIf)
		r.Get("/alerts", s.handleAlerts)

		r.Get("/transactions", s.handleListTransactions)
		r.Post("/transactions", s.handleCreateTransaction)
		r.Delete("/transactions/{id}", s.handleDeleteTransaction)

		r.Get("/budgets", s.handleListBudgets)
		r.Put("/budgets/{id}", s.handleUpdateBudget)

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handleUpdateProfile)

		r.Get("/recurring", s.handleListRecurring)
		r.Post("/recurring", s.handleCreateRecurring)
		r.Delete("/recurring/{id}", s.handleDeleteRecurring)
		r.Post("/recurring/run", s.handleRunRecurring)

		r.Get("/billsplits", s.handleListBillSplits)
		r.Post("/billsplits", s.handleCreateBillSplit)

		r.Get("/goals", s.handleListGoals)
		r.Post("/goals", s.handleCreateGoal)
		r.Post("/goals/{id}/deposit", s.handleGoalDeposit)
		r.Delete("/goals/{id}", s.handleDeleteGoal)
	})

	s.Handler = r

	go s.startCacheCleanup()

	return s
}

func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.dashboardCache.CleanExpired()
			s.analyticsCache.CleanExpired()
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// invalidateSnapshots drops every cached derived view. Called after any
// write that changes what the dashboard or analytics would show.
func (s *Server) invalidateSnapshots() {
	s.dashboardCache.Purge()
	s.analyticsCache.Purge()
}

func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		close(s.stopCacheCleanup)
		s.rateLimiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
