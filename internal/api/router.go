package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vikunalabs/camt-reporter/internal/delivery"
	"github.com/vikunalabs/camt-reporter/internal/metrics"
	"github.com/vikunalabs/camt-reporter/internal/orchestrator"
)

// NewRouter creates the Chi router with all API routes mounted.
func NewRouter(
	orch *orchestrator.Orchestrator,
	archive *delivery.Archive,
	counters *metrics.Counters,
) http.Handler {
	h := &Handlers{
		orch:     orch,
		archive:  archive,
		counters: counters,
	}

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// Generation.
		r.Post("/reports/generate", h.GenerateReport)

		// Archive.
		r.Get("/reports", h.ListReports)
		r.Get("/reports/{id}/document", h.GetReportDocument)

		// Outcomes and metrics.
		r.Get("/outcomes/summary", h.GetOutcomeSummary)
		r.Get("/metrics", h.GetMetrics)
	})

	return r
}
