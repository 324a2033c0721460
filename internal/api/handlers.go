package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vikunalabs/camt-reporter/internal/delivery"
	"github.com/vikunalabs/camt-reporter/internal/metrics"
	"github.com/vikunalabs/camt-reporter/internal/orchestrator"
)

// Handlers groups all HTTP handler methods and their dependencies.
type Handlers struct {
	orch     *orchestrator.Orchestrator
	archive  *delivery.Archive
	counters *metrics.Counters
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[api] encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

// --- GenerateReport ---

// GenerateReport accepts one input envelope and runs it through the pipeline.
// The HTTP status reflects the classified outcome, not transport semantics:
// the message was consumed either way.
func (h *Handlers) GenerateReport(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	outcome := h.orch.HandleMessage(payload)

	status := http.StatusOK
	if outcome == orchestrator.OutcomeFailed {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, map[string]string{"outcome": string(outcome)})
}

// --- ListReports ---

func (h *Handlers) ListReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	reports, err := h.archive.ListReports(q.Get("report_type"), parseIntDefault(q.Get("limit"), 50))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
}

// --- GetReportDocument ---

func (h *Handlers) GetReportDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := h.archive.GetDocument(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "report not found: "+id)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		log.Printf("[api] write document: %v", err)
	}
}

// --- GetOutcomeSummary ---

func (h *Handlers) GetOutcomeSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.archive.GetOutcomeSummary()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// --- GetMetrics ---

func (h *Handlers) GetMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"received": h.counters.Snapshot()})
}
