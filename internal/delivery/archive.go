package delivery

import (
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/vikunalabs/camt-reporter/internal/domain"
	"github.com/vikunalabs/camt-reporter/internal/orchestrator"
)

// Archive persists generated reports and journals terminal outcomes. It
// implements orchestrator.Delivery.
type Archive struct {
	db *sql.DB
}

func NewArchive(db *sql.DB) *Archive {
	return &Archive{db: db}
}

// HandleSuccess stores the document and journals the delivery.
func (a *Archive) HandleSuccess(res orchestrator.Result) error {
	_, err := a.db.Exec(
		`INSERT INTO reports
		(id, report_id, report_type, schema_version, document, size_bytes, generated_at)
		VALUES (?,?,?,?,?,?,?)`,
		uuid.NewString(), res.ReportID, string(res.ReportType), string(res.SchemaVersion),
		res.Document, len(res.Document), res.GeneratedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}
	return a.journal(res.ReportID, res.ReportType, string(orchestrator.OutcomeDelivered),
		"archived "+string(res.SchemaVersion)+" document")
}

// HandleCancelled journals a deliberate skip.
func (a *Archive) HandleCancelled(c orchestrator.Cancellation) error {
	log.Printf("[delivery] report %s/%s cancelled: %s", c.ReportType, c.ReportID, c.Reason)
	return a.journal(c.ReportID, c.ReportType, string(orchestrator.OutcomeCancelled), c.Reason)
}

// HandleError journals a failure with best-effort identifiers.
func (a *Archive) HandleError(cause error, reportType domain.ReportType, reportID string) error {
	log.Printf("[delivery] report %s/%s failed: %v", reportType, reportID, cause)
	return a.journal(reportID, reportType, string(orchestrator.OutcomeFailed), cause.Error())
}

func (a *Archive) journal(reportID string, reportType domain.ReportType, outcome, detail string) error {
	_, err := a.db.Exec(
		`INSERT INTO outcomes (id, report_id, report_type, outcome, detail, recorded_at)
		VALUES (?,?,?,?,?,?)`,
		uuid.NewString(), reportID, string(reportType), outcome, detail,
		time.Now().Format(time.RFC3339Nano),
	)
	return err
}

// StoredReport is an archived document row without its payload.
type StoredReport struct {
	ID            string    `json:"id"`
	ReportID      string    `json:"report_id"`
	ReportType    string    `json:"report_type"`
	SchemaVersion string    `json:"schema_version"`
	SizeBytes     int       `json:"size_bytes"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// ListReports returns archived reports, newest first, optionally filtered by
// report type.
func (a *Archive) ListReports(reportType string, limit int) ([]StoredReport, error) {
	if limit <= 0 {
		limit = 50
	}

	q := `SELECT id, report_id, report_type, schema_version, size_bytes, generated_at
		FROM reports`
	var args []any
	if reportType != "" {
		q += " WHERE report_type = ?"
		args = append(args, reportType)
	}
	q += " ORDER BY generated_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := a.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []StoredReport
	for rows.Next() {
		var r StoredReport
		var generatedAt string
		if err := rows.Scan(&r.ID, &r.ReportID, &r.ReportType, &r.SchemaVersion,
			&r.SizeBytes, &generatedAt); err != nil {
			return nil, err
		}
		r.GeneratedAt, _ = time.Parse(time.RFC3339Nano, generatedAt)
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// GetDocument returns the XML payload of one archived report.
func (a *Archive) GetDocument(id string) ([]byte, error) {
	var doc []byte
	err := a.db.QueryRow("SELECT document FROM reports WHERE id = ?", id).Scan(&doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// OutcomeSummary aggregates the journal by outcome and by report type.
type OutcomeSummary struct {
	Total     int            `json:"total"`
	ByOutcome map[string]int `json:"by_outcome"`
	ByType    map[string]int `json:"by_type"`
}

func (a *Archive) GetOutcomeSummary() (*OutcomeSummary, error) {
	s := &OutcomeSummary{
		ByOutcome: make(map[string]int),
		ByType:    make(map[string]int),
	}

	if err := a.db.QueryRow("SELECT COUNT(*) FROM outcomes").Scan(&s.Total); err != nil {
		return nil, err
	}
	if err := scanGroupCount(a.db, "outcome", s.ByOutcome); err != nil {
		return nil, err
	}
	if err := scanGroupCount(a.db, "report_type", s.ByType); err != nil {
		return nil, err
	}

	return s, nil
}

func scanGroupCount(db *sql.DB, col string, m map[string]int) error {
	rows, err := db.Query(
		"SELECT " + col + ", COUNT(*) FROM outcomes GROUP BY " + col,
	)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var k string
		var v int
		if err := rows.Scan(&k, &v); err != nil {
			return err
		}
		m[k] = v
	}
	return rows.Err()
}
