// Package orchestrator drives the report pipeline for one inbound message and
// classifies its outcome. It is the only place where errors from the pipeline
// are told apart: business-expected absence of data goes to the cancellation
// path, everything else to the error path.
package orchestrator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/vikunalabs/camt-reporter/internal/domain"
	"github.com/vikunalabs/camt-reporter/internal/notification"
	"github.com/vikunalabs/camt-reporter/internal/report"
	"github.com/vikunalabs/camt-reporter/internal/validation"
)

// Metrics is the external counter collaborator.
type Metrics interface {
	IncReceived(reportType domain.ReportType)
}

// FeatureFlags is the external feature-flag collaborator.
type FeatureFlags interface {
	IsEnabled(flag string) bool
}

// Result is a successfully generated report handed to the delivery
// collaborator.
type Result struct {
	ReportType    domain.ReportType
	ReportID      string
	SchemaVersion report.SchemaVersion
	Document      []byte
	GeneratedAt   time.Time
}

// Cancellation describes a deliberately skipped report.
type Cancellation struct {
	ReportType domain.ReportType
	ReportID   string
	Reason     string
}

// Delivery is the external dispatch collaborator. Redelivery and backoff are
// its transport's concern; the orchestrator calls each method at most once per
// message.
type Delivery interface {
	HandleSuccess(res Result) error
	HandleCancelled(c Cancellation) error
	HandleError(cause error, reportType domain.ReportType, reportID string) error
}

// Outcome is the terminal state reached for one message.
type Outcome string

const (
	OutcomeDelivered       Outcome = "DELIVERED"
	OutcomeCancelled       Outcome = "CANCELLED"
	OutcomeCancelledByFlag Outcome = "CANCELLED_BY_FLAG"
	OutcomeFailed          Outcome = "FAILED"
)

// Orchestrator processes inbound report messages. Safe for concurrent use:
// all per-message state lives on the stack of HandleMessage.
type Orchestrator struct {
	validator *validation.Validator
	generator report.ReportGenerator
	version   report.SchemaVersion
	metrics   Metrics
	flags     FeatureFlags
	delivery  Delivery
	clock     notification.Clock
}

func New(
	validator *validation.Validator,
	generator report.ReportGenerator,
	version report.SchemaVersion,
	metrics Metrics,
	flags FeatureFlags,
	delivery Delivery,
	clock notification.Clock,
) *Orchestrator {
	return &Orchestrator{
		validator: validator,
		generator: generator,
		version:   version,
		metrics:   metrics,
		flags:     flags,
		delivery:  delivery,
		clock:     clock,
	}
}

// CutoverFlag names the feature flag that suspends generation for a report
// type during migration to a downstream replacement.
func CutoverFlag(reportType domain.ReportType) string {
	return "camt-cutover-" + string(reportType)
}

// HandleMessage runs one message through deserialization, flag check,
// pipeline and delivery. It never returns an error: every failure is
// classified, delegated and reflected in the returned outcome. No retries
// happen here.
func (o *Orchestrator) HandleMessage(payload []byte) Outcome {
	var env domain.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return o.failed(fmt.Errorf("deserialize envelope: %w", err), domain.ReportTypeUnknown, domain.ReportIDUnknown)
	}

	reportType := env.ReportType
	reportID := env.Report.ID
	o.metrics.IncReceived(reportType)

	if o.flags.IsEnabled(CutoverFlag(reportType)) {
		// Nothing is generated and nothing is dispatched; the log line is the
		// only trace of a flagged message.
		log.Printf("[orchestrator] report %s/%s cancelled by cutover flag", reportType, reportID)
		return OutcomeCancelledByFlag
	}

	document, err := o.process(env)
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			log.Printf("[orchestrator] report %s/%s has no data to report", reportType, reportID)
			o.deliverCancelled(Cancellation{
				ReportType: reportType,
				ReportID:   reportID,
				Reason:     err.Error(),
			})
			return OutcomeCancelled
		}
		return o.failed(err, reportType, reportID)
	}

	res := Result{
		ReportType:    reportType,
		ReportID:      reportID,
		SchemaVersion: o.version,
		Document:      document,
		GeneratedAt:   o.clock.Now(),
	}
	if err := o.delivery.HandleSuccess(res); err != nil {
		return o.failed(fmt.Errorf("deliver report: %w", err), reportType, reportID)
	}

	log.Printf("[orchestrator] delivered report %s/%s (%d bytes, %s)",
		reportType, reportID, len(document), o.version)
	return OutcomeDelivered
}

// process runs the synchronous pipeline chain for one message.
func (o *Orchestrator) process(env domain.Envelope) ([]byte, error) {
	rows, err := o.validator.Validate(env.Report.Rows, env.ReportType)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("report %s: %w", env.Report.ID, domain.ErrNoData)
	}

	ctx := report.Context{
		ReportType: env.ReportType,
		ReportID:   env.Report.ID,
		Seq:        notification.NewSequence(),
	}
	return o.generator.GenerateReport(rows, ctx)
}

func (o *Orchestrator) failed(cause error, reportType domain.ReportType, reportID string) Outcome {
	log.Printf("[orchestrator] report %s/%s failed: %v", reportType, reportID, cause)
	if err := o.delivery.HandleError(cause, reportType, reportID); err != nil {
		log.Printf("[orchestrator] WARNING: error path delivery failed for %s/%s: %v",
			reportType, reportID, err)
	}
	return OutcomeFailed
}

func (o *Orchestrator) deliverCancelled(c Cancellation) {
	if err := o.delivery.HandleCancelled(c); err != nil {
		log.Printf("[orchestrator] WARNING: cancellation delivery failed for %s/%s: %v",
			c.ReportType, c.ReportID, err)
	}
}
