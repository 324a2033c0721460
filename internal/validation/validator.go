// Package validation filters and partitions raw report rows before mapping.
package validation

import (
	"fmt"
	"log"
	"sort"

	"github.com/vikunalabs/camt-reporter/internal/domain"
)

// Reporter receives exclusion diagnostics. One call is made per status code
// that excluded at least one account.
type Reporter interface {
	ExcludedAccounts(status domain.RowStatus, reason string, accountIDs []string)
}

// LogReporter writes exclusion diagnostics to the standard logger.
type LogReporter struct{}

func (LogReporter) ExcludedAccounts(status domain.RowStatus, reason string, accountIDs []string) {
	log.Printf("[validation] excluded %d account(s), status=%d (%s): %v",
		len(accountIDs), int(status), reason, accountIDs)
}

// Validator checks batch-level preconditions and drops account groups whose
// status marks them as not reportable.
type Validator struct {
	reporter Reporter
}

// NewValidator creates a validator. A nil reporter falls back to LogReporter.
func NewValidator(reporter Reporter) *Validator {
	if reporter == nil {
		reporter = LogReporter{}
	}
	return &Validator{reporter: reporter}
}

// Validate returns the rows that survive batch and per-account checks. Output
// ordering is not significant; callers must treat the result as a set.
//
// The inclusion decision for an account group is derived from the status of
// its first row only. Upstream is assumed to keep the status consistent
// across all rows of one account; rows past the first are not cross-checked.
func (v *Validator) Validate(rows []domain.ReportRow, reportType domain.ReportType) ([]domain.ReportRow, error) {
	if len(rows) == 0 {
		if reportType.AllowsEmpty() {
			return nil, nil
		}
		return nil, &domain.InvalidDataError{
			Reason: fmt.Sprintf("empty row set not permitted for report type %s", reportType),
		}
	}

	// Batch-level rejection: status 1 on the first input row, before grouping,
	// poisons the whole batch regardless of the remaining rows.
	if rows[0].RowStatus == domain.StatusBatchRejected {
		return nil, &domain.InvalidDataError{
			Reason: fmt.Sprintf("batch rejected by upstream, first row carries status %d", domain.StatusBatchRejected),
		}
	}

	groups := make(map[string][]domain.ReportRow)
	for _, row := range rows {
		groups[row.AccountID] = append(groups[row.AccountID], row)
	}

	excluded := make(map[domain.RowStatus][]string)
	var accepted []domain.ReportRow
	for accountID, group := range groups {
		status := group[0].RowStatus
		if status.Excludes() {
			excluded[status] = append(excluded[status], accountID)
			continue
		}
		accepted = append(accepted, group...)
	}

	for status, accountIDs := range excluded {
		sort.Strings(accountIDs)
		v.reporter.ExcludedAccounts(status, status.Reason(), accountIDs)
	}

	return accepted, nil
}
