package validation

import (
	"errors"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vikunalabs/camt-reporter/internal/domain"
)

type exclusionCall struct {
	status     domain.RowStatus
	reason     string
	accountIDs []string
}

type captureReporter struct {
	calls []exclusionCall
}

func (c *captureReporter) ExcludedAccounts(status domain.RowStatus, reason string, accountIDs []string) {
	c.calls = append(c.calls, exclusionCall{status: status, reason: reason, accountIDs: accountIDs})
}

func row(accountID string, status domain.RowStatus) domain.ReportRow {
	return domain.ReportRow{
		AccountID: accountID,
		RowStatus: status,
		Amount:    decimal.RequireFromString("10.00"),
	}
}

func TestValidatePartitionsByFirstRowStatus(t *testing.T) {
	reporter := &captureReporter{}
	v := NewValidator(reporter)

	rows := []domain.ReportRow{
		{AccountID: "A", RowStatus: domain.StatusClean, Amount: decimal.RequireFromString("100.00"), CreditDebit: "C"},
		{AccountID: "B", RowStatus: domain.StatusDataBroken, Amount: decimal.RequireFromString("50.00")},
	}

	out, err := v.Validate(rows, domain.ReportTypeDebitCredit)

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "A", out[0].AccountID)

	assert.Len(t, reporter.calls, 1)
	assert.Equal(t, domain.StatusDataBroken, reporter.calls[0].status)
	assert.Equal(t, "Account data broken", reporter.calls[0].reason)
	assert.Equal(t, []string{"B"}, reporter.calls[0].accountIDs)
}

func TestValidateExclusionIsAllOrNothingPerAccount(t *testing.T) {
	reporter := &captureReporter{}
	v := NewValidator(reporter)

	// Only the first row of a group decides; the clean second row of B is
	// dropped with the rest of its account.
	rows := []domain.ReportRow{
		row("A", domain.StatusClean),
		row("B", domain.StatusAccountClosed),
		row("B", domain.StatusClean),
		row("A", domain.StatusClean),
	}

	out, err := v.Validate(rows, domain.ReportTypeDebitCredit)

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	for _, r := range out {
		assert.Equal(t, "A", r.AccountID)
	}
}

func TestValidateGroupsAllExclusionStatuses(t *testing.T) {
	reporter := &captureReporter{}
	v := NewValidator(reporter)

	rows := []domain.ReportRow{
		row("A", domain.StatusClean),
		row("B", domain.StatusDataBroken),
		row("C", domain.StatusNoTransactions),
		row("D", domain.StatusReportingSuspended),
		row("E", domain.StatusAccountClosed),
		row("F", domain.StatusDataBroken),
	}

	out, err := v.Validate(rows, domain.ReportTypeDebitCredit)

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Len(t, reporter.calls, 4)

	var brokenIDs []string
	for _, call := range reporter.calls {
		if call.status == domain.StatusDataBroken {
			brokenIDs = call.accountIDs
		}
	}
	sort.Strings(brokenIDs)
	assert.Equal(t, []string{"B", "F"}, brokenIDs)
}

func TestValidateEmptyInputDisallowed(t *testing.T) {
	v := NewValidator(&captureReporter{})

	_, err := v.Validate(nil, domain.ReportTypeDebitCredit)

	var invalid *domain.InvalidDataError
	assert.True(t, errors.As(err, &invalid))
}

func TestValidateEmptyInputPermitted(t *testing.T) {
	v := NewValidator(&captureReporter{})

	out, err := v.Validate(nil, domain.ReportTypeIntraday)

	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestValidateBatchPoisonPill(t *testing.T) {
	v := NewValidator(&captureReporter{})

	// Status 1 on the first input row rejects the batch regardless of the
	// statuses that follow.
	rows := []domain.ReportRow{
		row("A", domain.StatusBatchRejected),
		row("B", domain.StatusClean),
	}

	_, err := v.Validate(rows, domain.ReportTypeDebitCredit)

	var invalid *domain.InvalidDataError
	assert.True(t, errors.As(err, &invalid))
}

func TestValidatePoisonPillOnlyChecksFirstRow(t *testing.T) {
	v := NewValidator(&captureReporter{})

	// Status 1 on a later row is not an exclusion status and not a batch
	// rejection; the row passes through with its account.
	rows := []domain.ReportRow{
		row("A", domain.StatusClean),
		row("B", domain.StatusBatchRejected),
	}

	out, err := v.Validate(rows, domain.ReportTypeDebitCredit)

	assert.NoError(t, err)
	assert.Len(t, out, 2)
}
