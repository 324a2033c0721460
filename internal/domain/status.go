package domain

import "fmt"

// RowStatus is the integer data-quality code carried on every report row.
type RowStatus int

const (
	StatusClean              RowStatus = 0
	StatusBatchRejected      RowStatus = 1
	StatusDataBroken         RowStatus = 4
	StatusNoTransactions     RowStatus = 16
	StatusReportingSuspended RowStatus = 32
	StatusAccountClosed      RowStatus = 64
)

// Excludes reports whether the status places the whole account group outside
// the generated report. The set is closed; new codes must be added here
// deliberately.
func (s RowStatus) Excludes() bool {
	switch s {
	case StatusDataBroken, StatusNoTransactions, StatusReportingSuspended, StatusAccountClosed:
		return true
	default:
		return false
	}
}

// Reason returns the human-readable description of an exclusion status. Codes
// outside the known set map to a generic description carrying the code value.
func (s RowStatus) Reason() string {
	switch s {
	case StatusDataBroken:
		return "Account data broken"
	case StatusNoTransactions:
		return "Account has no transactions"
	case StatusReportingSuspended:
		return "Account reporting suspended"
	case StatusAccountClosed:
		return "Account closed on servicer side"
	default:
		return fmt.Sprintf("Unknown issue (status %d)", int(s))
	}
}
