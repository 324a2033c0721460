package domain

import "github.com/shopspring/decimal"

type ReportType string

const (
	ReportTypeDebitCredit ReportType = "DEBIT_CREDIT_NOTIFICATION"
	ReportTypeIntraday    ReportType = "INTRADAY_NOTIFICATION"
)

// ReportTypeUnknown is the sentinel used when a failure happens before the
// report type could be read from the envelope.
const ReportTypeUnknown ReportType = "unknown"

// ReportIDUnknown is the matching sentinel for the report identifier.
const ReportIDUnknown = "unknown"

// AllowsEmpty reports whether a report of this type may be generated from an
// empty row set. End-of-day debit/credit notifications always carry at least
// one booking upstream, so an empty batch there is a data defect.
func (t ReportType) AllowsEmpty() bool {
	switch t {
	case ReportTypeDebitCredit:
		return false
	default:
		return true
	}
}

// AdditionalInfo returns the group-header additional information text for the
// report type, empty for unmapped types.
func (t ReportType) AdditionalInfo() string {
	switch t {
	case ReportTypeDebitCredit:
		return "Contains debit and credit booking notifications"
	case ReportTypeIntraday:
		return "Contains intraday booking notifications"
	default:
		return ""
	}
}

// IDPrefix returns the short prefix used when generating message identifiers.
func (t ReportType) IDPrefix() string {
	switch t {
	case ReportTypeDebitCredit:
		return "DCN"
	case ReportTypeIntraday:
		return "IDN"
	default:
		return "RPT"
	}
}

// ReportRow is one record of the upstream tabular transaction report. Rows are
// immutable once deserialized; the pipeline never writes back into them.
type ReportRow struct {
	AccountID string    `json:"account_id"`
	RowStatus RowStatus `json:"row_status"`

	IBAN      string `json:"iban"`
	BBAN      string `json:"bban"`
	OwnerName string `json:"owner_name"`
	OwnerID   string `json:"owner_id"`
	Currency  string `json:"currency"`

	Amount       decimal.Decimal `json:"amount"`
	CreditDebit  string          `json:"credit_debit"`
	BookingDate  string          `json:"booking_date"`
	ValueDate    string          `json:"value_date"`
	ServicerRef  string          `json:"servicer_ref"`
	BankTxCode   string          `json:"bank_tx_code"`

	Details []RowDetail `json:"details,omitempty"`
}

// RowDetail carries the sub-transaction data of a row: references, amounts,
// related parties and agents, and the raw remittance payload.
type RowDetail struct {
	MessageID     string `json:"message_id"`
	InstructionID string `json:"instruction_id"`
	EndToEndID    string `json:"end_to_end_id"`

	InstructedAmount  decimal.Decimal `json:"instructed_amount"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`

	DebtorName   string `json:"debtor_name"`
	DebtorID     string `json:"debtor_id"`
	DebtorIBAN   string `json:"debtor_iban"`
	CreditorName string `json:"creditor_name"`
	CreditorID   string `json:"creditor_id"`
	CreditorIBAN string `json:"creditor_iban"`

	DebtorBIC   string `json:"debtor_bic"`
	CreditorBIC string `json:"creditor_bic"`

	// Remittance is the raw remittance payload; unstructured text lives under
	// the "ustrd" key.
	Remittance map[string]string `json:"remittance,omitempty"`
}

// RemittanceKeyUnstructured is the named key of the unstructured remittance
// text inside the raw remittance payload.
const RemittanceKeyUnstructured = "ustrd"

// UnstructuredRemittance extracts the unstructured remittance text, empty when
// absent.
func (d RowDetail) UnstructuredRemittance() string {
	return d.Remittance[RemittanceKeyUnstructured]
}

// Envelope is the inbound transport message: report type, the report itself
// and arbitrary metadata.
type Envelope struct {
	ReportType ReportType        `json:"report_type"`
	Report     Report            `json:"report"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Report is the payload of an envelope: an identifier plus the raw rows.
type Report struct {
	ID   string      `json:"id"`
	Rows []ReportRow `json:"rows"`
}
