// Package notification holds the schema-agnostic bank notification model and
// the mapper building it from validated report rows. Version translators in
// internal/camt consume this model; nothing here knows about XML.
package notification

import (
	"time"

	"github.com/shopspring/decimal"
)

// Indicator is the credit/debit side of an entry.
type Indicator string

const (
	Credit Indicator = "CRDT"
	Debit  Indicator = "DBIT"
)

// EntryStatusBooked is the fixed status of every reported entry: the upstream
// report only ever contains booked transactions.
const EntryStatusBooked = "BOOK"

// DefaultSchemeCode tags organization and account identifiers whose scheme is
// not overridden by context.
const DefaultSchemeCode = "BANK"

// Party is an organization identity.
type Party struct {
	ID         string
	Name       string
	SchemeCode string
}

// Institution identifies a financial institution by BIC.
type Institution struct {
	BIC  string
	Name string
}

// AccountRef identifies the reported account.
type AccountRef struct {
	IBAN      string
	OtherID   string // BBAN-derived, tagged with the default scheme
	SchemeCode string
	OwnerName string
	Currency  string
	Owner     Party
	Servicer  Institution
}

// Amount pairs a decimal value with its currency.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// Totals aggregates the entries of one account notification. Sum is the exact
// decimal sum of entry amounts, Count their cardinality.
type Totals struct {
	Sum   decimal.Decimal
	Count int
}

// References is the identifier block of one sub-transaction.
type References struct {
	MessageID     string
	InstructionID string
	EndToEndID    string
	ServicerRef   string
}

// AmountDetails pairs the instructed and transaction amounts of one
// sub-transaction.
type AmountDetails struct {
	Instructed  Amount
	Transaction Amount
}

// TransactionParties resolves debtor and creditor identification.
type TransactionParties struct {
	Debtor       Party
	DebtorIBAN   string
	Creditor     Party
	CreditorIBAN string
}

// TransactionAgents resolves BIC codes of the involved agents, empty when
// absent.
type TransactionAgents struct {
	DebtorBIC   string
	CreditorBIC string
}

// TransactionDetail is one sub-transaction of an entry.
type TransactionDetail struct {
	Refs           References
	AmountDetails  AmountDetails
	Parties        TransactionParties
	Agents         TransactionAgents
	RemittanceText string
}

// Entry is one booking of an account notification.
type Entry struct {
	Reference       string // sequential within the document, assigned by the mapper
	Amount          Amount
	CreditDebit     Indicator
	Status          string
	BookingDate     time.Time
	ValueDate       time.Time
	ServicerRef     string
	ProprietaryCode string
	Issuer          string
	Details         []TransactionDetail
}

// AccountNotification is the per-account section of a document.
type AccountNotification struct {
	ID        string
	CreatedAt time.Time
	Account   AccountRef
	Totals    Totals
	Entries   []Entry
}

// GroupHeader heads a document.
type GroupHeader struct {
	MessageID      string
	CreatedAt      time.Time
	Recipient      Party
	AdditionalInfo string
}

// Document is the generic internal notification message. It is an immutable
// value graph owned by the pipeline invocation that built it.
type Document struct {
	GroupHeader   GroupHeader
	Notifications []AccountNotification
}
