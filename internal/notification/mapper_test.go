package notification

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikunalabs/camt-reporter/internal/domain"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

var testTime = time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

func newTestMapper() *Mapper {
	return NewMapper(Config{
		Servicer:          Institution{BIC: "VIKNDEFFXXX", Name: "Vikuna Bank"},
		Recipient:         Party{ID: "CORP-001", Name: "Acme Corp", SchemeCode: DefaultSchemeCode},
		ReportingCurrency: "EUR",
	}, fixedClock{t: testTime})
}

func cleanRow(accountID, amount, creditDebit string) domain.ReportRow {
	return domain.ReportRow{
		AccountID:   accountID,
		IBAN:        "DE89370400440532013000",
		BBAN:        "370400440532013000",
		OwnerName:   "Acme Corp",
		OwnerID:     "CORP-001",
		Currency:    "EUR",
		Amount:      decimal.RequireFromString(amount),
		CreditDebit: creditDebit,
		BookingDate: "2026-03-01",
		ValueDate:   "2026-03-02",
		ServicerRef: "SVCR-1",
		BankTxCode:  "NTRF",
	}
}

func TestBuildDocumentTotals(t *testing.T) {
	m := newTestMapper()

	rows := []domain.ReportRow{
		cleanRow("A", "10.00", "C"),
		cleanRow("A", "20.50", "C"),
		cleanRow("A", "-5.00", "D"),
	}

	doc, err := m.BuildDocument(rows, domain.ReportTypeDebitCredit, NewSequence())

	require.NoError(t, err)
	require.Len(t, doc.Notifications, 1)

	totals := doc.Notifications[0].Totals
	assert.Equal(t, 3, totals.Count)
	assert.True(t, totals.Sum.Equal(decimal.RequireFromString("25.50")),
		"expected 25.50, got %s", totals.Sum)
}

func TestBuildDocumentSequenceIDs(t *testing.T) {
	m := newTestMapper()

	rowB := cleanRow("B", "7.25", "D")
	rowB.IBAN = "DE02120300000000202051"
	rows := []domain.ReportRow{
		cleanRow("A", "10.00", "C"),
		rowB,
		cleanRow("A", "3.00", "C"),
	}

	doc, err := m.BuildDocument(rows, domain.ReportTypeDebitCredit, NewSequence())

	require.NoError(t, err)
	require.Len(t, doc.Notifications, 2)

	// Notification ids are assigned in first-occurrence order of the input.
	assert.Equal(t, "1", doc.Notifications[0].ID)
	assert.Equal(t, "2", doc.Notifications[1].ID)

	// Entry references are document-global and never repeat.
	var refs []string
	for _, n := range doc.Notifications {
		for _, e := range n.Entries {
			refs = append(refs, e.Reference)
		}
	}
	assert.Equal(t, []string{"1", "2", "3"}, refs)
}

func TestSequenceNotSharedAcrossInvocations(t *testing.T) {
	m := newTestMapper()
	rows := []domain.ReportRow{cleanRow("A", "10.00", "C")}

	first, err := m.BuildDocument(rows, domain.ReportTypeDebitCredit, NewSequence())
	require.NoError(t, err)
	second, err := m.BuildDocument(rows, domain.ReportTypeDebitCredit, NewSequence())
	require.NoError(t, err)

	// Each invocation owns its counters: both documents start at 1.
	assert.Equal(t, "1", first.Notifications[0].ID)
	assert.Equal(t, "1", second.Notifications[0].ID)
}

func TestBuildDocumentGroupHeader(t *testing.T) {
	m := newTestMapper()

	doc, err := m.BuildDocument([]domain.ReportRow{cleanRow("A", "10.00", "C")},
		domain.ReportTypeDebitCredit, NewSequence())

	require.NoError(t, err)
	hdr := doc.GroupHeader
	assert.Equal(t, testTime, hdr.CreatedAt)
	assert.Equal(t, "Contains debit and credit booking notifications", hdr.AdditionalInfo)
	assert.Equal(t, "Acme Corp", hdr.Recipient.Name)
	assert.Regexp(t, `^DCN-20260302143000-[0-9a-f]{8}$`, hdr.MessageID)
}

func TestBuildDocumentNoData(t *testing.T) {
	m := newTestMapper()

	_, err := m.BuildDocument(nil, domain.ReportTypeDebitCredit, NewSequence())

	assert.True(t, errors.Is(err, domain.ErrNoData))
}

func TestBuildDocumentEntryFields(t *testing.T) {
	m := newTestMapper()

	r := cleanRow("A", "99.95", "D")
	r.Details = []domain.RowDetail{{
		MessageID:         "MSG-1",
		InstructionID:     "INSTR-1",
		EndToEndID:        "E2E-1",
		InstructedAmount:  decimal.RequireFromString("99.95"),
		TransactionAmount: decimal.RequireFromString("99.95"),
		DebtorName:        "Debtor GmbH",
		DebtorID:          "DBT-1",
		DebtorIBAN:        "DE02120300000000202051",
		CreditorName:      "Creditor AG",
		CreditorID:        "CDT-1",
		CreditorIBAN:      "DE02500105170137075030",
		DebtorBIC:         "DEUTDEFFXXX",
		Remittance:        map[string]string{"ustrd": "Invoice 4711"},
	}}

	doc, err := m.BuildDocument([]domain.ReportRow{r}, domain.ReportTypeDebitCredit, NewSequence())

	require.NoError(t, err)
	entry := doc.Notifications[0].Entries[0]
	assert.Equal(t, Debit, entry.CreditDebit)
	assert.Equal(t, EntryStatusBooked, entry.Status)
	assert.Equal(t, "NTRF", entry.ProprietaryCode)
	assert.Equal(t, "Vikuna Bank", entry.Issuer)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), entry.BookingDate)

	require.Len(t, entry.Details, 1)
	detail := entry.Details[0]
	assert.Equal(t, "MSG-1", detail.Refs.MessageID)
	assert.Equal(t, "EUR", detail.AmountDetails.Instructed.Currency)
	assert.Equal(t, "Debtor GmbH", detail.Parties.Debtor.Name)
	assert.Equal(t, DefaultSchemeCode, detail.Parties.Debtor.SchemeCode)
	assert.Equal(t, "DEUTDEFFXXX", detail.Agents.DebtorBIC)
	assert.Equal(t, "", detail.Agents.CreditorBIC)
	assert.Equal(t, "Invoice 4711", detail.RemittanceText)
}

func TestBuildDocumentRemittanceDefaultsToEmpty(t *testing.T) {
	m := newTestMapper()

	r := cleanRow("A", "1.00", "C")
	r.Details = []domain.RowDetail{{MessageID: "MSG-1"}}

	doc, err := m.BuildDocument([]domain.ReportRow{r}, domain.ReportTypeDebitCredit, NewSequence())

	require.NoError(t, err)
	assert.Equal(t, "", doc.Notifications[0].Entries[0].Details[0].RemittanceText)
}

func TestBuildDocumentLaterRowMissingCurrency(t *testing.T) {
	m := newTestMapper()

	// The account reference only sees the first row; a later row must still
	// fail on its own missing currency rather than slip into the entry amount.
	second := cleanRow("A", "5.00", "C")
	second.Currency = ""
	rows := []domain.ReportRow{cleanRow("A", "10.00", "C"), second}

	_, err := m.BuildDocument(rows, domain.ReportTypeDebitCredit, NewSequence())

	var mapErr *domain.MappingError
	require.True(t, errors.As(err, &mapErr))
	assert.Equal(t, "currency", mapErr.Field)
	assert.Equal(t, "entry for account A", mapErr.Entity)
}

func TestBuildDocumentMappingErrors(t *testing.T) {
	m := newTestMapper()

	cases := []struct {
		name   string
		mutate func(*domain.ReportRow)
		field  string
	}{
		{"missing iban", func(r *domain.ReportRow) { r.IBAN = "" }, "iban"},
		{"missing currency", func(r *domain.ReportRow) { r.Currency = "" }, "currency"},
		{"missing bank tx code", func(r *domain.ReportRow) { r.BankTxCode = "" }, "bank_tx_code"},
		{"unknown indicator", func(r *domain.ReportRow) { r.CreditDebit = "X" }, "credit_debit"},
		{"bad booking date", func(r *domain.ReportRow) { r.BookingDate = "01.03.2026" }, "booking_date"},
		{"empty value date", func(r *domain.ReportRow) { r.ValueDate = "" }, "value_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := cleanRow("A", "10.00", "C")
			tc.mutate(&r)

			_, err := m.BuildDocument([]domain.ReportRow{r}, domain.ReportTypeDebitCredit, NewSequence())

			var mapErr *domain.MappingError
			require.True(t, errors.As(err, &mapErr), "expected mapping error, got %v", err)
			assert.Equal(t, tc.field, mapErr.Field)
		})
	}
}
