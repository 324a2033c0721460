package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vikunalabs/camt-reporter/internal/domain"
)

const bookingDateLayout = "2006-01-02"

// Config carries the fixed institutional values the mapper stamps into every
// document. All of them come from configuration, never from row data.
type Config struct {
	Servicer          Institution
	Recipient         Party
	ReportingCurrency string
}

// Mapper builds the generic notification document from validated rows. It is
// stateless; per-document counters are threaded in by the caller.
type Mapper struct {
	cfg   Config
	clock Clock
}

func NewMapper(cfg Config, clock Clock) *Mapper {
	return &Mapper{cfg: cfg, clock: clock}
}

// BuildDocument maps validated rows into a Document. It returns
// domain.ErrNoData when the rows cover zero accounts, and a
// domain.MappingError when a mandatory field is absent or unreadable.
func (m *Mapper) BuildDocument(rows []domain.ReportRow, reportType domain.ReportType, seq *Sequence) (*Document, error) {
	accounts := groupRows(rows)
	if len(accounts) == 0 {
		return nil, fmt.Errorf("report type %s: %w", reportType, domain.ErrNoData)
	}

	now := m.clock.Now()
	doc := &Document{
		GroupHeader: GroupHeader{
			MessageID:      NewMessageID(reportType, now),
			CreatedAt:      now,
			Recipient:      m.cfg.Recipient,
			AdditionalInfo: reportType.AdditionalInfo(),
		},
	}

	for _, acct := range accounts {
		ntfctn, err := m.buildNotification(acct, now, seq)
		if err != nil {
			return nil, err
		}
		doc.Notifications = append(doc.Notifications, ntfctn)
	}

	return doc, nil
}

// NewMessageID derives a message identifier from the report type, the creation
// time and a random suffix.
func NewMessageID(reportType domain.ReportType, at time.Time) string {
	return fmt.Sprintf("%s-%s-%s",
		reportType.IDPrefix(), at.Format("20060102150405"), uuid.NewString()[:8])
}

// accountGroup pairs an account id with its rows, in first-occurrence order of
// the input so notification ids are assigned deterministically.
type accountGroup struct {
	id   string
	rows []domain.ReportRow
}

func groupRows(rows []domain.ReportRow) []accountGroup {
	index := make(map[string]int)
	var groups []accountGroup
	for _, row := range rows {
		i, ok := index[row.AccountID]
		if !ok {
			i = len(groups)
			index[row.AccountID] = i
			groups = append(groups, accountGroup{id: row.AccountID})
		}
		groups[i].rows = append(groups[i].rows, row)
	}
	return groups
}

func (m *Mapper) buildNotification(acct accountGroup, now time.Time, seq *Sequence) (AccountNotification, error) {
	ref, err := m.buildAccountRef(acct)
	if err != nil {
		return AccountNotification{}, err
	}

	var entries []Entry
	for _, row := range acct.rows {
		entry, err := m.buildEntry(row, seq)
		if err != nil {
			return AccountNotification{}, err
		}
		entries = append(entries, entry)
	}

	return AccountNotification{
		ID:        seq.NextNotification(),
		CreatedAt: now,
		Account:   ref,
		Totals:    buildTotals(entries),
		Entries:   entries,
	}, nil
}

func (m *Mapper) buildAccountRef(acct accountGroup) (AccountRef, error) {
	first := acct.rows[0]
	if first.IBAN == "" {
		return AccountRef{}, &domain.MappingError{Entity: "account " + acct.id, Field: "iban"}
	}
	if first.Currency == "" {
		return AccountRef{}, &domain.MappingError{Entity: "account " + acct.id, Field: "currency"}
	}

	return AccountRef{
		IBAN:       first.IBAN,
		OtherID:    first.BBAN,
		SchemeCode: DefaultSchemeCode,
		OwnerName:  first.OwnerName,
		Currency:   first.Currency,
		Owner: Party{
			ID:         first.OwnerID,
			Name:       first.OwnerName,
			SchemeCode: DefaultSchemeCode,
		},
		Servicer: m.cfg.Servicer,
	}, nil
}

// buildTotals computes the exact decimal sum and count of the entries.
func buildTotals(entries []Entry) Totals {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount.Value)
	}
	return Totals{Sum: sum, Count: len(entries)}
}

func (m *Mapper) buildEntry(row domain.ReportRow, seq *Sequence) (Entry, error) {
	entity := "entry for account " + row.AccountID

	if row.Currency == "" {
		return Entry{}, &domain.MappingError{Entity: entity, Field: "currency"}
	}
	if row.BankTxCode == "" {
		return Entry{}, &domain.MappingError{Entity: entity, Field: "bank_tx_code"}
	}

	indicator, err := mapIndicator(row.CreditDebit)
	if err != nil {
		return Entry{}, &domain.MappingError{Entity: entity, Field: "credit_debit", Cause: err}
	}

	bookingDate, err := parseDate(row.BookingDate)
	if err != nil {
		return Entry{}, &domain.MappingError{Entity: entity, Field: "booking_date", Cause: err}
	}
	valueDate, err := parseDate(row.ValueDate)
	if err != nil {
		return Entry{}, &domain.MappingError{Entity: entity, Field: "value_date", Cause: err}
	}

	entry := Entry{
		Reference:       seq.NextEntry(),
		Amount:          Amount{Value: row.Amount, Currency: row.Currency},
		CreditDebit:     indicator,
		Status:          EntryStatusBooked,
		BookingDate:     bookingDate,
		ValueDate:       valueDate,
		ServicerRef:     row.ServicerRef,
		ProprietaryCode: row.BankTxCode,
		Issuer:          m.cfg.Servicer.Name,
	}

	for _, detail := range row.Details {
		entry.Details = append(entry.Details, m.buildDetail(detail))
	}

	return entry, nil
}

func (m *Mapper) buildDetail(d domain.RowDetail) TransactionDetail {
	return TransactionDetail{
		Refs: References{
			MessageID:     d.MessageID,
			InstructionID: d.InstructionID,
			EndToEndID:    d.EndToEndID,
			ServicerRef:   d.MessageID,
		},
		AmountDetails: AmountDetails{
			Instructed:  Amount{Value: d.InstructedAmount, Currency: m.cfg.ReportingCurrency},
			Transaction: Amount{Value: d.TransactionAmount, Currency: m.cfg.ReportingCurrency},
		},
		Parties: TransactionParties{
			Debtor:       Party{ID: d.DebtorID, Name: d.DebtorName, SchemeCode: DefaultSchemeCode},
			DebtorIBAN:   d.DebtorIBAN,
			Creditor:     Party{ID: d.CreditorID, Name: d.CreditorName, SchemeCode: DefaultSchemeCode},
			CreditorIBAN: d.CreditorIBAN,
		},
		Agents: TransactionAgents{
			DebtorBIC:   d.DebtorBIC,
			CreditorBIC: d.CreditorBIC,
		},
		RemittanceText: d.UnstructuredRemittance(),
	}
}

func mapIndicator(code string) (Indicator, error) {
	switch code {
	case "C", "CRDT":
		return Credit, nil
	case "D", "DBIT":
		return Debit, nil
	default:
		return "", fmt.Errorf("unknown credit/debit code %q", code)
	}
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	return time.Parse(bookingDateLayout, s)
}
