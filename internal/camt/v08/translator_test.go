package v08

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikunalabs/camt-reporter/internal/notification"
)

func testDocument() *notification.Document {
	created := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
	return &notification.Document{
		GroupHeader: notification.GroupHeader{
			MessageID:      "IDN-20260302143000-deadbeef",
			CreatedAt:      created,
			Recipient:      notification.Party{ID: "CORP-001", Name: "Acme Corp", SchemeCode: "BANK"},
			AdditionalInfo: "Contains intraday booking notifications",
		},
		Notifications: []notification.AccountNotification{{
			ID:        "1",
			CreatedAt: created,
			Account: notification.AccountRef{
				IBAN:      "DE89370400440532013000",
				OwnerName: "Acme Corp",
				Currency:  "EUR",
				Servicer:  notification.Institution{BIC: "VIKNDEFFXXX", Name: "Vikuna Bank"},
			},
			Totals: notification.Totals{Sum: decimal.RequireFromString("10.00"), Count: 1},
			Entries: []notification.Entry{{
				Reference:   "1",
				Amount:      notification.Amount{Value: decimal.RequireFromString("10.00"), Currency: "EUR"},
				CreditDebit: notification.Credit,
				Status:      notification.EntryStatusBooked,
				BookingDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Details: []notification.TransactionDetail{{
					Parties: notification.TransactionParties{
						Debtor: notification.Party{ID: "DBT-1", Name: "Debtor GmbH", SchemeCode: "BANK"},
					},
				}},
			}},
		}},
	}
}

func TestFromNotificationRevisionDifferences(t *testing.T) {
	out := FromNotification(testDocument())

	require.Len(t, out.Notification.Ntfctn, 1)
	n := out.Notification.Ntfctn[0]

	// Financial institution identifiers migrated to BICFI in this revision.
	assert.Equal(t, "VIKNDEFFXXX", n.Acct.Svcr.FinInstnID.BICFI)

	// Entry status became a choice element.
	assert.Equal(t, "BOOK", n.Ntry[0].Sts.Cd)

	// The free text lives in the group header only; the per-notification
	// element stays untouched.
	assert.Equal(t, "Contains intraday booking notifications", out.Notification.GrpHdr.AddtlInf)
	assert.Empty(t, n.AddtlNtfctnInf)
}

func TestFromNotificationPartyChoice(t *testing.T) {
	out := FromNotification(testDocument())

	d := out.Notification.Ntfctn[0].Ntry[0].NtryDtls.TxDtls[0]
	require.NotNil(t, d.RltdPties.Dbtr)
	assert.Equal(t, "Debtor GmbH", d.RltdPties.Dbtr.Pty.Nm)
	assert.Equal(t, "DBT-1", d.RltdPties.Dbtr.Pty.ID.OrgID.Othr.ID)
}
