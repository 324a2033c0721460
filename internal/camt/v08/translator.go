package v08

import (
	"strconv"
	"time"

	"github.com/vikunalabs/camt-reporter/internal/notification"
)

const timestampLayout = "2006-01-02T15:04:05.000-07:00"

// FromNotification maps the generic notification document onto the
// camt.054.001.08 shape. Purely structural: values are reformatted, never
// altered or aggregated.
func FromNotification(doc *notification.Document) *Document {
	out := &Document{
		Notification: Notification{
			GrpHdr: GroupHeader{
				MsgID:    doc.GroupHeader.MessageID,
				CreDtTm:  doc.GroupHeader.CreatedAt.Format(timestampLayout),
				MsgRcpt:  mapParty(doc.GroupHeader.Recipient),
				AddtlInf: doc.GroupHeader.AdditionalInfo,
			},
		},
	}

	for _, n := range doc.Notifications {
		out.Notification.Ntfctn = append(out.Notification.Ntfctn, mapNotification(n))
	}

	return out
}

func mapNotification(n notification.AccountNotification) AccountNotification {
	acct := Account{
		ID:   AccountID{IBAN: n.Account.IBAN},
		Ccy:  n.Account.Currency,
		Nm:   n.Account.OwnerName,
		Ownr: mapParty(n.Account.Owner),
		Svcr: &AccountServicer{
			FinInstnID: FinInstID{BICFI: n.Account.Servicer.BIC, Nm: n.Account.Servicer.Name},
		},
	}
	if n.Account.OtherID != "" {
		acct.ID.Othr = &GenericID{
			ID:      n.Account.OtherID,
			SchmeNm: &SchemeName{Prtry: n.Account.SchemeCode},
		}
	}

	// AddtlNtfctnInf stays empty: the generic model carries the free text once
	// in the group header, and this mapping never invents per-notification
	// content.
	out := AccountNotification{
		ID:      n.ID,
		CreDtTm: n.CreatedAt.Format(timestampLayout),
		Acct:    acct,
		TxsSummry: &TxSummary{
			TtlNtries: TotalEntries{
				NbOfNtries: strconv.Itoa(n.Totals.Count),
				Sum:        n.Totals.Sum.String(),
			},
		},
	}

	for _, e := range n.Entries {
		out.Ntry = append(out.Ntry, mapEntry(e))
	}

	return out
}

func mapEntry(e notification.Entry) Entry {
	out := Entry{
		NtryRef:     e.Reference,
		Amt:         Amount{Value: e.Amount.Value.String(), Ccy: e.Amount.Currency},
		CdtDbtInd:   string(e.CreditDebit),
		Sts:         EntryStatus{Cd: e.Status},
		BookgDt:     mapDate(e.BookingDate),
		ValDt:       mapDate(e.ValueDate),
		AcctSvcrRef: e.ServicerRef,
		BkTxCd: BankTxCode{
			Prtry: ProprietaryCode{Cd: e.ProprietaryCode, Issr: e.Issuer},
		},
	}

	if len(e.Details) > 0 {
		details := &EntryDetails{}
		for _, d := range e.Details {
			details.TxDtls = append(details.TxDtls, mapDetail(d))
		}
		out.NtryDtls = details
	}

	return out
}

func mapDetail(d notification.TransactionDetail) TransactionDetails {
	out := TransactionDetails{
		Refs: &References{
			MsgID:       d.Refs.MessageID,
			AcctSvcrRef: d.Refs.ServicerRef,
			InstrID:     d.Refs.InstructionID,
			EndToEndID:  d.Refs.EndToEndID,
		},
		AmtDtls: &AmountDetails{
			InstdAmt: &AmountWrapper{Amt: mapAmount(d.AmountDetails.Instructed)},
			TxAmt:    &AmountWrapper{Amt: mapAmount(d.AmountDetails.Transaction)},
		},
		RltdPties: &RelatedParties{
			Dbtr:     mapPartyChoice(d.Parties.Debtor),
			Cdtr:     mapPartyChoice(d.Parties.Creditor),
			DbtrAcct: mapAcctRef(d.Parties.DebtorIBAN),
			CdtrAcct: mapAcctRef(d.Parties.CreditorIBAN),
		},
		RltdAgts: &RelatedAgents{
			DbtrAgt: &Agent{FinInstnID: FinInstID{BICFI: d.Agents.DebtorBIC}},
			CdtrAgt: &Agent{FinInstnID: FinInstID{BICFI: d.Agents.CreditorBIC}},
		},
	}

	if d.RemittanceText != "" {
		out.RmtInf = &Remittance{Ustrd: []string{d.RemittanceText}}
	}

	return out
}

func mapParty(p notification.Party) *Party {
	out := &Party{Nm: p.Name}
	if p.ID != "" {
		out.ID = &PartyID{
			OrgID: OrgID{
				Othr: GenericID{ID: p.ID, SchmeNm: &SchemeName{Prtry: p.SchemeCode}},
			},
		}
	}
	return out
}

func mapPartyChoice(p notification.Party) *PartyChoice {
	mapped := mapParty(p)
	if mapped == nil {
		return nil
	}
	return &PartyChoice{Pty: *mapped}
}

func mapAcctRef(iban string) *AcctRef {
	if iban == "" {
		return nil
	}
	return &AcctRef{ID: AccountID{IBAN: iban}}
}

func mapAmount(a notification.Amount) Amount {
	return Amount{Value: a.Value.String(), Ccy: a.Currency}
}

func mapDate(t time.Time) *EntryDate {
	if t.IsZero() {
		return nil
	}
	return &EntryDate{Dt: t.Format("2006-01-02")}
}
