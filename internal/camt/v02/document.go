// Package v02 holds the external document model bound to the
// camt.054.001.02 schema revision and its translator from the generic
// notification model.
//
// The 02 revision has no per-notification additional-info element; the group
// header AddtlInf is the only free-text carrier, so the generic model's
// additional info appears once per document here.
package v02

import "encoding/xml"

// Namespace is the target namespace of the camt.054.001.02 schema.
const Namespace = "urn:iso:std:iso:20022:tech:xsd:camt.054.001.02"

type Document struct {
	XMLName      xml.Name     `xml:"urn:iso:std:iso:20022:tech:xsd:camt.054.001.02 Document"`
	Notification Notification `xml:"BkToCstmrDbtCdtNtfctn"`
}

type Notification struct {
	GrpHdr GroupHeader           `xml:"GrpHdr"`
	Ntfctn []AccountNotification `xml:"Ntfctn"`
}

type GroupHeader struct {
	MsgID    string `xml:"MsgId"`
	CreDtTm  string `xml:"CreDtTm"`
	MsgRcpt  *Party `xml:"MsgRcpt,omitempty"`
	AddtlInf string `xml:"AddtlInf,omitempty"`
}

type Party struct {
	Nm string   `xml:"Nm,omitempty"`
	ID *PartyID `xml:"Id,omitempty"`
}

type PartyID struct {
	OrgID OrgID `xml:"OrgId"`
}

type OrgID struct {
	Othr GenericID `xml:"Othr"`
}

type GenericID struct {
	ID      string      `xml:"Id"`
	SchmeNm *SchemeName `xml:"SchmeNm,omitempty"`
}

type SchemeName struct {
	Prtry string `xml:"Prtry"`
}

type AccountNotification struct {
	ID        string       `xml:"Id"`
	CreDtTm   string       `xml:"CreDtTm"`
	Acct      Account      `xml:"Acct"`
	TxsSummry *TxSummary   `xml:"TxsSummry,omitempty"`
	Ntry      []Entry      `xml:"Ntry"`
}

type Account struct {
	ID   AccountID       `xml:"Id"`
	Ccy  string          `xml:"Ccy,omitempty"`
	Nm   string          `xml:"Nm,omitempty"`
	Ownr *Party          `xml:"Ownr,omitempty"`
	Svcr *AccountServicer `xml:"Svcr,omitempty"`
}

type AccountID struct {
	IBAN string     `xml:"IBAN,omitempty"`
	Othr *GenericID `xml:"Othr,omitempty"`
}

type AccountServicer struct {
	FinInstnID FinInstID `xml:"FinInstnId"`
}

type FinInstID struct {
	BIC string `xml:"BIC,omitempty"`
	Nm  string `xml:"Nm,omitempty"`
}

type TxSummary struct {
	TtlNtries TotalEntries `xml:"TtlNtries"`
}

type TotalEntries struct {
	NbOfNtries string `xml:"NbOfNtries"`
	Sum        string `xml:"Sum"`
}

type Entry struct {
	NtryRef     string       `xml:"NtryRef,omitempty"`
	Amt         Amount       `xml:"Amt"`
	CdtDbtInd   string       `xml:"CdtDbtInd"`
	Sts         string       `xml:"Sts"`
	BookgDt     *EntryDate   `xml:"BookgDt,omitempty"`
	ValDt       *EntryDate   `xml:"ValDt,omitempty"`
	AcctSvcrRef string       `xml:"AcctSvcrRef,omitempty"`
	BkTxCd      BankTxCode   `xml:"BkTxCd"`
	NtryDtls    *EntryDetails `xml:"NtryDtls,omitempty"`
}

type Amount struct {
	Value string `xml:",chardata"`
	Ccy   string `xml:"Ccy,attr"`
}

type EntryDate struct {
	Dt string `xml:"Dt"`
}

type BankTxCode struct {
	Prtry ProprietaryCode `xml:"Prtry"`
}

type ProprietaryCode struct {
	Cd   string `xml:"Cd"`
	Issr string `xml:"Issr,omitempty"`
}

type EntryDetails struct {
	TxDtls []TransactionDetails `xml:"TxDtls"`
}

type TransactionDetails struct {
	Refs      *References     `xml:"Refs,omitempty"`
	AmtDtls   *AmountDetails  `xml:"AmtDtls,omitempty"`
	RltdPties *RelatedParties `xml:"RltdPties,omitempty"`
	RltdAgts  *RelatedAgents  `xml:"RltdAgts,omitempty"`
	RmtInf    *Remittance     `xml:"RmtInf,omitempty"`
}

type References struct {
	MsgID       string `xml:"MsgId,omitempty"`
	AcctSvcrRef string `xml:"AcctSvcrRef,omitempty"`
	InstrID     string `xml:"InstrId,omitempty"`
	EndToEndID  string `xml:"EndToEndId,omitempty"`
}

type AmountDetails struct {
	InstdAmt *AmountWrapper `xml:"InstdAmt,omitempty"`
	TxAmt    *AmountWrapper `xml:"TxAmt,omitempty"`
}

type AmountWrapper struct {
	Amt Amount `xml:"Amt"`
}

type RelatedParties struct {
	Dbtr     *Party     `xml:"Dbtr,omitempty"`
	DbtrAcct *AcctRef   `xml:"DbtrAcct,omitempty"`
	Cdtr     *Party     `xml:"Cdtr,omitempty"`
	CdtrAcct *AcctRef   `xml:"CdtrAcct,omitempty"`
}

type AcctRef struct {
	ID AccountID `xml:"Id"`
}

type RelatedAgents struct {
	DbtrAgt *Agent `xml:"DbtrAgt,omitempty"`
	CdtrAgt *Agent `xml:"CdtrAgt,omitempty"`
}

type Agent struct {
	FinInstnID FinInstID `xml:"FinInstnId"`
}

type Remittance struct {
	Ustrd []string `xml:"Ustrd,omitempty"`
}
