// Package cii provides the typed model and document binding for UN/CEFACT
// Cross Industry Invoice (D16B) documents, covering the subset of the schema
// used by the EN 16931 billing profile.
package cii

import (
	"encoding/xml"

	"github.com/invopop/validation"
)

// Document is the root of a Cross Industry Invoice.
type Document struct {
	XMLName                     xml.Name           `xml:"rsm:CrossIndustryInvoice"`
	ExchangedDocumentContext    *DocumentContext   `xml:"rsm:ExchangedDocumentContext"`
	ExchangedDocument           *ExchangedDocument `xml:"rsm:ExchangedDocument"`
	SupplyChainTradeTransaction *Transaction       `xml:"rsm:SupplyChainTradeTransaction"`
}

// DocumentContext carries the business process and guideline parameters of
// the exchange.
type DocumentContext struct {
	BusinessProcessParameter *ContextParameter `xml:"ram:BusinessProcessSpecifiedDocumentContextParameter"`
	GuidelineParameter       *ContextParameter `xml:"ram:GuidelineSpecifiedDocumentContextParameter"`
}

// ContextParameter identifies a document context by ID.
type ContextParameter struct {
	ID *ID `xml:"ram:ID"`
}

// ExchangedDocument holds the document-level metadata.
type ExchangedDocument struct {
	ID            *ID       `xml:"ram:ID"`
	TypeCode      string    `xml:"ram:TypeCode"`
	IssueDateTime *DateTime `xml:"ram:IssueDateTime"`
	IncludedNote  []Note    `xml:"ram:IncludedNote"`
}

// Note is a free-text note made up of one or more content fragments.
type Note struct {
	Content     []Text  `xml:"ram:Content"`
	SubjectCode *string `xml:"ram:SubjectCode"`
}

// Transaction groups the three header trade sections of the invoice.
type Transaction struct {
	ApplicableHeaderTradeAgreement  *Agreement  `xml:"ram:ApplicableHeaderTradeAgreement"`
	ApplicableHeaderTradeDelivery   *Delivery   `xml:"ram:ApplicableHeaderTradeDelivery"`
	ApplicableHeaderTradeSettlement *Settlement `xml:"ram:ApplicableHeaderTradeSettlement"`
}

// Agreement is the header trade agreement section.
type Agreement struct {
	BuyerReference                    *Text                 `xml:"ram:BuyerReference"`
	SellerTradeParty                  *TradeParty           `xml:"ram:SellerTradeParty"`
	BuyerTradeParty                   *TradeParty           `xml:"ram:BuyerTradeParty"`
	SellerTaxRepresentativeTradeParty *TradeParty           `xml:"ram:SellerTaxRepresentativeTradeParty"`
	SellerOrderReferencedDocument     *ReferencedDocument   `xml:"ram:SellerOrderReferencedDocument"`
	BuyerOrderReferencedDocument      *ReferencedDocument   `xml:"ram:BuyerOrderReferencedDocument"`
	AdditionalReferencedDocument      []*ReferencedDocument `xml:"ram:AdditionalReferencedDocument"`
	SpecifiedProcuringProject         *ProcuringProject     `xml:"ram:SpecifiedProcuringProject"`
	ContractReferencedDocument        *ReferencedDocument   `xml:"ram:ContractReferencedDocument"`
}

// ProcuringProject identifies the project this invoice belongs to.
type ProcuringProject struct {
	ID   *ID   `xml:"ram:ID"`
	Name *Text `xml:"ram:Name"`
}

// Delivery is the header trade delivery section.
type Delivery struct {
	ShipToTradeParty                  *TradeParty         `xml:"ram:ShipToTradeParty"`
	ActualDeliverySupplyChainEvent    *SupplyChainEvent   `xml:"ram:ActualDeliverySupplyChainEvent"`
	DespatchAdviceReferencedDocument  *ReferencedDocument `xml:"ram:DespatchAdviceReferencedDocument"`
	ReceivingAdviceReferencedDocument *ReferencedDocument `xml:"ram:ReceivingAdviceReferencedDocument"`
}

// SupplyChainEvent marks an event with an occurrence timestamp.
type SupplyChainEvent struct {
	OccurrenceDateTime *DateTime `xml:"ram:OccurrenceDateTime"`
}

// Settlement is the header trade settlement section.
type Settlement struct {
	CreditorReferenceID                  *ID                  `xml:"ram:CreditorReferenceID"`
	PaymentReference                     []Text               `xml:"ram:PaymentReference"`
	TaxCurrencyCode                      string               `xml:"ram:TaxCurrencyCode"`
	InvoiceCurrencyCode                  string               `xml:"ram:InvoiceCurrencyCode"`
	PayeeTradeParty                      *TradeParty          `xml:"ram:PayeeTradeParty"`
	SpecifiedTradeSettlementPaymentMeans []*PaymentMeans      `xml:"ram:SpecifiedTradeSettlementPaymentMeans"`
	ApplicableTradeTax                   []*TradeTax          `xml:"ram:ApplicableTradeTax"`
	BillingSpecifiedPeriod               *Period              `xml:"ram:BillingSpecifiedPeriod"`
	SpecifiedTradePaymentTerms           []*PaymentTerms      `xml:"ram:SpecifiedTradePaymentTerms"`
	MonetarySummation                    *MonetarySummation   `xml:"ram:SpecifiedTradeSettlementHeaderMonetarySummation"`
	InvoiceReferencedDocument            *ReferencedDocument  `xml:"ram:InvoiceReferencedDocument"`
	ReceivableAccountingAccount          []*AccountingAccount `xml:"ram:ReceivableSpecifiedTradeAccountingAccount"`
}

// TradeTax is a header-level applicable trade tax.
type TradeTax struct {
	TypeCode     string `xml:"ram:TypeCode"`
	CategoryCode string `xml:"ram:CategoryCode"`
	TaxPointDate *Date  `xml:"ram:TaxPointDate"`
}

// Period is a date span with a start and end timestamp.
type Period struct {
	StartDateTime *DateTime `xml:"ram:StartDateTime"`
	EndDateTime   *DateTime `xml:"ram:EndDateTime"`
}

// PaymentTerms describe when and how payment is due.
type PaymentTerms struct {
	Description          []Text    `xml:"ram:Description"`
	DueDateDateTime      *DateTime `xml:"ram:DueDateDateTime"`
	DirectDebitMandateID []*ID     `xml:"ram:DirectDebitMandateID"`
}

// MonetarySummation aggregates the settlement totals. Only the fields
// consulted by the converter are bound.
type MonetarySummation struct {
	GrandTotalAmount []Amount `xml:"ram:GrandTotalAmount"`
	DuePayableAmount []Amount `xml:"ram:DuePayableAmount"`
}

// AccountingAccount is a receivable accounting account reference.
type AccountingAccount struct {
	ID *ID `xml:"ram:ID"`
}

// PaymentMeans describes one way the invoice can be settled.
type PaymentMeans struct {
	TypeCode         string               `xml:"ram:TypeCode"`
	Information      []Text               `xml:"ram:Information"`
	FinancialCard    *FinancialCard       `xml:"ram:ApplicableTradeSettlementFinancialCard"`
	PayeeAccount     *CreditorAccount     `xml:"ram:PayeePartyCreditorFinancialAccount"`
	PayeeInstitution *CreditorInstitution `xml:"ram:PayeeSpecifiedCreditorFinancialInstitution"`
}

// FinancialCard is a settlement financial card.
type FinancialCard struct {
	ID             *ID   `xml:"ram:ID"`
	CardholderName *Text `xml:"ram:CardholderName"`
}

// CreditorAccount is the payee's financial account.
type CreditorAccount struct {
	IBANID      *ID   `xml:"ram:IBANID"`
	AccountName *Text `xml:"ram:AccountName"`
}

// CreditorInstitution is the payee's financial institution.
type CreditorInstitution struct {
	BICID *ID `xml:"ram:BICID"`
}

// TradeParty is a participant in the transaction: seller, buyer, payee,
// ship-to or tax representative.
type TradeParty struct {
	ID                         []*ID                     `xml:"ram:ID"`
	GlobalID                   []*ID                     `xml:"ram:GlobalID"`
	Name                       *Text                     `xml:"ram:Name"`
	Description                []Text                    `xml:"ram:Description"`
	SpecifiedLegalOrganization *LegalOrganization        `xml:"ram:SpecifiedLegalOrganization"`
	DefinedTradeContact        []*TradeContact           `xml:"ram:DefinedTradeContact"`
	PostalTradeAddress         *TradeAddress             `xml:"ram:PostalTradeAddress"`
	URIUniversalCommunication  []*UniversalCommunication `xml:"ram:URIUniversalCommunication"`
	SpecifiedTaxRegistration   []*TaxRegistration        `xml:"ram:SpecifiedTaxRegistration"`
}

// LegalOrganization is a party's registered legal organization.
type LegalOrganization struct {
	ID                  *ID   `xml:"ram:ID"`
	TradingBusinessName *Text `xml:"ram:TradingBusinessName"`
}

// TradeContact is a named contact for a party.
type TradeContact struct {
	PersonName                      *Text                   `xml:"ram:PersonName"`
	DepartmentName                  *Text                   `xml:"ram:DepartmentName"`
	TelephoneUniversalCommunication *UniversalCommunication `xml:"ram:TelephoneUniversalCommunication"`
	EmailURIUniversalCommunication  *UniversalCommunication `xml:"ram:EmailURIUniversalCommunication"`
}

// UniversalCommunication is a communication channel: either a URI or a
// complete phone number.
type UniversalCommunication struct {
	URIID          *ID   `xml:"ram:URIID"`
	CompleteNumber *Text `xml:"ram:CompleteNumber"`
}

// TradeAddress is a postal address.
type TradeAddress struct {
	PostcodeCode           string `xml:"ram:PostcodeCode"`
	LineOne                string `xml:"ram:LineOne"`
	LineTwo                string `xml:"ram:LineTwo"`
	LineThree              string `xml:"ram:LineThree"`
	CityName               string `xml:"ram:CityName"`
	CountryID              string `xml:"ram:CountryID"`
	CountrySubDivisionName []Text `xml:"ram:CountrySubDivisionName"`
}

// TaxRegistration is a party's tax registration, identified by its company ID.
type TaxRegistration struct {
	ID *ID `xml:"ram:ID"`
}

// ReferencedDocument links the invoice to another document by its issuer
// assigned identifier. ReferenceTypeCode qualifies the identifier's scheme;
// TypeCode classifies the document itself.
type ReferencedDocument struct {
	IssuerAssignedID       *ID                `xml:"ram:IssuerAssignedID"`
	URIID                  *ID                `xml:"ram:URIID"`
	TypeCode               string             `xml:"ram:TypeCode"`
	ReferenceTypeCode      string             `xml:"ram:ReferenceTypeCode"`
	Name                   []Text             `xml:"ram:Name"`
	AttachmentBinaryObject []BinaryObject     `xml:"ram:AttachmentBinaryObject"`
	FormattedIssueDateTime *FormattedDateTime `xml:"ram:FormattedIssueDateTime"`
}

// ID is an identifier together with its scheme qualifiers.
type ID struct {
	SchemeID         *string `xml:"schemeID,attr"`
	SchemeName       *string `xml:"schemeName,attr"`
	SchemeAgencyID   *string `xml:"schemeAgencyID,attr"`
	SchemeAgencyName *string `xml:"schemeAgencyName,attr"`
	SchemeVersionID  *string `xml:"schemeVersionID,attr"`
	SchemeDataURI    *string `xml:"schemeDataURI,attr"`
	SchemeURI        *string `xml:"schemeURI,attr"`
	Value            string  `xml:",chardata"`
}

// Text is a language-qualified text value.
type Text struct {
	LanguageID       *string `xml:"languageID,attr"`
	LanguageLocaleID *string `xml:"languageLocaleID,attr"`
	Value            string  `xml:",chardata"`
}

// DateTime wraps a udt:DateTimeString with its format code.
type DateTime struct {
	DateTimeString *FormattedValue `xml:"udt:DateTimeString"`
}

// FormattedDateTime wraps a qdt:DateTimeString with its format code.
type FormattedDateTime struct {
	DateTimeString *FormattedValue `xml:"qdt:DateTimeString"`
}

// Date wraps a udt:DateString with its format code.
type Date struct {
	DateString *FormattedValue `xml:"udt:DateString"`
}

// FormattedValue is a string value qualified by a format code.
type FormattedValue struct {
	Format string `xml:"format,attr"`
	Value  string `xml:",chardata"`
}

// Amount is a monetary amount with an optional currency.
type Amount struct {
	CurrencyID *string `xml:"currencyID,attr"`
	Value      string  `xml:",chardata"`
}

// BinaryObject is an embedded binary attachment.
type BinaryObject struct {
	MimeCode *string `xml:"mimeCode,attr"`
	Filename *string `xml:"filename,attr"`
	Value    string  `xml:",chardata"`
}

// Val returns the identifier value, or the empty string if the identifier
// is absent.
func (id *ID) Val() string {
	if id == nil {
		return ""
	}
	return id.Value
}

// Val returns the text value, or the empty string if the text is absent.
func (t *Text) Val() string {
	if t == nil {
		return ""
	}
	return t.Value
}

// Val returns the raw date-time string, or the empty string if absent.
func (dt *DateTime) Val() string {
	if dt == nil || dt.DateTimeString == nil {
		return ""
	}
	return dt.DateTimeString.Value
}

// Val returns the raw date-time string, or the empty string if absent.
func (fdt *FormattedDateTime) Val() string {
	if fdt == nil || fdt.DateTimeString == nil {
		return ""
	}
	return fdt.DateTimeString.Value
}

// Val returns the raw date string, or the empty string if absent.
func (d *Date) Val() string {
	if d == nil || d.DateString == nil {
		return ""
	}
	return d.DateString.Value
}

// Validate checks that the document carries the mandatory skeleton the
// converter depends on. Field-level content is not validated; absent
// optional data is handled downstream.
func (d *Document) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.ExchangedDocument, validation.Required),
		validation.Field(&d.SupplyChainTradeTransaction, validation.Required),
	)
}

// Validate checks that the three header trade sections are present.
func (t *Transaction) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.ApplicableHeaderTradeAgreement, validation.Required),
		validation.Field(&t.ApplicableHeaderTradeDelivery, validation.Required),
		validation.Field(&t.ApplicableHeaderTradeSettlement, validation.Required),
	)
}
