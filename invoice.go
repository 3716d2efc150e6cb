package ciiubl

import (
	"encoding/xml"
	"strings"

	"github.com/invopop/gobl/cal"

	"github.com/invopop/cii.ubl/cii"
)

// Main UBL Invoice Namespace
const (
	NamespaceUBLInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
)

// Schema location constant
const (
	SchemaLocationInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2 http://docs.oasis-open.org/ubl/os-UBL-2.1/xsd/maindoc/UBL-Invoice-2.1.xsd"
)

// Invoice represents the root element of a UBL Invoice.
type Invoice struct {
	// Attributes
	XMLName        xml.Name
	CACNamespace   string `xml:"xmlns:cac,attr"`
	CBCNamespace   string `xml:"xmlns:cbc,attr"`
	QDTNamespace   string `xml:"xmlns:qdt,attr"`
	UDTNamespace   string `xml:"xmlns:udt,attr"`
	CCTSNamespace  string `xml:"xmlns:ccts,attr"`
	UBLNamespace   string `xml:"xmlns,attr"`
	XSINamespace   string `xml:"xmlns:xsi,attr"`
	SchemaLocation string `xml:"xsi:schemaLocation,attr"`

	UBLVersionID    string `xml:"cbc:UBLVersionID,omitempty"`
	CustomizationID string `xml:"cbc:CustomizationID,omitempty"`
	ProfileID       string `xml:"cbc:ProfileID,omitempty"`
	ID              string `xml:"cbc:ID"`
	IssueDate       string `xml:"cbc:IssueDate"`
	InvoiceTypeCode string `xml:"cbc:InvoiceTypeCode,omitempty"`

	Note                        []string            `xml:"cbc:Note,omitempty"`
	TaxPointDate                string              `xml:"cbc:TaxPointDate,omitempty"`
	DocumentCurrencyCode        string              `xml:"cbc:DocumentCurrencyCode,omitempty"`
	TaxCurrencyCode             string              `xml:"cbc:TaxCurrencyCode,omitempty"`
	AccountingCost              string              `xml:"cbc:AccountingCost,omitempty"`
	BuyerReference              string              `xml:"cbc:BuyerReference,omitempty"`
	InvoicePeriod               []Period            `xml:"cac:InvoicePeriod,omitempty"`
	OrderReference              *OrderReference     `xml:"cac:OrderReference,omitempty"`
	BillingReference            []*BillingReference `xml:"cac:BillingReference,omitempty"`
	DespatchDocumentReference   []Reference         `xml:"cac:DespatchDocumentReference,omitempty"`
	ReceiptDocumentReference    []Reference         `xml:"cac:ReceiptDocumentReference,omitempty"`
	OriginatorDocumentReference []Reference         `xml:"cac:OriginatorDocumentReference,omitempty"`
	ContractDocumentReference   []Reference         `xml:"cac:ContractDocumentReference,omitempty"`
	AdditionalDocumentReference []Reference         `xml:"cac:AdditionalDocumentReference,omitempty"`
	ProjectReference            []ProjectReference  `xml:"cac:ProjectReference,omitempty"`
	AccountingSupplierParty     SupplierParty       `xml:"cac:AccountingSupplierParty"`
	AccountingCustomerParty     CustomerParty       `xml:"cac:AccountingCustomerParty"`
	PayeeParty                  *Party              `xml:"cac:PayeeParty,omitempty"`
	TaxRepresentativeParty      *Party              `xml:"cac:TaxRepresentativeParty,omitempty"`
	Delivery                    []*Delivery         `xml:"cac:Delivery,omitempty"`
	PaymentMeans                []PaymentMeans      `xml:"cac:PaymentMeans,omitempty"`
}

// Delivery represents the delivery of the invoiced goods
type Delivery struct {
	ActualDeliveryDate string            `xml:"cbc:ActualDeliveryDate,omitempty"`
	DeliveryLocation   *DeliveryLocation `xml:"cac:DeliveryLocation,omitempty"`
	DeliveryParty      *Party            `xml:"cac:DeliveryParty,omitempty"`
}

// DeliveryLocation represents the location the goods were delivered to
type DeliveryLocation struct {
	ID      *IDType        `xml:"cbc:ID,omitempty"`
	Address *PostalAddress `xml:"cac:Address,omitempty"`
}

// ublInvoice assembles the UBL invoice from the parsed CII header
// sections: context, document metadata, agreement, delivery, settlement.
func ublInvoice(doc *cii.Document, o *options) *Invoice {
	ed := doc.ExchangedDocument
	tx := doc.SupplyChainTradeTransaction
	agreement := tx.ApplicableHeaderTradeAgreement
	delivery := tx.ApplicableHeaderTradeDelivery
	settlement := tx.ApplicableHeaderTradeSettlement

	out := &Invoice{
		XMLName:         xml.Name{Local: "Invoice"},
		CACNamespace:    NamespaceCAC,
		CBCNamespace:    NamespaceCBC,
		QDTNamespace:    NamespaceQDT,
		UDTNamespace:    NamespaceUDT,
		UBLNamespace:    NamespaceUBLInvoice,
		CCTSNamespace:   NamespaceCCTS,
		XSINamespace:    NamespaceXSI,
		SchemaLocation:  SchemaLocationInvoice,
		UBLVersionID:    Version,
		CustomizationID: o.context.CustomizationID,
		ProfileID:       o.context.ProfileID,
		ID:              ed.ID.Val(),
		InvoiceTypeCode: ed.TypeCode,
	}

	// The issue timestamp of the document wins; a document without one
	// borrows the first due date found in the settlement payment terms.
	issueDate := parseCompactDate(ed.IssueDateTime.Val(), o.dateLayout)
	if issueDate == nil {
		issueDate = firstDueDate(settlement, o.dateLayout)
	}
	out.IssueDate = formatDate(issueDate)

	// One UBL note per source note group, fragments joined by newlines.
	for _, note := range ed.IncludedNote {
		out.Note = append(out.Note, noteText(note))
	}

	out.TaxPointDate = formatDate(firstTaxPointDate(settlement, o.dateLayout))
	out.DocumentCurrencyCode = settlement.InvoiceCurrencyCode
	out.TaxCurrencyCode = settlement.TaxCurrencyCode
	out.AccountingCost = firstAccountingCost(settlement)
	out.BuyerReference = agreement.BuyerReference.Val()

	out.addPeriod(settlement, o)
	out.addReferences(agreement, delivery, settlement, o)
	out.addParties(agreement, settlement)
	out.addDelivery(delivery, o)
	out.addPaymentMeans(settlement, o)

	return out
}

// noteText joins a note's content fragments into a single string.
func noteText(n cii.Note) string {
	parts := make([]string, 0, len(n.Content))
	for _, c := range n.Content {
		parts = append(parts, c.Value)
	}
	return strings.Join(parts, "\n")
}

// addPeriod emits the invoice period, gated on both ends of the billing
// period being present.
func (ui *Invoice) addPeriod(st *cii.Settlement, o *options) {
	sp := st.BillingSpecifiedPeriod
	if sp == nil || sp.StartDateTime == nil || sp.EndDateTime == nil {
		return
	}
	ui.InvoicePeriod = []Period{{
		StartDate: formatDate(parseCompactDate(sp.StartDateTime.Val(), o.dateLayout)),
		EndDate:   formatDate(parseCompactDate(sp.EndDateTime.Val(), o.dateLayout)),
	}}
}

// addReferences maps the order, billing, despatch, receipt, originator,
// additional, contract and project references.
func (ui *Invoice) addReferences(ag *cii.Agreement, del *cii.Delivery, st *cii.Settlement, o *options) {
	layout := o.dateLayout

	orderRef := new(OrderReference)
	if v := issuerID(ag.BuyerOrderReferencedDocument); v != "" {
		orderRef.ID = &IDType{Value: v}
	}
	if v := issuerID(ag.SellerOrderReferencedDocument); v != "" {
		orderRef.SalesOrderID = &IDType{Value: v}
	}
	if orderRef.ID != nil || orderRef.SalesOrderID != nil {
		ui.OrderReference = orderRef
	}

	if ref := newReference(st.InvoiceReferencedDocument, layout); ref != nil {
		ui.BillingReference = append(ui.BillingReference, &BillingReference{
			InvoiceDocumentReference: ref,
		})
	}

	if ref := newReference(del.DespatchAdviceReferencedDocument, layout); ref != nil {
		ui.DespatchDocumentReference = append(ui.DespatchDocumentReference, *ref)
	}
	if ref := newReference(del.ReceivingAdviceReferencedDocument, layout); ref != nil {
		ui.ReceiptDocumentReference = append(ui.ReceiptDocumentReference, *ref)
	}

	ui.OriginatorDocumentReference, ui.AdditionalDocumentReference = partitionReferences(ag.AdditionalReferencedDocument, layout)

	if ref := newReference(ag.ContractReferencedDocument, layout); ref != nil {
		ui.ContractDocumentReference = append(ui.ContractDocumentReference, *ref)
	}

	if pp := ag.SpecifiedProcuringProject; pp != nil {
		if v := pp.ID.Val(); v != "" {
			ui.ProjectReference = []ProjectReference{{ID: IDType{Value: v}}}
		}
	}
}

// addParties maps the four trade parties. The supplier and customer
// containers exist on every invoice; their inner party stays nil when the
// source names none.
func (ui *Invoice) addParties(ag *cii.Agreement, st *cii.Settlement) {
	ui.AccountingSupplierParty.Party = newFullParty(ag.SellerTradeParty)
	ui.AccountingCustomerParty.Party = newFullParty(ag.BuyerTradeParty)
	ui.PayeeParty = newFullParty(st.PayeeTradeParty)
	ui.TaxRepresentativeParty = newFullParty(ag.SellerTaxRepresentativeTradeParty)
}

// newFullParty composes the base party mapping with the repeated source
// groups: one tax scheme per registration, an optional legal entity and
// an optional contact.
func newFullParty(tp *cii.TradeParty) *Party {
	p := newParty(tp)
	if p == nil {
		return nil
	}
	for _, reg := range tp.SpecifiedTaxRegistration {
		p.PartyTaxScheme = append(p.PartyTaxScheme, newPartyTaxScheme(reg))
	}
	if le := newLegalEntity(tp); le != nil {
		p.PartyLegalEntity = le
	}
	if c := newContact(tp); c != nil {
		p.Contact = c
	}
	return p
}

// addDelivery emits a delivery entry when a ship-to party exists. The
// delivery location is attached only when it carries an id or an address,
// and the delivery party carries nothing but the ship-to name.
func (ui *Invoice) addDelivery(del *cii.Delivery, o *options) {
	shipTo := del.ShipToTradeParty
	if shipTo == nil {
		return
	}

	d := new(Delivery)

	if sce := del.ActualDeliverySupplyChainEvent; sce != nil {
		d.ActualDeliveryDate = formatDate(parseCompactDate(sce.OccurrenceDateTime.Val(), o.dateLayout))
	}

	loc := new(DeliveryLocation)
	useLocation := false
	if id := partyID(shipTo); id != nil {
		loc.ID = id
		useLocation = true
	}
	if shipTo.PostalTradeAddress != nil {
		loc.Address = newAddress(shipTo.PostalTradeAddress)
		useLocation = true
	}
	if useLocation {
		d.DeliveryLocation = loc
	}

	if shipTo.Name != nil {
		d.DeliveryParty = &Party{
			PartyName: &PartyName{Name: *copyName(shipTo.Name)},
		}
	}

	ui.Delivery = append(ui.Delivery, d)
}

// issuerID returns the issuer assigned identifier of a referenced
// document, or the empty string when absent.
func issuerID(rd *cii.ReferencedDocument) string {
	if rd == nil {
		return ""
	}
	return rd.IssuerAssignedID.Val()
}

// firstTaxPointDate scans the applicable trade taxes in order and returns
// the first parsable tax point date.
func firstTaxPointDate(st *cii.Settlement, layout string) *cal.Date {
	for _, tt := range st.ApplicableTradeTax {
		if d := parseCompactDate(tt.TaxPointDate.Val(), layout); d != nil {
			return d
		}
	}
	return nil
}

// firstAccountingCost scans the receivable accounting accounts in order
// and returns the first non-empty identifier.
func firstAccountingCost(st *cii.Settlement) string {
	for _, acc := range st.ReceivableAccountingAccount {
		if v := acc.ID.Val(); v != "" {
			return v
		}
	}
	return ""
}
