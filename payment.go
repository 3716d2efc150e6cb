package ciiubl

import (
	"github.com/invopop/gobl/cal"

	"github.com/invopop/cii.ubl/cii"
)

// CardNetworkIDPlaceholder fills cbc:NetworkID on card accounts. CII has no
// equivalent field and UBL requires the element when a card is present.
const CardNetworkIDPlaceholder = "mapped-from-cii"

// PaymentMeans represents the means of payment
type PaymentMeans struct {
	PaymentMeansCode      PaymentMeansCode  `xml:"cbc:PaymentMeansCode"`
	PaymentID             []string          `xml:"cbc:PaymentID,omitempty"`
	CardAccount           *CardAccount      `xml:"cac:CardAccount,omitempty"`
	PayeeFinancialAccount *FinancialAccount `xml:"cac:PayeeFinancialAccount,omitempty"`
	PaymentMandate        *PaymentMandate   `xml:"cac:PaymentMandate,omitempty"`
}

// PaymentMeansCode represents a payment means code with an optional
// human-readable name
type PaymentMeansCode struct {
	Name  *string `xml:"name,attr"`
	Value string  `xml:",chardata"`
}

// PaymentMandate represents a payment mandate
type PaymentMandate struct {
	ID                    *IDType           `xml:"cbc:ID,omitempty"`
	PayerFinancialAccount *FinancialAccount `xml:"cac:PayerFinancialAccount,omitempty"`
}

// CardAccount represents a card account
type CardAccount struct {
	PrimaryAccountNumberID *IDType `xml:"cbc:PrimaryAccountNumberID,omitempty"`
	NetworkID              string  `xml:"cbc:NetworkID"`
	HolderName             *string `xml:"cbc:HolderName,omitempty"`
}

// FinancialAccount represents a financial account
type FinancialAccount struct {
	ID                         *IDType `xml:"cbc:ID,omitempty"`
	Name                       *Name   `xml:"cbc:Name,omitempty"`
	FinancialInstitutionBranch *Branch `xml:"cac:FinancialInstitutionBranch,omitempty"`
}

// Branch represents a branch of a financial institution
type Branch struct {
	ID *IDType `xml:"cbc:ID,omitempty"`
}

// addPaymentMeans emits one cac:PaymentMeans entry per source payment means
// group. The settlement-level payment references live outside the groups,
// so every entry carries the identical list.
func (ui *Invoice) addPaymentMeans(st *cii.Settlement, o *options) {
	for _, pm := range st.SpecifiedTradeSettlementPaymentMeans {
		entry := PaymentMeans{
			PaymentMeansCode: PaymentMeansCode{Value: pm.TypeCode},
		}
		if len(pm.Information) > 0 {
			if v := pm.Information[0].Value; v != "" {
				entry.PaymentMeansCode.Name = &v
			}
		}

		for i := range st.PaymentReference {
			entry.PaymentID = append(entry.PaymentID, st.PaymentReference[i].Value)
		}

		if card := pm.FinancialCard; card != nil {
			ca := &CardAccount{
				PrimaryAccountNumberID: copyID(card.ID),
				NetworkID:              CardNetworkIDPlaceholder,
			}
			if v := card.CardholderName.Val(); v != "" {
				ca.HolderName = &v
			}
			entry.CardAccount = ca
		}

		if pm.PayeeAccount != nil || pm.PayeeInstitution != nil {
			fa := new(FinancialAccount)
			if acc := pm.PayeeAccount; acc != nil {
				fa.ID = copyID(acc.IBANID)
				fa.Name = copyName(acc.AccountName)
			}
			if inst := pm.PayeeInstitution; inst != nil {
				fa.FinancialInstitutionBranch = &Branch{ID: copyID(inst.BICID)}
			}
			entry.PayeeFinancialAccount = fa
		}

		if mandate := newPaymentMandate(st); mandate != nil {
			entry.PaymentMandate = mandate
		}

		ui.PaymentMeans = append(ui.PaymentMeans, entry)
	}
}

// newPaymentMandate builds a payment mandate from the settlement-wide
// direct debit mandate and creditor reference. Nil when neither
// contributes a value.
func newPaymentMandate(st *cii.Settlement) *PaymentMandate {
	mandate := new(PaymentMandate)
	useMandate := false

	if id := firstMandateID(st); id != nil {
		mandate.ID = id
		useMandate = true
	}

	if st.CreditorReferenceID != nil {
		mandate.PayerFinancialAccount = &FinancialAccount{
			ID: copyID(st.CreditorReferenceID),
		}
		useMandate = true
	}

	if !useMandate {
		return nil
	}
	return mandate
}

// firstMandateID scans the settlement payment terms in order and returns
// the first direct debit mandate identifier found.
func firstMandateID(st *cii.Settlement) *IDType {
	for _, terms := range st.SpecifiedTradePaymentTerms {
		if len(terms.DirectDebitMandateID) > 0 {
			return copyID(terms.DirectDebitMandateID[0])
		}
	}
	return nil
}

// firstDueDate scans the settlement payment terms in order and returns the
// first parsable due date. The same payment terms list also feeds
// firstMandateID; the two queries stay separate so each precedence rule
// can be tested on its own.
func firstDueDate(st *cii.Settlement, layout string) *cal.Date {
	for _, terms := range st.SpecifiedTradePaymentTerms {
		if d := parseCompactDate(terms.DueDateDateTime.Val(), layout); d != nil {
			return d
		}
	}
	return nil
}
