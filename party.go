package ciiubl

import (
	"github.com/invopop/cii.ubl/cii"
)

// TaxSchemeVAT is the tax scheme code for VAT
const TaxSchemeVAT = "VAT"

// SupplierParty represents the supplier party in a transaction
type SupplierParty struct {
	Party *Party `xml:"cac:Party,omitempty"`
}

// CustomerParty represents the customer party in a transaction
type CustomerParty struct {
	Party *Party `xml:"cac:Party,omitempty"`
}

// Party represents a party involved in a transaction
type Party struct {
	EndpointID          *IDType           `xml:"cbc:EndpointID,omitempty"`
	PartyIdentification []Identification  `xml:"cac:PartyIdentification,omitempty"`
	PartyName           *PartyName        `xml:"cac:PartyName,omitempty"`
	PostalAddress       *PostalAddress    `xml:"cac:PostalAddress,omitempty"`
	PartyTaxScheme      []PartyTaxScheme  `xml:"cac:PartyTaxScheme,omitempty"`
	PartyLegalEntity    *PartyLegalEntity `xml:"cac:PartyLegalEntity,omitempty"`
	Contact             *Contact          `xml:"cac:Contact,omitempty"`
}

// Identification represents an identification
type Identification struct {
	ID *IDType `xml:"cbc:ID"`
}

// PartyName represents the name of a party
type PartyName struct {
	Name Name `xml:"cbc:Name"`
}

// PostalAddress represents a postal address
type PostalAddress struct {
	StreetName           *string       `xml:"cbc:StreetName,omitempty"`
	AdditionalStreetName *string       `xml:"cbc:AdditionalStreetName,omitempty"`
	CityName             *string       `xml:"cbc:CityName,omitempty"`
	PostalZone           *string       `xml:"cbc:PostalZone,omitempty"`
	CountrySubentity     *string       `xml:"cbc:CountrySubentity,omitempty"`
	AddressLine          []AddressLine `xml:"cac:AddressLine,omitempty"`
	Country              *Country      `xml:"cac:Country,omitempty"`
}

// AddressLine represents a line in an address
type AddressLine struct {
	Line string `xml:"cbc:Line"`
}

// Country represents a country
type Country struct {
	IdentificationCode string `xml:"cbc:IdentificationCode"`
}

// PartyTaxScheme represents a party's tax scheme
type PartyTaxScheme struct {
	CompanyID *IDType    `xml:"cbc:CompanyID,omitempty"`
	TaxScheme *TaxScheme `xml:"cac:TaxScheme"`
}

// TaxScheme represents a tax scheme
type TaxScheme struct {
	ID IDType `xml:"cbc:ID"`
}

// PartyLegalEntity represents the legal entity of a party
type PartyLegalEntity struct {
	RegistrationName *string `xml:"cbc:RegistrationName,omitempty"`
	CompanyID        *IDType `xml:"cbc:CompanyID,omitempty"`
	CompanyLegalForm *string `xml:"cbc:CompanyLegalForm,omitempty"`
}

// Contact represents contact information
type Contact struct {
	Name           *Name   `xml:"cbc:Name,omitempty"`
	Telephone      *string `xml:"cbc:Telephone,omitempty"`
	ElectronicMail *string `xml:"cbc:ElectronicMail,omitempty"`
}

// partyID resolves the identifier of a trade party: the first global
// identifier wins, then the first local one.
func partyID(tp *cii.TradeParty) *IDType {
	if len(tp.GlobalID) > 0 {
		return copyID(tp.GlobalID[0])
	}
	if len(tp.ID) > 0 {
		return copyID(tp.ID[0])
	}
	return nil
}

// newParty maps the direct fields of a trade party: endpoint,
// identification, name and postal address. Tax schemes, legal entity and
// contact come from repeated source groups the caller composes on top.
func newParty(tp *cii.TradeParty) *Party {
	if tp == nil {
		return nil
	}
	p := new(Party)

	if len(tp.URIUniversalCommunication) > 0 {
		p.EndpointID = copyID(tp.URIUniversalCommunication[0].URIID)
	}

	if id := partyID(tp); id != nil {
		p.PartyIdentification = []Identification{{ID: id}}
	}

	if tp.Name != nil {
		p.PartyName = &PartyName{Name: *copyName(tp.Name)}
	}

	if tp.PostalTradeAddress != nil {
		p.PostalAddress = newAddress(tp.PostalTradeAddress)
	}

	return p
}

// newAddress maps a postal trade address. The result is always populated
// for a non-nil input, even when every field is empty.
func newAddress(a *cii.TradeAddress) *PostalAddress {
	addr := new(PostalAddress)

	if a.LineOne != "" {
		addr.StreetName = &a.LineOne
	}
	if a.LineTwo != "" {
		addr.AdditionalStreetName = &a.LineTwo
	}
	if a.LineThree != "" {
		addr.AddressLine = []AddressLine{{Line: a.LineThree}}
	}
	if a.CityName != "" {
		addr.CityName = &a.CityName
	}
	if a.PostcodeCode != "" {
		addr.PostalZone = &a.PostcodeCode
	}
	if len(a.CountrySubDivisionName) > 0 {
		addr.CountrySubentity = &a.CountrySubDivisionName[0].Value
	}
	if a.CountryID != "" {
		addr.Country = &Country{IdentificationCode: a.CountryID}
	}

	return addr
}

// newPartyTaxScheme maps one tax registration. The scheme is fixed to VAT:
// CII carries only VAT registrations in this profile.
func newPartyTaxScheme(reg *cii.TaxRegistration) PartyTaxScheme {
	return PartyTaxScheme{
		CompanyID: copyID(reg.ID),
		TaxScheme: &TaxScheme{
			ID: IDType{Value: TaxSchemeVAT},
		},
	}
}

// newLegalEntity maps the legal organization and the first non-empty
// description of a party. An all-empty legal entity is never emitted.
func newLegalEntity(tp *cii.TradeParty) *PartyLegalEntity {
	le := new(PartyLegalEntity)
	anyValueSet := false

	if slo := tp.SpecifiedLegalOrganization; slo != nil {
		if v := slo.TradingBusinessName.Val(); v != "" {
			le.RegistrationName = &v
		}
		le.CompanyID = copyID(slo.ID)
		anyValueSet = true
	}

	for i := range tp.Description {
		if v := tp.Description[i].Value; v != "" {
			// Use the first only
			le.CompanyLegalForm = &v
			anyValueSet = true
			break
		}
	}

	if !anyValueSet {
		return nil
	}
	return le
}

// newContact maps the first defined trade contact, if any exists. Fields
// of the resulting record may be empty; only the presence of a contact
// entry is gated.
func newContact(tp *cii.TradeParty) *Contact {
	if len(tp.DefinedTradeContact) == 0 {
		return nil
	}
	dtc := tp.DefinedTradeContact[0]

	c := &Contact{
		Name: copyName(dtc.PersonName),
	}
	if tel := dtc.TelephoneUniversalCommunication; tel != nil {
		if v := tel.CompleteNumber.Val(); v != "" {
			c.Telephone = &v
		}
	}
	if email := dtc.EmailURIUniversalCommunication; email != nil {
		if v := email.URIID.Val(); v != "" {
			c.ElectronicMail = &v
		}
	}

	return c
}
