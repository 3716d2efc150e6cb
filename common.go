package ciiubl

import (
	"strings"
	"time"

	"github.com/invopop/gobl/cal"

	"github.com/invopop/cii.ubl/cii"
)

// UBL schema constants
const (
	NamespaceCBC  = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
	NamespaceCAC  = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NamespaceQDT  = "urn:oasis:names:specification:ubl:schema:xsd:QualifiedDataTypes-2"
	NamespaceUDT  = "urn:oasis:names:specification:ubl:schema:xsd:UnqualifiedDataTypes-2"
	NamespaceCCTS = "urn:un:unece:uncefact:documentation:2"
	NamespaceXSI  = "http://www.w3.org/2001/XMLSchema-instance"
)

// IDType represents an identifier element together with the complete set of
// scheme qualifiers defined by the CCTS identifier type. It serves every
// identifier-valued UBL element produced by this package: endpoint, party,
// company, payment and account identifiers all share this shape.
type IDType struct {
	SchemeID         *string `xml:"schemeID,attr"`
	SchemeName       *string `xml:"schemeName,attr"`
	SchemeAgencyID   *string `xml:"schemeAgencyID,attr"`
	SchemeAgencyName *string `xml:"schemeAgencyName,attr"`
	SchemeVersionID  *string `xml:"schemeVersionID,attr"`
	SchemeDataURI    *string `xml:"schemeDataURI,attr"`
	SchemeURI        *string `xml:"schemeURI,attr"`
	Value            string  `xml:",chardata"`
}

// Name represents a language-qualified text element.
type Name struct {
	LanguageID       *string `xml:"languageID,attr"`
	LanguageLocaleID *string `xml:"languageLocaleID,attr"`
	Value            string  `xml:",chardata"`
}

// Amount represents a monetary amount
type Amount struct {
	CurrencyID *string `xml:"currencyID,attr"`
	Value      string  `xml:",chardata"`
}

// copyID copies an identifier and every scheme qualifier into the UBL shape.
// All facets travel together; a partial copy is a defect.
func copyID(id *cii.ID) *IDType {
	if id == nil {
		return nil
	}
	return &IDType{
		Value:            id.Value,
		SchemeID:         id.SchemeID,
		SchemeName:       id.SchemeName,
		SchemeAgencyID:   id.SchemeAgencyID,
		SchemeAgencyName: id.SchemeAgencyName,
		SchemeVersionID:  id.SchemeVersionID,
		SchemeDataURI:    id.SchemeDataURI,
		SchemeURI:        id.SchemeURI,
	}
}

// copyName copies a language-qualified text into the UBL shape.
func copyName(t *cii.Text) *Name {
	if t == nil {
		return nil
	}
	return &Name{
		Value:            t.Value,
		LanguageID:       t.LanguageID,
		LanguageLocaleID: t.LanguageLocaleID,
	}
}

// DefaultDateLayout is the compact date layout used to interpret CII date
// strings: a two digit year followed by month and day. Sources that emit
// format code 102 dates need an explicit eight digit layout instead, see
// WithDateLayout.
const DefaultDateLayout = "060102"

// parseCompactDate interprets a compact date string using the given layout.
// Empty, malformed or non-matching input yields nil rather than an error;
// a document with an unparsable date is still converted, minus that date.
func parseCompactDate(s, layout string) *cal.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return nil
	}
	d := cal.MakeDate(t.Year(), t.Month(), t.Day())
	return &d
}

// formatDate renders a calendar date as a UBL date string.
func formatDate(d *cal.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
