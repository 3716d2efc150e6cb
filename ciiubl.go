// Package ciiubl converts UN/CEFACT Cross Industry Invoice (CII) documents
// into UBL 2.1 invoices for the Peppol BIS Billing profile.
//
// The conversion is a pure structural relocation: values are read out of
// the parsed CII tree and placed into a freshly built UBL tree, with
// missing or empty source fields silently omitted from the output. The
// engine does not re-validate business semantics and does not guarantee
// the output satisfies the target schema's mandatory-field rules.
package ciiubl

import (
	"encoding/xml"
	"log/slog"
	"strings"

	"github.com/invopop/gobl/num"

	"github.com/invopop/cii.ubl/cii"
)

// Version is the version of UBL documents that will be generated
// by this package.
const Version = "2.1"

// Convert parses a raw CII document and maps it onto a UBL invoice.
// Diagnostics are appended to errs; the result is nil when parsing fails
// or when the document turns out to be a credit note, which is detected
// by a negative due payable amount and reported as unsupported. The two
// failure modes are told apart through the recorded diagnostics.
func Convert(data []byte, errs *ErrorList, opts ...Option) *Invoice {
	o := buildOptions(opts)

	doc, err := cii.Parse(data)
	if err != nil {
		errs.AddError("parsing CII document", err)
		return nil
	}

	if due := duePayableAmount(doc); due != nil && due.Compare(num.MakeAmount(0, 0)) < 0 {
		slog.Info("credit note conversion is not yet supported")
		errs.Noticef("credit note conversion is not yet supported")
		return nil
	}

	return ublInvoice(doc, o)
}

// duePayableAmount reads the first due payable amount from the settlement
// monetary summation. Nil when the summation is absent, empty or carries
// an unparsable value.
func duePayableAmount(doc *cii.Document) *num.Amount {
	ms := doc.SupplyChainTradeTransaction.ApplicableHeaderTradeSettlement.MonetarySummation
	if ms == nil || len(ms.DuePayableAmount) == 0 {
		return nil
	}
	a, err := num.AmountFromString(normalizeNumericString(ms.DuePayableAmount[0].Value))
	if err != nil {
		return nil
	}
	return &a
}

// normalizeNumericString cleans up numeric strings to ensure they can be parsed correctly.
// It handles:
// - Leading/trailing whitespace (e.g., " 123.45 " -> "123.45")
// - Numbers starting with decimal point (e.g., ".07" -> "0.07")
func normalizeNumericString(s string) string {
	// Trim whitespace
	s = strings.TrimSpace(s)

	// Add leading zero if string starts with decimal point
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	return s
}

// Bytes returns the raw XML of the UBL document including
// the XML Header.
func Bytes(in *Invoice) ([]byte, error) {
	b, err := xml.MarshalIndent(in, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), b...), nil
}
