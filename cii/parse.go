package cii

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/invopop/xmlctx"
)

// Cross Industry Invoice D16B namespaces.
const (
	NamespaceRSM = "urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100"
	NamespaceRAM = "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100"
	NamespaceUDT = "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100"
	NamespaceQDT = "urn:un:unece:uncefact:data:standard:QualifiedDataType:100"
)

// ErrUnknownDocumentType is returned when the root element of the input is
// not a Cross Industry Invoice.
var ErrUnknownDocumentType = fmt.Errorf("unknown document type")

// Parse reads a raw Cross Industry Invoice document into the typed tree.
// The returned document has been checked for the mandatory structural
// skeleton; optional content is bound as-is.
func Parse(data []byte) (*Document, error) {
	ns, err := extractRootNamespace(data)
	if err != nil {
		return nil, err
	}
	if ns != NamespaceRSM {
		return nil, ErrUnknownDocumentType
	}

	doc := new(Document)
	if err := xmlctx.Unmarshal(data, doc, xmlctx.WithNamespaces(map[string]string{
		"rsm": NamespaceRSM,
		"ram": NamespaceRAM,
		"udt": NamespaceUDT,
		"qdt": NamespaceQDT,
	})); err != nil {
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

func extractRootNamespace(data []byte) (string, error) {
	dc := xml.NewDecoder(bytes.NewReader(data))
	for {
		tk, err := dc.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("error parsing XML: %w", err)
		}
		switch t := tk.(type) {
		case xml.StartElement:
			return t.Name.Space, nil
		}
	}
	return "", ErrUnknownDocumentType
}
