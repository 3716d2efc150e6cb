package ciiubl

import (
	"github.com/invopop/cii.ubl/cii"
)

// TypeCodeOriginator is the referenced-document type code for tender or lot
// references, which route to cac:OriginatorDocumentReference instead of
// cac:AdditionalDocumentReference.
const TypeCodeOriginator = "50"

// Reference represents a document reference
type Reference struct {
	ID                  *IDType     `xml:"cbc:ID"`
	IssueDate           string      `xml:"cbc:IssueDate,omitempty"`
	DocumentDescription []Name      `xml:"cbc:DocumentDescription,omitempty"`
	Attachment          *Attachment `xml:"cac:Attachment,omitempty"`
}

// OrderReference represents a reference to the buyer and seller orders
type OrderReference struct {
	ID           *IDType `xml:"cbc:ID,omitempty"`
	SalesOrderID *IDType `xml:"cbc:SalesOrderID,omitempty"`
}

// BillingReference represents a reference to a preceding invoice
type BillingReference struct {
	InvoiceDocumentReference *Reference `xml:"cac:InvoiceDocumentReference,omitempty"`
}

// ProjectReference represents a reference to a procuring project
type ProjectReference struct {
	ID IDType `xml:"cbc:ID"`
}

// Period represents a date span
type Period struct {
	StartDate string `xml:"cbc:StartDate,omitempty"`
	EndDate   string `xml:"cbc:EndDate,omitempty"`
}

// Attachment represents an attached document, either embedded or external
type Attachment struct {
	EmbeddedDocumentBinaryObject *BinaryObject      `xml:"cbc:EmbeddedDocumentBinaryObject,omitempty"`
	ExternalReference            *ExternalReference `xml:"cac:ExternalReference,omitempty"`
}

// BinaryObject represents an embedded base64 document payload
type BinaryObject struct {
	MimeCode *string `xml:"mimeCode,attr"`
	Filename *string `xml:"filename,attr"`
	Value    string  `xml:",chardata"`
}

// ExternalReference represents a link to an externally held document
type ExternalReference struct {
	URI string `xml:"cbc:URI"`
}

// newReference maps a referenced document into a UBL document reference.
// The issuer assigned ID gates the whole mapping: without it no reference
// is emitted, regardless of any other populated field. Everything past the
// gate is best effort.
func newReference(rd *cii.ReferencedDocument, layout string) *Reference {
	if rd == nil {
		return nil
	}
	id := rd.IssuerAssignedID.Val()
	if id == "" {
		return nil
	}

	ref := &Reference{
		ID: &IDType{Value: id},
	}
	if rd.ReferenceTypeCode != "" {
		ref.ID.SchemeID = &rd.ReferenceTypeCode
	}

	ref.IssueDate = formatDate(parseCompactDate(rd.FormattedIssueDateTime.Val(), layout))

	for i := range rd.Name {
		ref.DocumentDescription = append(ref.DocumentDescription, *copyName(&rd.Name[i]))
	}

	// CII permits at most one attachment in this context; only the first
	// entry is considered.
	if len(rd.AttachmentBinaryObject) > 0 {
		bin := rd.AttachmentBinaryObject[0]
		att := &Attachment{
			EmbeddedDocumentBinaryObject: &BinaryObject{
				MimeCode: bin.MimeCode,
				Filename: bin.Filename,
				Value:    bin.Value,
			},
		}
		if uri := rd.URIID.Val(); uri != "" {
			att.ExternalReference = &ExternalReference{URI: uri}
		}
		ref.Attachment = att
	}

	return ref
}

// partitionReferences splits the agreement's additional referenced documents
// into originator references (type code "50") and everything else. Every
// mappable element lands in exactly one of the two lists, in source order.
func partitionReferences(docs []*cii.ReferencedDocument, layout string) (originator, additional []Reference) {
	for _, rd := range docs {
		ref := newReference(rd, layout)
		if ref == nil {
			continue
		}
		if rd.TypeCode == TypeCodeOriginator {
			originator = append(originator, *ref)
		} else {
			additional = append(additional, *ref)
		}
	}
	return originator, additional
}
