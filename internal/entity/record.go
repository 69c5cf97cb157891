// Package entity holds the typed extraction results delivered to callers.
package entity

import (
	"github.com/docsift/docsift/constants"
	"github.com/docsift/docsift/internal/entities"
)

// Record is any typed extraction result. Records are flat, JSON-serializable,
// and owned by the extraction call that produced them. Absent fields stay at
// their zero value and are omitted from JSON.
type Record interface {
	DocType() constants.DocType
}

// LineItem is one row of a parsed invoice item table. Values stay as the
// strings found in the text; numeric parsing happens only where a comparison
// needs it.
type LineItem struct {
	ItemNumber  string `json:"item_number"`
	Description string `json:"description"`
	UnitPrice   string `json:"unit_price"`
	Quantity    string `json:"quantity"`
	Amount      string `json:"amount"`
}

// InvoiceRecord is the structured result of invoice field extraction.
type InvoiceRecord struct {
	VendorName    string `json:"vendor_name,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
	PONumber      string `json:"po_number,omitempty"`
	OrderNumber   string `json:"order_number,omitempty"`

	TotalAmount string `json:"total_amount,omitempty"`
	Subtotal    string `json:"subtotal,omitempty"`
	TaxAmount   string `json:"tax_amount,omitempty"`
	TaxRate     string `json:"tax_rate,omitempty"`

	InvoiceDate string `json:"invoice_date,omitempty"`
	DueDate     string `json:"due_date,omitempty"`

	VendorEmail   string `json:"vendor_email,omitempty"`
	VendorPhone   string `json:"vendor_phone,omitempty"`
	VendorAddress string `json:"vendor_address,omitempty"`

	PaymentTerms  string `json:"payment_terms,omitempty"`
	DiscountTerms string `json:"discount_terms,omitempty"`

	LineItems []LineItem `json:"line_items"`

	CurrencyDetected string  `json:"currency_detected"`
	ConfidenceScore  float64 `json:"confidence_score"`
}

func (*InvoiceRecord) DocType() constants.DocType { return constants.DocTypeInvoice }

// ContractRecord is the structured result of contract field extraction.
type ContractRecord struct {
	Parties        []string `json:"parties,omitempty"`
	Dates          []string `json:"dates,omitempty"`
	EffectiveDate  string   `json:"effective_date,omitempty"`
	ExpirationDate string   `json:"expiration_date,omitempty"`
	ContractValue  string   `json:"contract_value,omitempty"`
	PaymentTerms   string   `json:"payment_terms,omitempty"`
	ContractType   string   `json:"contract_type"`
}

func (*ContractRecord) DocType() constants.DocType { return constants.DocTypeContract }

// ResumeRecord is the structured result of resume field extraction.
type ResumeRecord struct {
	CandidateName     string   `json:"candidate_name,omitempty"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	Education         []string `json:"education,omitempty"`
	ExperienceYears   *int     `json:"experience_years,omitempty"`
	PreviousCompanies []string `json:"previous_companies,omitempty"`
	Locations         []string `json:"locations,omitempty"`
}

func (*ResumeRecord) DocType() constants.DocType { return constants.DocTypeResume }

// LegalRecord is the structured result of legal-document field extraction.
type LegalRecord struct {
	PartiesInvolved []string `json:"parties_involved,omitempty"`
	CaseNumbers     []string `json:"case_numbers,omitempty"`
	CourtNames      []string `json:"court_names,omitempty"`
	LegalDates      []string `json:"legal_dates,omitempty"`
	MonetaryAmounts []string `json:"monetary_amounts,omitempty"`
	DocumentType    string   `json:"document_type"`
}

func (*LegalRecord) DocType() constants.DocType { return constants.DocTypeLegal }

// GenericRecord is the fallback for unrecognized document types: the raw
// entity bag, unmodified.
type GenericRecord struct {
	*entities.Bag
}

func (GenericRecord) DocType() constants.DocType { return constants.DocTypeUnknown }
