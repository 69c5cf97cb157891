// Package entities fuses recognizer output with pattern-library matches into
// one canonical entity bag per document.
package entities

import "strings"

// Canonical recognizer category names.
const (
	CatPerson   = "PERSON"
	CatOrg      = "ORG"
	CatMoney    = "MONEY"
	CatDate     = "DATE"
	CatGPE      = "GPE"
	CatCardinal = "CARDINAL"
)

// Metadata describes one aggregation pass.
type Metadata struct {
	TotalEntitiesFound  int    `json:"total_entities_found"`
	TextLength          int    `json:"text_length"`
	ProcessingTimestamp string `json:"processing_timestamp"`
}

// Bag is the canonical, deduplicated entity set for one document. Created per
// extraction call, fully owned by that call; no cross-call state. Invariants:
// no category holds an empty or whitespace-only member, and no category holds
// a duplicate (post-trim) member. Missing categories mean "none found".
type Bag struct {
	Person   []string `json:"PERSON,omitempty"`
	Org      []string `json:"ORG,omitempty"`
	Money    []string `json:"MONEY,omitempty"`
	Date     []string `json:"DATE,omitempty"`
	GPE      []string `json:"GPE,omitempty"`
	Cardinal []string `json:"CARDINAL,omitempty"`

	Emails          []string            `json:"emails,omitempty"`
	Phones          []string            `json:"phones,omitempty"`
	Currencies      []string            `json:"currencies,omitempty"`
	DatesStructured []string            `json:"dates_structured,omitempty"`
	Addresses       []string            `json:"addresses,omitempty"`
	Websites        []string            `json:"websites,omitempty"`
	BusinessIDs     []string            `json:"business_ids,omitempty"`
	InvoiceDetails  map[string][]string `json:"invoice_details,omitempty"`

	Metadata *Metadata `json:"extraction_metadata,omitempty"`

	// Error records a recognizer failure. The regex-derived buckets above are
	// still populated in that case; only the recognizer categories are lost.
	Error string `json:"error,omitempty"`
}

// IsEmpty reports whether the bag holds no entities at all.
func (b *Bag) IsEmpty() bool {
	return b.totalCount() == 0
}

// totalCount sums every bucket size; invoice_details contributes the number
// of its sub-lists.
func (b *Bag) totalCount() int {
	n := 0
	for _, l := range [][]string{
		b.Person, b.Org, b.Money, b.Date, b.GPE, b.Cardinal,
		b.Emails, b.Phones, b.Currencies, b.DatesStructured,
		b.Addresses, b.Websites, b.BusinessIDs,
	} {
		n += len(l)
	}
	return n + len(b.InvoiceDetails)
}

// dedupeTrim trims every member, drops empties, and removes duplicates while
// preserving first-seen order. Order preservation keeps the "first entity"
// fallback tiers deterministic.
func dedupeTrim(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
