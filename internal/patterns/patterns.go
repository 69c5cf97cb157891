// Package patterns is the process-wide registry of named extraction regexes.
//
// The library is built once at init and never mutated, so it is safe for any
// number of concurrent readers. Go's RE2 engine has no backreferences or
// lookahead; every pattern here is written within those limits and the
// section-bounding tricks the engine cannot express live in the extractors.
package patterns

import "regexp"

// Category groups patterns by the semantic concern they serve.
type Category string

const (
	CategoryContact Category = "contact"
	CategoryAmount  Category = "amount"
	CategoryDate    Category = "date"
	CategoryInvoice Category = "invoice"
	CategoryTax     Category = "tax"
	CategoryAddress Category = "address"
	CategoryWeb     Category = "web"
	CategoryGovID   Category = "gov_id"
	CategoryTerms   Category = "terms"
)

// Pattern is one named, compiled matcher. Immutable after construction.
type Pattern struct {
	Name     string
	Category Category
	re       *regexp.Regexp
}

// Matches applies the pattern over text. Patterns with capture groups yield
// the first non-empty group per match (falling back to the full match);
// groupless patterns yield full matches. An unmatched pattern yields nil,
// never an error.
func (p Pattern) Matches(text string) []string {
	found := p.re.FindAllStringSubmatch(text, -1)
	if found == nil {
		return nil
	}
	out := make([]string, 0, len(found))
	for _, m := range found {
		out = append(out, pick(m))
	}
	return out
}

// First returns the first match of the pattern in text, or "" when absent.
func (p Pattern) First(text string) string {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return pick(m)
}

// MatchString reports whether the pattern matches anywhere in text.
func (p Pattern) MatchString(text string) bool {
	return p.re.MatchString(text)
}

func pick(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return m[0]
}

// All patterns match case-insensitively per the library contract. Note that
// under (?i) the [A-Z0-9] identifier classes accept lowercase too.
var library = []Pattern{
	{Name: "email", Category: CategoryContact,
		re: regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	{Name: "phone", Category: CategoryContact,
		re: regexp.MustCompile(`(?i)(?:\+?1[-.\s]?)?(?:\([0-9]{3}\)|[0-9]{3})[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)},
	{Name: "phone_international", Category: CategoryContact,
		re: regexp.MustCompile(`(?i)\+(?:[0-9] ?){6,14}[0-9]`)},

	{Name: "currency_usd", Category: CategoryAmount,
		re: regexp.MustCompile(`(?i)\$\s*\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)},
	{Name: "currency_euro", Category: CategoryAmount,
		re: regexp.MustCompile(`(?i)€\s*\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)},
	{Name: "amount_decimal", Category: CategoryAmount,
		re: regexp.MustCompile(`(?i)\b\d{1,3}(?:,\d{3})*\.\d{2}\b`)},

	{Name: "date_slash", Category: CategoryDate,
		re: regexp.MustCompile(`(?i)\b\d{1,2}/\d{1,2}/\d{2,4}\b`)},
	{Name: "date_dash", Category: CategoryDate,
		re: regexp.MustCompile(`(?i)\b\d{1,2}-\d{1,2}-\d{2,4}\b`)},
	{Name: "date_iso", Category: CategoryDate,
		re: regexp.MustCompile(`(?i)\b\d{4}-\d{2}-\d{2}\b`)},
	{Name: "date_text", Category: CategoryDate,
		re: regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4}\b`)},

	{Name: "invoice_number", Category: CategoryInvoice,
		re: regexp.MustCompile(`(?i)(?:Invoice|Inv\.?)\s*(?:Number|No\.?|#)?\s*[:\-]?\s*([A-Z0-9\-/]+)`)},
	{Name: "po_number", Category: CategoryInvoice,
		re: regexp.MustCompile(`(?i)PO\s*(?:Number|No\.?|#)?\s*[:\-]?\s*([A-Z0-9\-]+)`)},
	{Name: "order_number", Category: CategoryInvoice,
		re: regexp.MustCompile(`(?i)Order\s*(?:Number|No\.?|#)?\s*[:\-]?\s*([A-Z0-9\-]+)`)},

	{Name: "tax_rate", Category: CategoryTax,
		re: regexp.MustCompile(`(?i)(?:Tax|VAT|GST|Sales\s+Tax)\s*(?:\([^)]*\))?\s*[:\-]?\s*(\d+(?:\.\d+)?%)`)},
	{Name: "tax_amount", Category: CategoryTax,
		re: regexp.MustCompile(`(?i)(?:Tax|VAT|GST|Sales\s+Tax)\s*(?:\([^)]*\))?\s*[:\-]?\s*[£$€¥]?\s*(\d{1,3}(?:[,.]\d{3})*(?:\.\d{2})?)`)},

	{Name: "zip_code", Category: CategoryAddress,
		re: regexp.MustCompile(`(?i)\b\d{5}(?:-\d{4})?\b`)},
	{Name: "address", Category: CategoryAddress,
		re: regexp.MustCompile(`(?i)\d+\s+[A-Za-z0-9\s,.-]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Way|Court|Ct|Place|Pl)\b`)},

	{Name: "website", Category: CategoryWeb,
		re: regexp.MustCompile(`(?i)https?://(?:[-\w.])+(?::\d+)?(?:/(?:[\w/_.])*(?:\?(?:[\w&=%.])*)?(?:#(?:[\w.])*)?)?`)},
	{Name: "social_media", Category: CategoryWeb,
		re: regexp.MustCompile(`(?i)@[A-Za-z0-9_]+`)},

	{Name: "ein_tax_id", Category: CategoryGovID,
		re: regexp.MustCompile(`(?i)\b\d{2}-\d{7}\b`)},
	{Name: "ssn", Category: CategoryGovID,
		re: regexp.MustCompile(`(?i)\b\d{3}-\d{2}-\d{4}\b`)},

	{Name: "payment_terms", Category: CategoryTerms,
		re: regexp.MustCompile(`(?i)(?:Net\s+\d+|within\s+(\d+)\s+days|Payment due in\s+(\d+))`)},
	{Name: "discount_terms", Category: CategoryTerms,
		re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)%\s+(?:discount|off)`)},
}

var byName = func() map[string]Pattern {
	m := make(map[string]Pattern, len(library))
	for _, p := range library {
		m[p.Name] = p
	}
	return m
}()

// All returns every registered pattern in registration order.
func All() []Pattern {
	out := make([]Pattern, len(library))
	copy(out, library)
	return out
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := byName[name]
	return p, ok
}

// Find applies the named pattern over text. Unknown names yield nil.
func Find(name, text string) []string {
	p, ok := byName[name]
	if !ok {
		return nil
	}
	return p.Matches(text)
}

// First returns the first match of the named pattern, or "" when absent or
// the name is unknown.
func First(name, text string) string {
	p, ok := byName[name]
	if !ok {
		return ""
	}
	return p.First(text)
}
