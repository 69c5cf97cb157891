package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/docsift/docsift/internal/entities"
	"github.com/docsift/docsift/internal/entity"
	"github.com/docsift/docsift/internal/patterns"
)

// Bounded scan windows. These caps keep per-field cost near-constant on
// pathological inputs; they are load-bearing, not tuning knobs.
const (
	vendorLineWindow  = 5
	dateLineWindow    = 10
	addressLineWindow = 15
	totalProximity    = 100 // chars after a total keyword
)

var (
	reVendorLabel = regexp.MustCompile(`(?i)Vendor:\s*(.+)`)

	customerLabelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Invoice\s+to:\s*([A-Z][a-zA-Z\s]+?)(?:\s+Invoice|\s+\d|\n|$)`),
		regexp.MustCompile(`(?i)Bill\s+to:\s*([A-Z][a-zA-Z\s]+?)(?:\s+Invoice|\s+\d|\n|$)`),
		regexp.MustCompile(`(?i)Customer:\s*([A-Z][a-zA-Z\s]+?)(?:\s+Invoice|\s+\d|\n|$)`),
		regexp.MustCompile(`(?i)Client:\s*([A-Z][a-zA-Z\s]+?)(?:\s+Invoice|\s+\d|\n|$)`),
	}
	// strips a label keyword re-captured at the tail of a customer name
	reCustomerTail = regexp.MustCompile(`(?i)\s+(?:Invoice|Bill|Customer|Client).*$`)

	// tried in priority order
	totalLabelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bTotal:\s*\$?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)\bGrand\s+Total:\s*\$?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)\bAmount\s+Due:\s*\$?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)\bFinal\s+Amount:\s*\$?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)\bBalance\s+Due:\s*\$?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	}
	reTotalKeyword = regexp.MustCompile(`(?i)(?:Total|Amount\s+Due|Grand\s+Total)`)
	reAmountToken  = regexp.MustCompile(`\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)

	invoiceDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Invoice\s*Date\s*[:\-]?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		regexp.MustCompile(`(?i)Date\s*[:\-]?\s*(\d{1,2}\s*/\s*\d{1,2}\s*/\s*\d{2,4})`), // tolerates spaces
		regexp.MustCompile(`(?i)Date\s*[:\-]?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		regexp.MustCompile(`(?i)Issued\s*[:\-]?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		regexp.MustCompile(`(?i)Date\s*[:\-]?\s*(\d{4}-\d{2}-\d{2})`),
		regexp.MustCompile(`(?i)Date\s*[:\-]?\s*([A-Za-z]{3,9}\s+\d{1,2},?\s+\d{4})`),
	}
	reBareDate    = regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`)
	reDueDate     = regexp.MustCompile(`(?i)(?:Due\s+Date|Payment\s+Due):\s*([^\n]+)`)
	reSubtotal    = regexp.MustCompile(`(?i)(?:Subtotal|Sub-total|Sub\s+Total):\s*\$?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	reMultiSpaces = regexp.MustCompile(`\s+`)

	invoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Invoice\s+Number:\s*([A-Z0-9\-/]+)`),
		regexp.MustCompile(`(?i)Invoice\s+No\.?:\s*([A-Z0-9\-/]+)`),
		regexp.MustCompile(`(?i)Invoice\s+#:\s*([A-Z0-9\-/]+)`),
		regexp.MustCompile(`(?i)Inv\.?\s+No\.?:\s*([A-Z0-9\-/]+)`),
	}
	poNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)PO\s+Number:\s*([A-Z0-9\-/]+)`),
		regexp.MustCompile(`(?i)P\.?O\.?\s+No\.?:\s*([A-Z0-9\-/]+)`),
		regexp.MustCompile(`(?i)Purchase\s+Order:\s*([A-Z0-9\-/]+)`),
	}

	addressLinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+\s+[A-Za-z0-9\s,.-]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Way|Court|Ct|Place|Pl)\b`),
		regexp.MustCompile(`(?i)[A-Za-z0-9\s,.-]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Way|Court|Ct|Place|Pl)\s+[A-Za-z0-9\s,.-]*`),
	}
	// invoice-number collision guard for addresses
	reLeadingIDRun = regexp.MustCompile(`^\d{4,6}`)

	reRupeeToken = regexp.MustCompile(`\b(?:R|Rs|INR)\b`)
)

var vendorSuffixTokens = []string{"brand", "company", "inc", "corp", "ltd", "llc"}

// extractInvoice populates an invoice record from text plus the entity bag.
// Every field follows a layered fallback: labeled pattern first, then entity
// lookups, then bounded positional heuristics.
func extractInvoice(text string, bag *entities.Bag) *entity.InvoiceRecord {
	rec := &entity.InvoiceRecord{
		VendorName:    vendorName(text, bag),
		CustomerName:  customerName(text, bag),
		InvoiceNumber: firstPattern(text, invoiceNumberPatterns),
		PONumber:      firstPattern(text, poNumberPatterns),
		OrderNumber:   patterns.First("order_number", text),

		TotalAmount: totalAmount(text, bag),
		Subtotal:    firstGroup(reSubtotal, text),
		TaxAmount:   patterns.First("tax_amount", text),
		TaxRate:     patterns.First("tax_rate", text),

		InvoiceDate: invoiceDate(text),
		DueDate:     firstGroup(reDueDate, text),

		VendorAddress: vendorAddress(text, bag),

		PaymentTerms:  patterns.First("payment_terms", text),
		DiscountTerms: patterns.First("discount_terms", text),

		LineItems: parseLineItems(text),

		CurrencyDetected: detectCurrency(text),
	}
	if len(bag.Emails) > 0 {
		rec.VendorEmail = bag.Emails[0]
	}
	if len(bag.Phones) > 0 {
		rec.VendorPhone = bag.Phones[0]
	}
	rec.ConfidenceScore = invoiceConfidence(text, bag)
	return rec
}

// vendorName tiers: labeled field, ORG with a business-suffix token, first
// ORG, then a corporate keyword in the leading lines.
func vendorName(text string, bag *entities.Bag) string {
	if m := reVendorLabel.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, org := range bag.Org {
		lower := strings.ToLower(org)
		for _, tok := range vendorSuffixTokens {
			if strings.Contains(lower, tok) {
				return strings.TrimSpace(org)
			}
		}
	}
	if len(bag.Org) > 0 {
		return bag.Org[0]
	}
	for _, line := range leadingLines(text, vendorLineWindow) {
		lower := strings.ToLower(line)
		for _, word := range []string{"corporation", "inc.", "solutions", "technologies"} {
			if strings.Contains(lower, word) {
				return strings.TrimSpace(line)
			}
		}
	}
	return ""
}

// customerName tiers: explicit bill-to labels (with a tail-label cleanup
// pass), then the first PERSON entity that does not look like a vendor.
func customerName(text string, bag *entities.Bag) string {
	for _, p := range customerLabelPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(m[1])
			return strings.TrimSpace(reCustomerTail.ReplaceAllString(name, ""))
		}
	}
	for _, person := range bag.Person {
		lower := strings.ToLower(person)
		vendorLike := false
		for _, tok := range []string{"brand", "company", "corp", "inc", "ltd"} {
			if strings.Contains(lower, tok) {
				vendorLike = true
				break
			}
		}
		if !vendorLike {
			return person
		}
	}
	return ""
}

// totalAmount tiers: labeled total patterns in priority order, then the
// largest MONEY/currency value within totalProximity chars of a total
// keyword, then the largest value overall. The "largest wins" heuristic is
// inherited as-is; documents with unrelated large numbers can fool it.
func totalAmount(text string, bag *entities.Bag) string {
	for _, p := range totalLabelPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}

	allAmounts := make([]string, 0, len(bag.Money)+len(bag.Currencies))
	allAmounts = append(allAmounts, bag.Money...)
	allAmounts = append(allAmounts, bag.Currencies...)
	if len(allAmounts) == 0 {
		return ""
	}

	keywordEnds := keywordPositions(text)

	bestNum, bestVal := "", -1.0
	maxNum, maxVal := "", -1.0
	for _, amount := range allAmounts {
		for _, num := range reAmountToken.FindAllString(amount, -1) {
			val, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", ""), 64)
			if err != nil {
				continue // malformed token: skip, not fatal
			}
			if val > maxVal {
				maxVal, maxNum = val, num
			}
			if val > bestVal && nearKeyword(text, num, keywordEnds) {
				bestVal, bestNum = val, num
			}
		}
	}
	if bestNum != "" {
		return bestNum
	}
	return maxNum
}

func keywordPositions(text string) []int {
	locs := reTotalKeyword.FindAllStringIndex(text, -1)
	ends := make([]int, len(locs))
	for i, l := range locs {
		ends[i] = l[1]
	}
	return ends
}

// nearKeyword reports whether num occurs within totalProximity characters
// after any total keyword.
func nearKeyword(text, num string, keywordEnds []int) bool {
	if len(keywordEnds) == 0 {
		return false
	}
	offset := 0
	for {
		i := strings.Index(text[offset:], num)
		if i < 0 {
			return false
		}
		pos := offset + i
		for _, end := range keywordEnds {
			if pos >= end && pos-end <= totalProximity {
				return true
			}
		}
		offset = pos + 1
	}
}

// invoiceDate tries six label/format variants in order, then scans the
// leading lines for a bare slash/dash date token.
func invoiceDate(text string) string {
	for _, p := range invoiceDatePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return reMultiSpaces.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		}
	}
	for _, line := range leadingLines(text, dateLineWindow) {
		if m := reBareDate.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}

// vendorAddress scans the leading lines for a street-suffix shape, rejecting
// anything that starts with a 4-6 digit run (invoice-number collision), then
// falls back to the addresses bucket under the same rejection rule.
func vendorAddress(text string, bag *entities.Bag) string {
	for _, line := range leadingLines(text, addressLineWindow) {
		for _, p := range addressLinePatterns {
			if m := p.FindString(line); m != "" {
				addr := strings.TrimSpace(m)
				if !reLeadingIDRun.MatchString(addr) {
					return addr
				}
			}
		}
	}
	for _, addr := range bag.Addresses {
		if !reLeadingIDRun.MatchString(addr) {
			return addr
		}
	}
	return ""
}

// detectCurrency is a symbol presence test, first match wins, USD by default.
func detectCurrency(text string) string {
	switch {
	case strings.Contains(text, "$"):
		return "USD"
	case strings.Contains(text, "€"):
		return "EUR"
	case strings.Contains(text, "£"):
		return "GBP"
	case strings.Contains(text, "¥"):
		return "JPY"
	case reRupeeToken.MatchString(text):
		return "INR"
	default:
		return "USD"
	}
}

// firstPattern returns group 1 of the first pattern in ps that matches.
func firstPattern(text string, ps []*regexp.Regexp) string {
	for _, p := range ps {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func firstGroup(p *regexp.Regexp, text string) string {
	if m := p.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// leadingLines returns at most n leading lines of text.
func leadingLines(text string, n int) []string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}
