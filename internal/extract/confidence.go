package extract

import (
	"regexp"

	"github.com/docsift/docsift/internal/entities"
)

var (
	reInvoiceWord = regexp.MustCompile(`(?i)invoice`)
	reTotalWords  = regexp.MustCompile(`(?i)(?:total|amount|due)`)
)

// invoiceConfidence is a coarse additive self-assessment of invoice
// extraction quality, capped at 1.0. It is not a calibrated probability.
func invoiceConfidence(text string, bag *entities.Bag) float64 {
	score := 0.0
	if reInvoiceWord.MatchString(text) {
		score += 0.3
	}
	if len(bag.Org) > 0 {
		score += 0.2
	}
	if len(bag.Currencies) > 0 || len(bag.Money) > 0 {
		score += 0.2
	}
	if len(bag.Date) > 0 || len(bag.DatesStructured) > 0 {
		score += 0.1
	}
	if len(bag.Emails) > 0 {
		score += 0.1
	}
	if reTotalWords.MatchString(text) {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
