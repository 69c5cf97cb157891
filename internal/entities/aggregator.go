package entities

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/docsift/docsift/internal/patterns"
)

var (
	reZipLike   = regexp.MustCompile(`^\d{3,5}$`)
	reLooseNums = regexp.MustCompile(`^\d{1,2}$`)
)

// Aggregator builds entity bags. It invokes the recognizer at most once per
// document; everything downstream reuses the bag.
type Aggregator struct {
	rec    Recognizer
	logger *slog.Logger
	now    func() time.Time
}

// NewAggregator wires an aggregator around a recognizer. A nil recognizer is
// allowed and yields regex-only bags.
func NewAggregator(rec Recognizer, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{rec: rec, logger: logger, now: time.Now}
}

// Aggregate fuses the recognizer categories and the pattern-library matches
// for text into one bag. Empty or whitespace-only text returns an empty bag
// without touching the recognizer. A recognizer failure is recorded in the
// bag's Error field and aggregation continues on regex signals alone; the
// caller never sees the failure as an error.
func (a *Aggregator) Aggregate(ctx context.Context, text string) *Bag {
	bag := &Bag{}
	if strings.TrimSpace(text) == "" {
		return bag
	}

	if a.rec != nil {
		tagged, err := a.rec.Recognize(ctx, text)
		if err != nil {
			bag.Error = fmt.Sprintf("entity extraction failed: %v", err)
			a.logger.Error("entities.recognizer.failed", "err", err)
		} else {
			bag.Person = dedupeTrim(tagged[CatPerson])
			bag.Org = dedupeTrim(tagged[CatOrg])
			bag.Money = dedupeTrim(tagged[CatMoney])
			bag.Date = dedupeTrim(tagged[CatDate])
			bag.GPE = dedupeTrim(tagged[CatGPE])
			bag.Cardinal = dedupeTrim(tagged[CatCardinal])
		}
	}

	bag.Date = cleanDates(bag.Date)
	a.routePatterns(text, bag)

	bag.Metadata = &Metadata{
		TotalEntitiesFound:  bag.totalCount(),
		TextLength:          len(text),
		ProcessingTimestamp: a.now().Format(time.RFC3339),
	}
	return bag
}

// cleanDates drops recognizer DATE entries that are really postal codes
// (pure 3-5 digit runs) or loose numerals (1-2 digits).
func cleanDates(dates []string) []string {
	if len(dates) == 0 {
		return nil
	}
	out := dates[:0]
	for _, d := range dates {
		if reZipLike.MatchString(d) || reLooseNums.MatchString(d) {
			continue
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// routePatterns runs every library pattern over text and files the matches
// into the derived buckets. Patterns with no bucket (zip codes, social
// handles, terms) only serve the field extractors and are not bagged.
func (a *Aggregator) routePatterns(text string, bag *Bag) {
	for _, p := range patterns.All() {
		matches := p.Matches(text)
		if len(matches) == 0 {
			continue
		}
		switch {
		case p.Name == "email":
			bag.Emails = append(bag.Emails, matches...)
		case p.Name == "phone" || p.Name == "phone_international":
			bag.Phones = append(bag.Phones, matches...)
		case p.Category == patterns.CategoryAmount:
			bag.Currencies = append(bag.Currencies, matches...)
		case p.Category == patterns.CategoryDate:
			bag.DatesStructured = append(bag.DatesStructured, matches...)
		case p.Name == "address":
			bag.Addresses = append(bag.Addresses, matches...)
		case p.Name == "website":
			bag.Websites = append(bag.Websites, matches...)
		case p.Category == patterns.CategoryGovID:
			bag.BusinessIDs = append(bag.BusinessIDs, matches...)
		case p.Category == patterns.CategoryInvoice:
			if bag.InvoiceDetails == nil {
				bag.InvoiceDetails = make(map[string][]string, 3)
			}
			bag.InvoiceDetails[p.Name] = matches
		}
	}

	bag.Emails = dedupeTrim(bag.Emails)
	bag.Phones = dedupeTrim(bag.Phones)
	bag.Currencies = dedupeTrim(bag.Currencies)
	bag.DatesStructured = dedupeTrim(bag.DatesStructured)
	bag.Addresses = dedupeTrim(bag.Addresses)
	bag.Websites = dedupeTrim(bag.Websites)
	bag.BusinessIDs = dedupeTrim(bag.BusinessIDs)
	for name, raw := range bag.InvoiceDetails {
		bag.InvoiceDetails[name] = dedupeTrim(raw)
	}
}
