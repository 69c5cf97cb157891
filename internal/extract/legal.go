package extract

import (
	"regexp"

	"github.com/docsift/docsift/internal/entities"
	"github.com/docsift/docsift/internal/entity"
)

var (
	reCaseNumber = regexp.MustCompile(`(?i)(?:Case|Docket|File)\s+(?:No\.?|Number)?\s*:?\s*([A-Z0-9-]+)`)
	reCourtName  = regexp.MustCompile(`([A-Z][a-z]+\s+(?:Court|District|Circuit|Supreme)[^\n]*)`)
)

// classified by first keyword-category match, in this order
var legalTypeTable = []struct {
	kind string
	re   *regexp.Regexp
}{
	{"contract", regexp.MustCompile(`(?i)contract|agreement|terms`)},
	{"lawsuit", regexp.MustCompile(`(?i)lawsuit|complaint|motion`)},
	{"will", regexp.MustCompile(`(?i)will|testament|estate`)},
	{"patent", regexp.MustCompile(`(?i)patent|invention|intellectual`)},
	{"license", regexp.MustCompile(`(?i)license|permit|authorization`)},
}

// extractLegal populates a legal-document record. Dates and monetary amounts
// pass straight through from the entity bag.
func extractLegal(text string, bag *entities.Bag) *entity.LegalRecord {
	parties := make([]string, 0, len(bag.Person)+len(bag.Org))
	parties = append(parties, bag.Person...)
	parties = append(parties, bag.Org...)

	return &entity.LegalRecord{
		PartiesInvolved: parties,
		CaseNumbers:     allGroups(reCaseNumber, text),
		CourtNames:      allGroups(reCourtName, text),
		LegalDates:      bag.Date,
		MonetaryAmounts: bag.Money,
		DocumentType:    legalDocumentType(text),
	}
}

func legalDocumentType(text string) string {
	for _, lt := range legalTypeTable {
		if lt.re.MatchString(text) {
			return lt.kind
		}
	}
	return "legal_document"
}

func allGroups(p *regexp.Regexp, text string) []string {
	found := p.FindAllStringSubmatch(text, -1)
	if found == nil {
		return nil
	}
	out := make([]string, 0, len(found))
	for _, m := range found {
		out = append(out, m[1])
	}
	return out
}
