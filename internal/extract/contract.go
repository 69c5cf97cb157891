package extract

import (
	"fmt"
	"regexp"

	"github.com/docsift/docsift/internal/entities"
	"github.com/docsift/docsift/internal/entity"
	"github.com/docsift/docsift/internal/patterns"
)

// classified by first keyword-category match, in this order
var contractTypeTable = []struct {
	kind string
	re   *regexp.Regexp
}{
	{"employment", regexp.MustCompile(`(?i)employment|job|position|salary`)},
	{"service", regexp.MustCompile(`(?i)service|consulting|agreement`)},
	{"purchase", regexp.MustCompile(`(?i)purchase|buy|sale|vendor`)},
	{"lease", regexp.MustCompile(`(?i)lease|rent|rental|tenant`)},
	{"license", regexp.MustCompile(`(?i)license|licensing|intellectual`)},
}

// extractContract populates a contract record. Parties come straight from the
// ORG and PERSON entities; contract_value reuses the invoice total-amount
// fallback chain.
func extractContract(text string, bag *entities.Bag) *entity.ContractRecord {
	parties := make([]string, 0, len(bag.Org)+len(bag.Person))
	parties = append(parties, bag.Org...)
	parties = append(parties, bag.Person...)

	return &entity.ContractRecord{
		Parties:        parties,
		Dates:          bag.Date,
		EffectiveDate:  firstGroup(reEffectiveDate, text),
		ExpirationDate: firstGroup(reExpirationDate, text),
		ContractValue:  totalAmount(text, bag),
		PaymentTerms:   patterns.First("payment_terms", text),
		ContractType:   contractType(text),
	}
}

// contract dates are keyword-anchored date searches, parameterized by the
// "effective"/"expir" stem
var (
	reEffectiveDate  = contractDatePattern("effective")
	reExpirationDate = contractDatePattern("expir")
)

func contractDatePattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(
		`(?i)%s[^a-zA-Z0-9]?[\s:]*([A-Za-z]+\s+\d{1,2},\s+\d{4}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
		regexp.QuoteMeta(keyword)))
}

func contractType(text string) string {
	for _, ct := range contractTypeTable {
		if ct.re.MatchString(text) {
			return ct.kind
		}
	}
	return "general"
}
