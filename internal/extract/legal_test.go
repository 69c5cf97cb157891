package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/entities"
)

func TestLegalDocumentType(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"the parties executed this agreement", "contract"},
		{"plaintiff filed a complaint seeking damages", "lawsuit"},
		{"being the last will of the deceased", "will"},
		{"a patent covering the invention", "patent"},
		{"a permit issued by the city", "license"},
		{"an unremarkable memo", "legal_document"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, legalDocumentType(tt.text))
		})
	}
}

func TestCaseAndCourtPatterns(t *testing.T) {
	text := `Superior Court of California
Case No. 2024-CV-1234
Docket Number: 88-MD-2
The plaintiff alleges...`

	require.Equal(t, []string{"2024-CV-1234", "88-MD-2"}, allGroups(reCaseNumber, text))
	require.Equal(t, []string{"Superior Court of California"}, allGroups(reCourtName, text))
}

func TestExtractLegal(t *testing.T) {
	text := `District Court for the Northern District
Case No. 1:24-cv-00123
Smith v. Jones, complaint for breach`

	bag := &entities.Bag{
		Person: []string{"John Smith", "Mary Jones"},
		Org:    []string{"Jones Holdings"},
		Date:   []string{"March 3, 2024"},
		Money:  []string{"$50,000"},
	}

	rec := extractLegal(text, bag)

	require.Equal(t, []string{"John Smith", "Mary Jones", "Jones Holdings"}, rec.PartiesInvolved)
	require.NotEmpty(t, rec.CaseNumbers)
	require.Equal(t, []string{"March 3, 2024"}, rec.LegalDates)
	require.Equal(t, []string{"$50,000"}, rec.MonetaryAmounts)
	require.Equal(t, "lawsuit", rec.DocumentType)
}
