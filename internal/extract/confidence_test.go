package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/entities"
)

func TestInvoiceConfidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		bag  *entities.Bag
		want float64
	}{
		{"no signals", "hello", &entities.Bag{}, 0.0},
		{"invoice word only", "This invoice covers...", &entities.Bag{}, 0.3},
		{"org only", "hello", &entities.Bag{Org: []string{"Acme"}}, 0.2},
		{
			"all signals",
			"invoice total due",
			&entities.Bag{
				Org:        []string{"Acme"},
				Currencies: []string{"$5.00"},
				Date:       []string{"January 2, 2024"},
				Emails:     []string{"a@b.co"},
			},
			1.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, invoiceConfidence(tt.text, tt.bag), 1e-9)
		})
	}
}

func TestInvoiceConfidenceBounds(t *testing.T) {
	bag := &entities.Bag{
		Org:             []string{"Acme"},
		Money:           []string{"$1.00"},
		Currencies:      []string{"$1.00"},
		Date:            []string{"May 1, 2024"},
		DatesStructured: []string{"05/01/2024"},
		Emails:          []string{"a@b.co"},
	}
	score := invoiceConfidence("invoice total amount due", bag)
	require.GreaterOrEqual(t, score, 0.0)
	require.LessOrEqual(t, score, 1.0)
}
