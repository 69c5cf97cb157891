package entities

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAggregateMergesRecognizerAndPatterns(t *testing.T) {
	rec := RecognizerFunc(func(ctx context.Context, text string) (map[string][]string, error) {
		return map[string][]string{
			CatPerson: {"John Smith"},
			CatOrg:    {"Acme Corp", "Acme Corp"}, // duplicate must collapse
			CatMoney:  {"$1,250.00"},
		}, nil
	})
	agg := NewAggregator(rec, nil)

	text := "Invoice Number: INV-42\nBill To: John Smith\nEmail billing@acme.com\nTotal: $1,250.00"
	bag := agg.Aggregate(context.Background(), text)

	require.Empty(t, bag.Error)
	require.Equal(t, []string{"John Smith"}, bag.Person)
	require.Equal(t, []string{"Acme Corp"}, bag.Org)
	require.Equal(t, []string{"$1,250.00"}, bag.Money)
	require.Equal(t, []string{"billing@acme.com"}, bag.Emails)
	require.Contains(t, bag.Currencies, "$1,250.00")
	require.Equal(t, []string{"INV-42"}, bag.InvoiceDetails["invoice_number"])

	require.NotNil(t, bag.Metadata)
	require.Equal(t, len(text), bag.Metadata.TextLength)
	require.Positive(t, bag.Metadata.TotalEntitiesFound)
	_, err := time.Parse(time.RFC3339, bag.Metadata.ProcessingTimestamp)
	require.NoError(t, err)
}

// A recognizer failure is reported inside the bag while the regex buckets
// still fill; callers never see it as an error.
func TestAggregateRecognizerFailure(t *testing.T) {
	rec := RecognizerFunc(func(ctx context.Context, text string) (map[string][]string, error) {
		return nil, errors.New("model crashed")
	})
	agg := NewAggregator(rec, nil)

	bag := agg.Aggregate(context.Background(), "Reach us at ops@example.org")

	require.Equal(t, "entity extraction failed: model crashed", bag.Error)
	require.Empty(t, bag.Person)
	require.Equal(t, []string{"ops@example.org"}, bag.Emails)
}

func TestAggregateEmptyTextSkipsRecognizer(t *testing.T) {
	called := false
	rec := RecognizerFunc(func(ctx context.Context, text string) (map[string][]string, error) {
		called = true
		return nil, nil
	})
	agg := NewAggregator(rec, nil)

	for _, text := range []string{"", "   \n\t  "} {
		bag := agg.Aggregate(context.Background(), text)
		require.True(t, bag.IsEmpty())
		require.Nil(t, bag.Metadata)
	}
	require.False(t, called)
}

func TestAggregateNilRecognizer(t *testing.T) {
	agg := NewAggregator(nil, nil)
	bag := agg.Aggregate(context.Background(), "PO Number: PO-77")
	require.Empty(t, bag.Error)
	require.Equal(t, []string{"PO-77"}, bag.InvoiceDetails["po_number"])
}

// Recognizer DATE output gets scrubbed of zip-like and loose numeric tokens.
func TestAggregateCleansDates(t *testing.T) {
	rec := RecognizerFunc(func(ctx context.Context, text string) (map[string][]string, error) {
		return map[string][]string{
			CatDate: {"90210", "12", "January 15, 2024", "445"},
		}, nil
	})
	agg := NewAggregator(rec, nil)

	bag := agg.Aggregate(context.Background(), "some document body")
	require.Equal(t, []string{"January 15, 2024"}, bag.Date)
}

func TestDedupeTrim(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil in nil out", nil, nil},
		{"all empties collapse to nil", []string{"", "  ", "\t"}, nil},
		{"order preserved", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
		{"trim before compare", []string{" x ", "x"}, []string{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, dedupeTrim(tt.in))
		})
	}
}

func TestBagIsEmpty(t *testing.T) {
	require.True(t, (&Bag{}).IsEmpty())
	require.False(t, (&Bag{Emails: []string{"a@b.co"}}).IsEmpty())
	require.False(t, (&Bag{InvoiceDetails: map[string][]string{"po_number": {"PO-1"}}}).IsEmpty())
}
