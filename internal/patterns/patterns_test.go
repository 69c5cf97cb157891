package patterns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    []string
	}{
		{
			name:    "email",
			pattern: "email",
			text:    "Contact billing@acme.com or support@acme.co.uk for help",
			want:    []string{"billing@acme.com", "support@acme.co.uk"},
		},
		{
			name:    "phone dashed",
			pattern: "phone",
			text:    "Call 555-123-4567 today",
			want:    []string{"555-123-4567"},
		},
		{
			name:    "phone parenthesized",
			pattern: "phone",
			text:    "Office: (212) 555-0100",
			want:    []string{"(212) 555-0100"},
		},
		{
			name:    "usd amount with thousands",
			pattern: "currency_usd",
			text:    "Total $1,234.56 due",
			want:    []string{"$1,234.56"},
		},
		{
			name:    "iso date",
			pattern: "date_iso",
			text:    "Issued 2024-01-15 and paid 2024-02-01",
			want:    []string{"2024-01-15", "2024-02-01"},
		},
		{
			name:    "textual date",
			pattern: "date_text",
			text:    "Signed on January 15, 2024",
			want:    []string{"January 15, 2024"},
		},
		{
			name:    "invoice number captures group not label",
			pattern: "invoice_number",
			text:    "Invoice Number: INV-2024-001",
			want:    []string{"INV-2024-001"},
		},
		{
			name:    "ein",
			pattern: "ein_tax_id",
			text:    "EIN 12-3456789",
			want:    []string{"12-3456789"},
		},
		{
			name:    "discount terms group",
			pattern: "discount_terms",
			text:    "2% discount if paid within 10 days",
			want:    []string{"2"},
		},
		{
			name:    "no match yields nil",
			pattern: "email",
			text:    "nothing to see here",
			want:    nil,
		},
		{
			name:    "unknown pattern yields nil",
			pattern: "no_such_pattern",
			text:    "whatever",
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Find(tt.pattern, tt.text))
		})
	}
}

// payment_terms has two capture groups; "Net 30" matches the groupless
// branch and must come back as the full match.
func TestFirstPaymentTerms(t *testing.T) {
	require.Equal(t, "Net 30", First("payment_terms", "Terms: Net 30"))
	require.Equal(t, "15", First("payment_terms", "payable within 15 days"))
	require.Equal(t, "45", First("payment_terms", "Payment due in 45"))
	require.Equal(t, "", First("payment_terms", "pay whenever"))
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("tax_rate")
	require.True(t, ok)
	require.Equal(t, CategoryTax, p.Category)
	require.Equal(t, "8.5%", p.First("Sales Tax: 8.5%"))

	_, ok = Lookup("bogus")
	require.False(t, ok)
}

func TestAllIsACopy(t *testing.T) {
	first := All()
	require.NotEmpty(t, first)
	first[0] = Pattern{Name: "clobbered"}

	again := All()
	require.NotEqual(t, "clobbered", again[0].Name)
}

func TestCaseInsensitive(t *testing.T) {
	require.True(t, mustLookup(t, "invoice_number").MatchString("invoice number: abc-1"))
	require.True(t, mustLookup(t, "date_text").MatchString("signed JANUARY 2, 2024"))
}

func mustLookup(t *testing.T, name string) Pattern {
	t.Helper()
	p, ok := Lookup(name)
	require.True(t, ok)
	return p
}
