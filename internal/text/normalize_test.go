package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf to lf", "Invoice\r\nTotal: $5.00", "Invoice\nTotal: $5.00"},
		{"bare cr to lf", "a\rb", "a\nb"},
		{"tabs become one space", "Item\t\tPrice", "Item Price"},
		{"space runs collapse", "Total:     $5.00", "Total: $5.00"},
		{"nbsp becomes space", "Total: $5.00", "Total: $5.00"},
		{"horizontal rule dropped", "Header\n--------\nBody", "Header\n\nBody"},
		{"blank runs collapse to one blank line", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces trimmed per line", "a  \nb", "a\nb"},
		{"surrounding whitespace trimmed", "\n\n  Acme Corp\n", "Acme Corp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

// Line breaks survive normalization: the extractors' positional windows
// depend on them.
func TestNormalizeKeepsLineStructure(t *testing.T) {
	in := "Acme Corp\n123 Main Street\nInvoice Number: INV-1"
	require.Equal(t, in, Normalize(in))
}

func TestNormalizeIdempotent(t *testing.T) {
	in := "Acme\tCorp\r\n\r\n\r\n\r\nTotal:   $9.99  \n====\n"
	once := Normalize(in)
	require.Equal(t, once, Normalize(once))
}
