package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDocType(t *testing.T) {
	tests := []struct {
		in     string
		want   DocType
		wantOK bool
	}{
		{"invoice", DocTypeInvoice, true},
		{"  Invoice  ", DocTypeInvoice, true},
		{"CONTRACT", DocTypeContract, true},
		{"cv", DocTypeResume, true},
		{"legal_doc", DocTypeLegal, true},
		{"legal_document", DocTypeLegal, true},
		{"agreement", DocTypeContract, true},
		{"receipt", DocTypeInvoice, true},
		{"unknown", DocTypeUnknown, true},
		{"spreadsheet", DocTypeUnknown, false},
		{"", DocTypeUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDocType(tt.in)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNormalizeExt(t *testing.T) {
	require.Equal(t, "txt", NormalizeExt(".TXT"))
	require.Equal(t, "md", NormalizeExt("md"))
	require.Equal(t, "", NormalizeExt("."))
}
