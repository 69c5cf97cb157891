package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/docsift/docsift/constants"
	"github.com/docsift/docsift/internal/entity"
	"github.com/docsift/docsift/internal/pipeline"
)

func sampleResults() []pipeline.Result {
	return []pipeline.Result{
		{
			Path:    "invoices/a.txt",
			DocType: constants.DocTypeInvoice,
			Status:  constants.JobStatusExtracted,
			Record: &entity.InvoiceRecord{
				VendorName:       "Acme Corp",
				InvoiceNumber:    "INV-1",
				TotalAmount:      "99.00",
				CurrencyDetected: "USD",
				LineItems:        []entity.LineItem{{ItemNumber: "1"}},
				ConfidenceScore:  0.8,
			},
		},
		{
			Path:    "contracts/b.txt",
			DocType: constants.DocTypeContract,
			Status:  constants.JobStatusExtracted,
			Record:  &entity.ContractRecord{ContractType: "service"},
		},
		{
			Path:    "invoices/broken.txt",
			DocType: constants.DocTypeInvoice,
			Status:  constants.JobStatusFailed,
			Err:     "reading document: no such file",
		},
	}
}

func TestInvoicesXLSX(t *testing.T) {
	svc := NewService(nil)
	book, err := svc.InvoicesXLSX(sampleResults())
	require.NoError(t, err)
	require.NotEmpty(t, book)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	// header plus the one successful invoice; contract and failed rows skipped
	require.Len(t, rows, 2)
	require.Equal(t, "Source File", rows[0][0])
	require.Equal(t, "invoices/a.txt", rows[1][0])
	require.Equal(t, "Acme Corp", rows[1][1])
}

func TestWriteJSONL(t *testing.T) {
	svc := NewService(nil)
	var buf bytes.Buffer
	require.NoError(t, svc.WriteJSONL(&buf, sampleResults()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		var obj map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &obj))
		require.Contains(t, obj, "doc_type")
	}
}
