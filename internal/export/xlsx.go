// Package export renders batch extraction results for delivery.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/docsift/docsift/internal/entity"
	"github.com/docsift/docsift/internal/pipeline"
)

// Service produces XLSX workbooks and JSON lines from in-memory batch
// results. Nothing is persisted here; the caller owns the output streams.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// InvoicesXLSX returns an XLSX workbook (as bytes) summarizing the invoice
// records in results. Non-invoice and failed results are skipped.
func (s *Service) InvoicesXLSX(results []pipeline.Result) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Source File",
		"Vendor",
		"Customer",
		"Invoice Number",
		"Invoice Date",
		"Due Date",
		"Subtotal",
		"Tax",
		"Total",
		"Currency",
		"Line Items",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	exported := 0
	for _, r := range results {
		inv, ok := r.Record.(*entity.InvoiceRecord)
		if !ok || r.Err != "" {
			continue
		}
		values := []any{
			r.Path,
			inv.VendorName,
			inv.CustomerName,
			inv.InvoiceNumber,
			inv.InvoiceDate,
			inv.DueDate,
			inv.Subtotal,
			inv.TaxAmount,
			inv.TotalAmount,
			inv.CurrencyDetected,
			len(inv.LineItems),
			inv.ConfidenceScore,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
		exported++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	s.logger.Info("export.xlsx.ok",
		"invoices", exported,
		"skipped", len(results)-exported,
		"duration", time.Since(start),
	)
	return buf.Bytes(), nil
}

// WriteJSONL streams every result as one JSON object per line.
func (s *Service) WriteJSONL(w io.Writer, results []pipeline.Result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding result for %s: %w", r.Path, err)
		}
	}
	return nil
}
