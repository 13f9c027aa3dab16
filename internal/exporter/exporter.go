// Package exporter writes ledgers out as CSV or spreadsheet files. This is
// plain serialization; nothing on this path parses or coerces values.
package exporter

import (
	"fmt"
	"io"

	"fintrack/fintrack/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// WriteCSV serializes transactions as CSV with a header row.
func WriteCSV(w io.Writer, txs []models.Transaction) error {
	if err := gocsv.Marshal(&txs, w); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

var xlsxHeader = []any{"ID", "Date", "Direction", "Category", "Amount", "Counterparty", "Memo"}

// WriteXLSX serializes transactions as a single-sheet workbook.
func WriteXLSX(w io.Writer, txs []models.Transaction) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}
	for i, tx := range txs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		amount, _ := tx.Amount.Float64()
		row := []any{tx.ID, tx.Date, string(tx.Direction), tx.Category, amount, tx.Counterparty, tx.Memo}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
