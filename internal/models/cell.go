package models

import (
	"strconv"
	"time"
)

// CellKind tags the variant held by a CellValue.
type CellKind int

const (
	CellText CellKind = iota
	CellNumber
	CellDate
)

// CellValue is a single cell as handed over by a format-specific extractor.
// Spreadsheet cells may arrive as native numbers or dates; CSV and JSON
// cells arrive as text or numbers. Coercion functions switch on Kind
// instead of probing dynamic types.
type CellValue struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

// TextCell wraps a string value.
func TextCell(s string) CellValue {
	return CellValue{Kind: CellText, Text: s}
}

// NumberCell wraps a numeric value.
func NumberCell(f float64) CellValue {
	return CellValue{Kind: CellNumber, Number: f}
}

// DateCell wraps a native date value.
func DateCell(t time.Time) CellValue {
	return CellValue{Kind: CellDate, Date: t}
}

// String renders the cell for text-oriented consumers (counterparty,
// category, memo lookups). Dates render as ISO calendar dates.
func (c CellValue) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		return c.Date.UTC().Format("2006-01-02")
	default:
		return c.Text
	}
}

// RawRecord maps a column header to the cell value extracted for one row.
// Headers are preserved verbatim; lookups through a ColumnMapping use the
// exact header strings the mapping was built from.
type RawRecord map[string]CellValue
