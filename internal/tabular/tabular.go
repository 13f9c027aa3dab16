// Package tabular extracts raw records from the three supported input
// encodings: spreadsheet workbooks, delimited text and JSON. It only
// tabularizes; all value interpretation happens later in the coercion and
// import layers. Failures here are structural and fatal to the import.
package tabular

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fintrack/fintrack/internal/importerror"
	"fintrack/fintrack/internal/models"
)

// ParseFile dispatches on the file extension: .xlsx/.xlsm for workbooks,
// .json for JSON, anything else is treated as delimited text.
func ParseFile(path string) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ParseXLSX(f)
	case ".json":
		return ParseJSON(f)
	default:
		return ParseCSV(f)
	}
}

// makeCell types a raw string cell: values that parse as numbers become
// number cells so spreadsheet date serials and plain numeric amounts are
// treated the same across all tabular sources; everything else stays text.
func makeCell(s string) models.CellValue {
	trimmed := strings.TrimSpace(s)
	if trimmed != "" {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return models.NumberCell(n)
		}
	}
	return models.TextCell(s)
}

// tableToRecords converts a header row plus data rows into RawRecords.
// The first row with any non-blank cell is the header; columns with blank
// headers are dropped; short rows are padded, long rows truncated. Fully
// blank data rows are skipped.
func tableToRecords(rows [][]string, source string) ([]models.RawRecord, error) {
	headerIdx := -1
	for i, row := range rows {
		if !rowBlank(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, &importerror.StructuralError{Source: source, Msg: "no header row found"}
	}

	header := rows[headerIdx]
	var records []models.RawRecord
	for _, row := range rows[headerIdx+1:] {
		if rowBlank(row) {
			continue
		}
		record := make(models.RawRecord, len(header))
		for col, name := range header {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			var value string
			if col < len(row) {
				value = row[col]
			}
			record[name] = makeCell(value)
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return nil, &importerror.StructuralError{Source: source, Msg: "no data rows found"}
	}
	return records, nil
}

func rowBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
