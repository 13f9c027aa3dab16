package tabular

import (
	"encoding/csv"
	"io"
	"strings"

	"fintrack/fintrack/internal/importerror"
	"fintrack/fintrack/internal/models"
)

// ParseCSV extracts records from delimited text. The delimiter is sniffed
// from the first line (comma, semicolon or tab, whichever occurs most).
// Rows are read leniently: variable field counts are allowed and short rows
// are padded later during table conversion.
func ParseCSV(r io.Reader) ([]models.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &importerror.StructuralError{Source: "csv", Msg: "could not read input", Err: err}
	}
	text := string(data)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &importerror.StructuralError{Source: "csv", Msg: "could not parse delimited text", Err: err}
	}
	return tableToRecords(rows, "csv")
}

// sniffDelimiter picks the delimiter with the most occurrences in the first
// line, defaulting to comma.
func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	best, bestCount := ',', strings.Count(line, ",")
	for _, candidate := range []rune{';', '\t'} {
		if count := strings.Count(line, string(candidate)); count > bestCount {
			best, bestCount = candidate, count
		}
	}
	return best
}
