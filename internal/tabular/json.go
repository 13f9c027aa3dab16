package tabular

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"fintrack/fintrack/internal/importerror"
	"fintrack/fintrack/internal/models"
)

// jsonDocument is the wrapped form: an object carrying a transactions array.
type jsonDocument struct {
	Transactions []json.RawMessage `json:"transactions"`
}

// ParseJSON extracts records from a JSON document: either a top-level array
// of row objects or an object with a "transactions" array. Array entries
// that are not objects are discarded silently.
func ParseJSON(r io.Reader) ([]models.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &importerror.StructuralError{Source: "json", Msg: "could not read input", Err: err}
	}

	entries, err := jsonEntries(data)
	if err != nil {
		return nil, err
	}

	var records []models.RawRecord
	for _, entry := range entries {
		var obj map[string]any
		if err := json.Unmarshal(entry, &obj); err != nil {
			// Not an object; discard.
			continue
		}
		record := make(models.RawRecord, len(obj))
		for key, value := range obj {
			cell, ok := jsonCell(value)
			if !ok {
				continue
			}
			record[key] = cell
		}
		if len(record) > 0 {
			records = append(records, record)
		}
	}
	if len(records) == 0 {
		return nil, &importerror.StructuralError{Source: "json", Msg: "no row objects found"}
	}
	return records, nil
}

func jsonEntries(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &importerror.StructuralError{Source: "json", Msg: "empty document"}
	}
	switch trimmed[0] {
	case '[':
		var entries []json.RawMessage
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, &importerror.StructuralError{Source: "json", Msg: "could not parse array", Err: err}
		}
		return entries, nil
	case '{':
		var doc jsonDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, &importerror.StructuralError{Source: "json", Msg: "could not parse object", Err: err}
		}
		if doc.Transactions == nil {
			return nil, &importerror.StructuralError{Source: "json", Msg: "object has no transactions array"}
		}
		return doc.Transactions, nil
	default:
		return nil, &importerror.StructuralError{Source: "json", Msg: "document is neither an array nor an object"}
	}
}

// jsonCell maps a decoded JSON scalar to a cell. Nested arrays and objects
// are not representable as cells and are dropped.
func jsonCell(value any) (models.CellValue, bool) {
	switch v := value.(type) {
	case string:
		return models.TextCell(v), true
	case float64:
		return models.NumberCell(v), true
	case bool:
		return models.TextCell(strconv.FormatBool(v)), true
	case nil:
		return models.TextCell(""), true
	default:
		return models.CellValue{}, false
	}
}
