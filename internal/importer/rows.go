package importer

import (
	"strings"

	"fintrack/fintrack/internal/coerce"
	"fintrack/fintrack/internal/models"
)

// Row validation reasons. These are user-facing and listed per row number
// in the import preview.
const (
	reasonBadDate        = "Invalid or missing date"
	reasonNoCounterparty = "Missing counterparty"
	reasonNoCategory     = "Missing category"
	reasonBadAmount      = "Invalid or missing amount"
	reasonZeroAmount     = "Amount must not be zero"
)

// BuildImportRows applies a fixed column mapping and the coercion rules to
// every record, producing one ImportRowResult per processed row. Only the
// first MaxImportRows records are processed. Row numbers are 1-based and
// account for the header row, so the first data row reports as row 2.
//
// defaultDirection is the file-level direction chosen by the user; it is an
// explicit parameter so the pipeline stays a pure function of its inputs.
// It applies only when a row has no usable direction label and a
// non-negative amount.
func BuildImportRows(records []models.RawRecord, mapping models.ColumnMapping, defaultDirection models.Direction) []models.ImportRowResult {
	if len(records) > MaxImportRows {
		records = records[:MaxImportRows]
	}
	if !defaultDirection.IsValid() {
		defaultDirection = models.Expense
	}

	results := make([]models.ImportRowResult, 0, len(records))
	for i, rec := range records {
		results = append(results, buildRow(rec, mapping, defaultDirection, i+2))
	}
	return results
}

// buildRow validates one record. The four required fields are checked
// independently so a bad row reports every problem at once; direction is
// resolved only when all of them pass.
func buildRow(rec models.RawRecord, mapping models.ColumnMapping, defaultDirection models.Direction, rowNumber int) models.ImportRowResult {
	result := models.ImportRowResult{RowNumber: rowNumber}

	date, dateOK := coerce.Date(rec[mapping.DateColumn])
	if !dateOK {
		result.Errors = append(result.Errors, reasonBadDate)
	}
	counterparty := strings.TrimSpace(rec[mapping.CounterpartyColumn].String())
	if counterparty == "" {
		result.Errors = append(result.Errors, reasonNoCounterparty)
	}
	category := strings.TrimSpace(rec[mapping.CategoryColumn].String())
	if category == "" {
		result.Errors = append(result.Errors, reasonNoCategory)
	}
	amount, wasNegative, amountOK := coerce.Amount(rec[mapping.AmountColumn])
	if !amountOK {
		result.Errors = append(result.Errors, reasonBadAmount)
	} else if amount.IsZero() {
		result.Errors = append(result.Errors, reasonZeroAmount)
	}
	if len(result.Errors) > 0 {
		return result
	}

	// Direction precedence: explicit column value, then the accounting sign
	// of the amount, then the file-level default.
	var direction models.Direction
	if mapping.DirectionColumn != "" {
		if d, ok := coerce.Direction(rec[mapping.DirectionColumn].String()); ok {
			direction = d
		}
	}
	if direction == "" {
		if wasNegative {
			direction = models.Expense
		} else {
			direction = defaultDirection
		}
	}

	var memo string
	if mapping.MemoColumn != "" {
		memo = strings.TrimSpace(rec[mapping.MemoColumn].String())
	}

	result.Transaction = &models.Transaction{
		Date:         date,
		Direction:    direction,
		Category:     category,
		Amount:       amount,
		Counterparty: counterparty,
		Memo:         memo,
	}
	return result
}
