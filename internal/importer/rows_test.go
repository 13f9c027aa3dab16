package importer

import (
	"fmt"
	"testing"

	"fintrack/fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMapping = models.ColumnMapping{
	DateColumn:         "Date",
	CounterpartyColumn: "Payee",
	CategoryColumn:     "Category",
	AmountColumn:       "Amount",
	DirectionColumn:    "Type",
	MemoColumn:         "Memo",
}

func validRecord(overrides map[string]models.CellValue) models.RawRecord {
	rec := models.RawRecord{
		"Date":     models.TextCell("2024-03-01"),
		"Payee":    models.TextCell("Acme"),
		"Category": models.TextCell("Rent"),
		"Amount":   models.TextCell("500.00"),
		"Type":     models.TextCell("expense"),
		"Memo":     models.TextCell(""),
	}
	for k, v := range overrides {
		rec[k] = v
	}
	return rec
}

func TestBuildImportRows_ValidRow(t *testing.T) {
	rows := BuildImportRows([]models.RawRecord{validRecord(nil)}, testMapping, models.Expense)
	require.Len(t, rows, 1)
	row := rows[0]
	require.True(t, row.IsValid())
	assert.Equal(t, 2, row.RowNumber, "first data row sits under the header")
	assert.Equal(t, "2024-03-01", row.Transaction.Date)
	assert.Equal(t, models.Expense, row.Transaction.Direction)
	assert.Equal(t, "Acme", row.Transaction.Counterparty)
	assert.Equal(t, "Rent", row.Transaction.Category)
	assert.Equal(t, "500.00", row.Transaction.Amount.StringFixed(2))
	assert.Empty(t, row.Transaction.Memo)
}

func TestBuildImportRows_AccumulatesAllFieldErrors(t *testing.T) {
	rec := validRecord(map[string]models.CellValue{
		"Date":   models.TextCell("garbage"),
		"Payee":  models.TextCell("  "),
		"Amount": models.TextCell("n/a"),
	})
	rows := BuildImportRows([]models.RawRecord{rec}, testMapping, models.Expense)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Transaction)
	assert.Len(t, rows[0].Errors, 3)
}

func TestBuildImportRows_ZeroAmountRejected(t *testing.T) {
	rec := validRecord(map[string]models.CellValue{"Amount": models.TextCell("0.00")})
	rows := BuildImportRows([]models.RawRecord{rec}, testMapping, models.Expense)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsValid())
}

func TestBuildImportRows_DirectionPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		direction models.CellValue
		amount    models.CellValue
		fileDef   models.Direction
		want      models.Direction
	}{
		{"explicit column wins", models.TextCell("income"), models.TextCell("(100)"), models.Expense, models.Income},
		{"negative amount implies expense", models.TextCell(""), models.TextCell("(100)"), models.Income, models.Expense},
		{"minus sign implies expense", models.TextCell(""), models.TextCell("-100"), models.Income, models.Expense},
		{"file default applies last", models.TextCell(""), models.TextCell("100"), models.Income, models.Income},
		{"unrecognized label falls through", models.TextCell("transfer"), models.TextCell("100"), models.Expense, models.Expense},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord(map[string]models.CellValue{
				"Type":   tt.direction,
				"Amount": tt.amount,
			})
			rows := BuildImportRows([]models.RawRecord{rec}, testMapping, tt.fileDef)
			require.True(t, rows[0].IsValid())
			assert.Equal(t, tt.want, rows[0].Transaction.Direction)
		})
	}
}

func TestBuildImportRows_NoDirectionColumn(t *testing.T) {
	mapping := testMapping
	mapping.DirectionColumn = ""
	mapping.MemoColumn = ""

	rec := validRecord(nil)
	rows := BuildImportRows([]models.RawRecord{rec}, mapping, models.Income)
	require.True(t, rows[0].IsValid())
	assert.Equal(t, models.Income, rows[0].Transaction.Direction)
	assert.Empty(t, rows[0].Transaction.Memo)
}

func TestBuildImportRows_RowCap(t *testing.T) {
	records := make([]models.RawRecord, 1500)
	for i := range records {
		records[i] = validRecord(map[string]models.CellValue{
			"Memo": models.TextCell(fmt.Sprintf("row %d", i)),
		})
	}
	rows := BuildImportRows(records, testMapping, models.Expense)
	assert.Len(t, rows, MaxImportRows)
	assert.Equal(t, MaxImportRows+1, rows[len(rows)-1].RowNumber)
}
