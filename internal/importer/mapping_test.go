package importer

import (
	"testing"

	"fintrack/fintrack/internal/importerror"
	"fintrack/fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordWithHeaders(headers ...string) models.RawRecord {
	rec := make(models.RawRecord, len(headers))
	for _, h := range headers {
		rec[h] = models.TextCell("x")
	}
	return rec
}

func TestDetectMapping_BasicHeaders(t *testing.T) {
	records := []models.RawRecord{
		recordWithHeaders("Date", "Payee", "Category", "Amount", "Type", "Memo"),
	}
	mapping, err := DetectMapping(records)
	require.NoError(t, err)
	assert.Equal(t, "Date", mapping.DateColumn)
	assert.Equal(t, "Payee", mapping.CounterpartyColumn)
	assert.Equal(t, "Category", mapping.CategoryColumn)
	assert.Equal(t, "Amount", mapping.AmountColumn)
	assert.Equal(t, "Type", mapping.DirectionColumn)
	assert.Equal(t, "Memo", mapping.MemoColumn)
}

func TestDetectMapping_NormalizesHeaders(t *testing.T) {
	records := []models.RawRecord{
		recordWithHeaders("Posting Date", "counter_party", "Expense Category", "Amount (CHF)"),
	}
	mapping, err := DetectMapping(records)
	require.NoError(t, err)
	assert.Equal(t, "Posting Date", mapping.DateColumn)
	assert.Equal(t, "counter_party", mapping.CounterpartyColumn)
	assert.Equal(t, "Expense Category", mapping.CategoryColumn)
	assert.Equal(t, "Amount (CHF)", mapping.AmountColumn)
	assert.Empty(t, mapping.DirectionColumn)
	assert.Empty(t, mapping.MemoColumn)
}

func TestDetectMapping_CandidatePriority(t *testing.T) {
	// "date" outranks "postingdate" regardless of header order.
	records := []models.RawRecord{
		recordWithHeaders("Posting Date", "Date", "Vendor", "Category", "Amount"),
	}
	mapping, err := DetectMapping(records)
	require.NoError(t, err)
	assert.Equal(t, "Date", mapping.DateColumn)
}

func TestDetectMapping_AmountPrefixFallback(t *testing.T) {
	records := []models.RawRecord{
		recordWithHeaders("Date", "Vendor", "Category", "AmountUSD"),
	}
	mapping, err := DetectMapping(records)
	require.NoError(t, err)
	assert.Equal(t, "AmountUSD", mapping.AmountColumn)
}

func TestDetectMapping_MissingRequiredRole(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		role    string
	}{
		{"no date", []string{"Payee", "Category", "Amount"}, "date"},
		{"no counterparty", []string{"Date", "Category", "Amount"}, "counterparty"},
		{"no category", []string{"Date", "Payee", "Amount"}, "category"},
		{"no amount", []string{"Date", "Payee", "Category"}, "amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DetectMapping([]models.RawRecord{recordWithHeaders(tt.headers...)})
			require.Error(t, err)
			var mappingErr *importerror.MappingError
			require.ErrorAs(t, err, &mappingErr)
			assert.Equal(t, tt.role, mappingErr.Role)
		})
	}
}

func TestDetectMapping_EmptyInput(t *testing.T) {
	_, err := DetectMapping(nil)
	require.Error(t, err)
	var structural *importerror.StructuralError
	assert.ErrorAs(t, err, &structural)
}

func TestDetectMapping_OrderIndependent(t *testing.T) {
	// Maps don't preserve order, so simulate permutation with two records
	// built from the same header set in different insertion orders.
	a := recordWithHeaders("Date", "Payee", "Category", "Amount", "Memo")
	b := recordWithHeaders("Memo", "Amount", "Category", "Payee", "Date")

	mappingA, err := DetectMapping([]models.RawRecord{a})
	require.NoError(t, err)
	mappingB, err := DetectMapping([]models.RawRecord{b})
	require.NoError(t, err)
	assert.Equal(t, mappingA, mappingB)
}
