package coerce

import (
	"testing"
	"time"

	"fintrack/fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_NativeDate(t *testing.T) {
	d, ok := Date(models.DateCell(time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)))
	require.True(t, ok)
	assert.Equal(t, "2024-03-15", d)
}

func TestDate_SpreadsheetSerial(t *testing.T) {
	// 45292 is 2024-01-01 in the 1900 date system.
	d, ok := Date(models.NumberCell(45292))
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", d)
}

func TestDate_ISOPassthrough(t *testing.T) {
	d, ok := Date(models.TextCell("2024-01-31"))
	require.True(t, ok)
	assert.Equal(t, "2024-01-31", d)
}

func TestDate_DayFirstWhenMonthImpossible(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"31/01/2024", "2024-01-31"},
		{"13.02.2024", "2024-02-13"},
		{"25-12-2024", "2024-12-25"},
	}
	for _, tt := range tests {
		d, ok := Date(models.TextCell(tt.in))
		require.True(t, ok, "expected %q to parse", tt.in)
		assert.Equal(t, tt.want, d)
	}
}

func TestDate_MonthFirstWhenDayImpossible(t *testing.T) {
	// First component could be a month, second cannot: US order.
	d, ok := Date(models.TextCell("01/31/2024"))
	require.True(t, ok)
	assert.Equal(t, "2024-01-31", d)
}

func TestDate_AmbiguousDefaultsToDayFirst(t *testing.T) {
	d, ok := Date(models.TextCell("03/04/2024"))
	require.True(t, ok)
	assert.Equal(t, "2024-04-03", d)
}

func TestDate_RejectsImpossibleCalendarDates(t *testing.T) {
	_, ok := Date(models.TextCell("31/02/2024"))
	assert.False(t, ok)
}

func TestDate_GenericFallback(t *testing.T) {
	d, ok := Date(models.TextCell("15 Jan 2024"))
	require.True(t, ok)
	assert.Equal(t, "2024-01-15", d)
}

func TestDate_FailureIsNotAnError(t *testing.T) {
	for _, in := range []string{"", "not a date", "banana/2024"} {
		d, ok := Date(models.TextCell(in))
		assert.False(t, ok, "input %q", in)
		assert.Empty(t, d)
	}
}

func TestAmount_ParenthesesMeanNegative(t *testing.T) {
	amount, neg, ok := Amount(models.TextCell("(1,250.50)"))
	require.True(t, ok)
	assert.True(t, neg)
	assert.Equal(t, "1250.50", amount.StringFixed(2))
}

func TestAmount_NumericSign(t *testing.T) {
	amount, neg, ok := Amount(models.NumberCell(-99.95))
	require.True(t, ok)
	assert.True(t, neg)
	assert.Equal(t, "99.95", amount.StringFixed(2))

	amount, neg, ok = Amount(models.NumberCell(42))
	require.True(t, ok)
	assert.False(t, neg)
	assert.Equal(t, "42.00", amount.StringFixed(2))
}

func TestAmount_StripsCurrencyAndSeparators(t *testing.T) {
	tests := []struct {
		in   string
		want string
		neg  bool
	}{
		{"CHF 1'234.56", "1234.56", false},
		{"$1,234.56", "1234.56", false},
		{"€1.234,56", "1234.56", false},
		{"1234,56", "1234.56", false},
		{"1,234", "1234.00", false},
		{"-500", "500.00", true},
		{"+500", "500.00", false},
	}
	for _, tt := range tests {
		amount, neg, ok := Amount(models.TextCell(tt.in))
		require.True(t, ok, "expected %q to parse", tt.in)
		assert.Equal(t, tt.want, amount.StringFixed(2), "input %q", tt.in)
		assert.Equal(t, tt.neg, neg, "input %q", tt.in)
	}
}

func TestAmount_NonNumericResidueFails(t *testing.T) {
	for _, in := range []string{"", "abc", "12abc34", "--"} {
		_, _, ok := Amount(models.TextCell(in))
		assert.False(t, ok, "input %q", in)
	}
}

func TestAmount_MagnitudeNeverNegative(t *testing.T) {
	amount, neg, ok := Amount(models.TextCell("(-15.00)"))
	require.True(t, ok)
	assert.True(t, neg)
	assert.False(t, amount.IsNegative())
}

func TestDirection_ExactTokens(t *testing.T) {
	tests := []struct {
		in   string
		want models.Direction
	}{
		{"income", models.Income},
		{"Revenue", models.Income},
		{"CREDIT", models.Income},
		{"in", models.Income},
		{"+", models.Income},
		{"expense", models.Expense},
		{"burn", models.Expense},
		{"debit", models.Expense},
		{"out", models.Expense},
		{"-", models.Expense},
	}
	for _, tt := range tests {
		d, ok := Direction(tt.in)
		require.True(t, ok, "token %q", tt.in)
		assert.Equal(t, tt.want, d, "token %q", tt.in)
	}
}

func TestDirection_SubstringHints(t *testing.T) {
	d, ok := Direction("Cash Inflow")
	require.True(t, ok)
	assert.Equal(t, models.Income, d)

	d, ok = Direction("monthly outflow")
	require.True(t, ok)
	assert.Equal(t, models.Expense, d)

	d, ok = Direction("other revenue stream")
	require.True(t, ok)
	assert.Equal(t, models.Income, d)
}

func TestDirection_NoMatch(t *testing.T) {
	_, ok := Direction("transfer")
	assert.False(t, ok)
	_, ok = Direction("")
	assert.False(t, ok)
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "acme corp", NormalizeText("  Acme   Corp \t"))
	assert.Equal(t, "", NormalizeText("   "))
}
