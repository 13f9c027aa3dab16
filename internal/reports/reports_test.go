package reports

import (
	"testing"

	"fintrack/fintrack/internal/logging"
	"fintrack/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(date string, direction models.Direction, category string, amount float64) models.Transaction {
	return models.Transaction{
		Date:      date,
		Direction: direction,
		Category:  category,
		Amount:    decimal.NewFromFloat(amount),
	}
}

func TestBuildDashboard(t *testing.T) {
	ledger := []models.Transaction{
		tx("2024-01-05", models.Income, "Sales", 5000),
		tx("2024-01-10", models.Expense, "Rent", 1200),
		tx("2024-01-12", models.Expense, "Software", 300),
		tx("2024-02-01", models.Expense, "Rent", 1200),
	}
	d := BuildDashboard(ledger)

	assert.True(t, d.Income.Equal(decimal.NewFromInt(5000)))
	assert.True(t, d.Expenses.Equal(decimal.NewFromInt(2700)))
	assert.True(t, d.Net.Equal(decimal.NewFromInt(2300)))
	assert.Equal(t, 4, d.Transactions)

	require.Len(t, d.TopCategories, 2)
	assert.Equal(t, "Rent", d.TopCategories[0].Category)
	assert.True(t, d.TopCategories[0].Total.Equal(decimal.NewFromInt(2400)))
	assert.Equal(t, "Software", d.TopCategories[1].Category)
}

func TestBuildDashboard_CapsTopCategoriesAtFive(t *testing.T) {
	var ledger []models.Transaction
	for _, category := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		ledger = append(ledger, tx("2024-01-01", models.Expense, category, 10))
	}
	d := BuildDashboard(ledger)
	assert.Len(t, d.TopCategories, 5)
}

func TestBuildDashboard_TiesBreakByName(t *testing.T) {
	ledger := []models.Transaction{
		tx("2024-01-01", models.Expense, "Zeta", 10),
		tx("2024-01-01", models.Expense, "Alpha", 10),
	}
	d := BuildDashboard(ledger)
	require.Len(t, d.TopCategories, 2)
	assert.Equal(t, "Alpha", d.TopCategories[0].Category)
}

func TestBuildDashboard_EmptyLedger(t *testing.T) {
	d := BuildDashboard(nil)
	assert.True(t, d.Income.IsZero())
	assert.True(t, d.Expenses.IsZero())
	assert.True(t, d.Net.IsZero())
	assert.Zero(t, d.Transactions)
	assert.Empty(t, d.TopCategories)
}

func TestBuildBalanceSheet(t *testing.T) {
	ledger := []models.Transaction{
		tx("2024-01-05", models.Income, "Sales", 5000),
		tx("2024-01-10", models.Expense, "Rent", 1200),
	}
	sheet := BuildBalanceSheet(ledger)
	assert.True(t, sheet.Assets.Equal(decimal.NewFromInt(5000)))
	assert.True(t, sheet.Liabilities.Equal(decimal.NewFromInt(1200)))
	assert.True(t, sheet.Equity.Equal(decimal.NewFromInt(3800)))
}

func TestBuildMonthly(t *testing.T) {
	ledger := []models.Transaction{
		tx("2024-02-01", models.Expense, "Rent", 1200),
		tx("2024-01-05", models.Income, "Sales", 5000),
		tx("2024-01-10", models.Expense, "Rent", 1200),
		{Date: "bad", Direction: models.Expense, Amount: decimal.NewFromInt(99)},
	}
	rows := BuildMonthly(ledger)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-01", rows[0].Month)
	assert.True(t, rows[0].Income.Equal(decimal.NewFromInt(5000)))
	assert.True(t, rows[0].Expenses.Equal(decimal.NewFromInt(1200)))
	assert.True(t, rows[0].Net.Equal(decimal.NewFromInt(3800)))

	assert.Equal(t, "2024-02", rows[1].Month)
	assert.True(t, rows[1].Net.Equal(decimal.NewFromInt(-1200)))
}

func TestRenderJSON(t *testing.T) {
	g := NewGenerator(logging.NewMock())
	out, err := g.RenderJSON(BalanceSheet{
		Assets:      decimal.NewFromInt(100),
		Liabilities: decimal.NewFromInt(40),
		Equity:      decimal.NewFromInt(60),
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"assets": "100"`)
	assert.Contains(t, string(out), `"equity": "60"`)
}
