// Package reports derives financial statements from a ledger: dashboard
// KPIs, a simplified balance sheet and monthly summaries. All aggregation
// is pure arithmetic over the transaction slice.
package reports

import (
	"sort"

	"fintrack/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Dashboard holds the headline KPIs shown on the main screen.
type Dashboard struct {
	Income        decimal.Decimal `json:"income"`
	Expenses      decimal.Decimal `json:"expenses"`
	Net           decimal.Decimal `json:"net"`
	Transactions  int             `json:"transactions"`
	TopCategories []CategoryTotal `json:"top_categories"`
}

// CategoryTotal is an expense category with its accumulated spend.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// BalanceSheet is the simplified statement: assets are cumulative income,
// liabilities cumulative expenses, equity the difference.
type BalanceSheet struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}

// MonthlyRow summarizes one calendar month.
type MonthlyRow struct {
	Month    string          `json:"month"` // YYYY-MM
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// topCategoryCount caps how many expense categories the dashboard lists.
const topCategoryCount = 5

// BuildDashboard computes the dashboard KPIs for a ledger.
func BuildDashboard(txs []models.Transaction) Dashboard {
	d := Dashboard{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}
	byCategory := make(map[string]decimal.Decimal)
	for i := range txs {
		tx := &txs[i]
		d.Transactions++
		if tx.IsIncome() {
			d.Income = d.Income.Add(tx.Amount)
		} else {
			d.Expenses = d.Expenses.Add(tx.Amount)
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
		}
	}
	d.Net = d.Income.Sub(d.Expenses)

	for category, total := range byCategory {
		d.TopCategories = append(d.TopCategories, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(d.TopCategories, func(i, j int) bool {
		if !d.TopCategories[i].Total.Equal(d.TopCategories[j].Total) {
			return d.TopCategories[i].Total.GreaterThan(d.TopCategories[j].Total)
		}
		return d.TopCategories[i].Category < d.TopCategories[j].Category
	})
	if len(d.TopCategories) > topCategoryCount {
		d.TopCategories = d.TopCategories[:topCategoryCount]
	}
	return d
}

// BuildBalanceSheet computes the simplified balance sheet.
func BuildBalanceSheet(txs []models.Transaction) BalanceSheet {
	sheet := BalanceSheet{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
	}
	for i := range txs {
		if txs[i].IsIncome() {
			sheet.Assets = sheet.Assets.Add(txs[i].Amount)
		} else {
			sheet.Liabilities = sheet.Liabilities.Add(txs[i].Amount)
		}
	}
	sheet.Equity = sheet.Assets.Sub(sheet.Liabilities)
	return sheet
}

// BuildMonthly groups the ledger by calendar month, ascending. Transactions
// whose date is too short to carry a YYYY-MM prefix are ignored.
func BuildMonthly(txs []models.Transaction) []MonthlyRow {
	byMonth := make(map[string]*MonthlyRow)
	for i := range txs {
		tx := &txs[i]
		if len(tx.Date) < 7 {
			continue
		}
		month := tx.Date[:7]
		row, ok := byMonth[month]
		if !ok {
			row = &MonthlyRow{Month: month, Income: decimal.Zero, Expenses: decimal.Zero}
			byMonth[month] = row
		}
		if tx.IsIncome() {
			row.Income = row.Income.Add(tx.Amount)
		} else {
			row.Expenses = row.Expenses.Add(tx.Amount)
		}
	}

	rows := make([]MonthlyRow, 0, len(byMonth))
	for _, row := range byMonth {
		row.Net = row.Income.Sub(row.Expenses)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}
