// Package advisor is the AI "CFO" chat surface. The model is treated as a
// prompt-in/text-out black box behind the Client interface; replies may
// carry proposed ledger entries in a fenced JSON block, which are validated
// through the coercion rules before anything is written to the ledger.
package advisor

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"fintrack/fintrack/internal/coerce"
	"fintrack/fintrack/internal/models"
	"fintrack/fintrack/internal/reports"
)

// Client answers a user question given a digest of their ledger.
type Client interface {
	Advise(ctx context.Context, question string, ledger []models.Transaction) (string, error)
}

// digestEntryCount caps how many recent transactions the prompt carries.
const digestEntryCount = 25

// BuildDigest summarizes a ledger for inclusion in a prompt: headline
// totals plus the most recent entries.
func BuildDigest(txs []models.Transaction) string {
	sheet := reports.BuildBalanceSheet(txs)

	var b strings.Builder
	b.WriteString("Ledger summary:\n")
	b.WriteString("- total income: " + sheet.Assets.StringFixed(2) + "\n")
	b.WriteString("- total expenses: " + sheet.Liabilities.StringFixed(2) + "\n")
	b.WriteString("- net: " + sheet.Equity.StringFixed(2) + "\n")
	b.WriteString("- transactions: " + strconv.Itoa(len(txs)) + "\n")

	start := len(txs) - digestEntryCount
	if start < 0 {
		start = 0
	}
	if start < len(txs) {
		b.WriteString("Recent entries (date, direction, category, amount, counterparty):\n")
	}
	for _, tx := range txs[start:] {
		b.WriteString("- " + tx.Date + " " + string(tx.Direction) + " " + tx.Category +
			" " + tx.Amount.StringFixed(2) + " " + tx.Counterparty + "\n")
	}
	return b.String()
}

// proposedEntry is the wire shape the model is instructed to emit.
type proposedEntry struct {
	Date         string      `json:"date"`
	Direction    string      `json:"direction"`
	Category     string      `json:"category"`
	Amount       json.Number `json:"amount"`
	Counterparty string      `json:"counterparty"`
	Memo         string      `json:"memo"`
}

var entriesBlockRe = regexp.MustCompile("(?s)```entries\\s*(.*?)```")

// ParseProposedEntries extracts ledger entries proposed in an advisor reply.
// Entries live in a fenced block tagged "entries" holding a JSON array;
// each entry is re-validated through the coercion rules and invalid entries
// are dropped. A reply without a block yields no entries, not an error.
func ParseProposedEntries(reply string) []models.Transaction {
	m := entriesBlockRe.FindStringSubmatch(reply)
	if m == nil {
		return nil
	}
	var proposals []proposedEntry
	if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &proposals); err != nil {
		return nil
	}

	var out []models.Transaction
	for _, p := range proposals {
		date, ok := coerce.Date(models.TextCell(p.Date))
		if !ok {
			continue
		}
		amount, wasNegative, ok := coerce.Amount(models.TextCell(p.Amount.String()))
		if !ok || amount.IsZero() {
			continue
		}
		direction, ok := coerce.Direction(p.Direction)
		if !ok {
			if wasNegative {
				direction = models.Expense
			} else {
				continue
			}
		}
		counterparty := strings.TrimSpace(p.Counterparty)
		category := strings.TrimSpace(p.Category)
		if counterparty == "" || category == "" {
			continue
		}
		out = append(out, models.Transaction{
			Date:         date,
			Direction:    direction,
			Category:     category,
			Amount:       amount,
			Counterparty: counterparty,
			Memo:         strings.TrimSpace(p.Memo),
		})
	}
	return out
}
