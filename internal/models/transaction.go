// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// Direction classifies a transaction amount as money coming in or going out.
type Direction string

const (
	Income  Direction = "INCOME"
	Expense Direction = "EXPENSE"
)

// IsValid reports whether d is one of the two known directions.
func (d Direction) IsValid() bool {
	return d == Income || d == Expense
}

// Transaction is the canonical ledger entry. Amount is always a positive
// magnitude; the sign lives in Direction, never in Amount.
type Transaction struct {
	ID           string          `yaml:"id" json:"id" csv:"ID"`
	Date         string          `yaml:"date" json:"date" csv:"Date"` // YYYY-MM-DD
	Direction    Direction       `yaml:"direction" json:"direction" csv:"Direction"`
	Category     string          `yaml:"category" json:"category" csv:"Category"`
	Amount       decimal.Decimal `yaml:"amount" json:"amount" csv:"Amount"`
	Counterparty string          `yaml:"counterparty" json:"counterparty" csv:"Counterparty"`
	Memo         string          `yaml:"memo,omitempty" json:"memo" csv:"Memo"`
}

// IsIncome returns true if the transaction brings money in.
func (t *Transaction) IsIncome() bool {
	return t.Direction == Income
}

// IsExpense returns true if the transaction takes money out.
func (t *Transaction) IsExpense() bool {
	return t.Direction == Expense
}

// SignedAmount returns the amount with the direction applied as a sign,
// negative for expenses. Used by report arithmetic only; stored amounts
// stay positive.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}
