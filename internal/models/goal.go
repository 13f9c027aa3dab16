package models

import "github.com/shopspring/decimal"

// Goal is a company savings or revenue target tracked against the ledger.
type Goal struct {
	ID           string          `yaml:"id" json:"id"`
	Name         string          `yaml:"name" json:"name"`
	TargetAmount decimal.Decimal `yaml:"target_amount" json:"target_amount"`
	TargetDate   string          `yaml:"target_date,omitempty" json:"target_date"` // YYYY-MM-DD, optional
	Note         string          `yaml:"note,omitempty" json:"note"`
}
