// Package vision turns receipt images into draft transactions through an
// external vision model. The model is a black box: image in, structured
// text out; everything it returns is re-validated through the coercion
// rules before it becomes a draft.
package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"fintrack/fintrack/internal/coerce"
	"fintrack/fintrack/internal/models"
)

// Scanner extracts a draft transaction from a receipt image. mimeSubtype is
// the image format ("jpeg", "png").
type Scanner interface {
	Scan(ctx context.Context, image []byte, mimeSubtype string) (models.Transaction, error)
}

// receiptPayload is the JSON shape the model is instructed to emit.
type receiptPayload struct {
	Date         string      `json:"date"`
	Counterparty string      `json:"counterparty"`
	Category     string      `json:"category"`
	Amount       json.Number `json:"amount"`
	Memo         string      `json:"memo"`
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// parseReceipt validates the model's reply into a draft transaction.
// Receipts are always expenses. The reply may wrap the JSON in a fence.
func parseReceipt(reply string) (models.Transaction, error) {
	body := strings.TrimSpace(reply)
	if m := fenceRe.FindStringSubmatch(body); m != nil {
		body = strings.TrimSpace(m[1])
	}

	var payload receiptPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return models.Transaction{}, fmt.Errorf("parsing receipt reply: %w", err)
	}

	date, ok := coerce.Date(models.TextCell(payload.Date))
	if !ok {
		return models.Transaction{}, fmt.Errorf("receipt reply has no usable date: %q", payload.Date)
	}
	amount, _, ok := coerce.Amount(models.TextCell(payload.Amount.String()))
	if !ok || amount.IsZero() {
		return models.Transaction{}, fmt.Errorf("receipt reply has no usable amount: %q", payload.Amount)
	}
	counterparty := strings.TrimSpace(payload.Counterparty)
	if counterparty == "" {
		return models.Transaction{}, fmt.Errorf("receipt reply has no counterparty")
	}
	category := strings.TrimSpace(payload.Category)
	if category == "" {
		category = "Uncategorized"
	}

	return models.Transaction{
		Date:         date,
		Direction:    models.Expense,
		Category:     category,
		Amount:       amount,
		Counterparty: counterparty,
		Memo:         strings.TrimSpace(payload.Memo),
	}, nil
}
