// Package ledger defines the transaction store consumed by the import
// pipeline and the rest of the application, plus a YAML-file-backed
// implementation for local use.
package ledger

import (
	"context"

	"fintrack/fintrack/internal/models"
)

// Store is the ledger collaborator. Add assigns the transaction's identity;
// callers never set IDs. Writes are issued at most once per row by the
// import pipeline and carry no idempotency key, so a failed-but-applied
// write cannot be told apart from a true failure.
type Store interface {
	// List returns every transaction owned by ownerID.
	List(ctx context.Context, ownerID string) ([]models.Transaction, error)

	// Add stores a transaction and returns it with its assigned ID.
	Add(ctx context.Context, ownerID string, tx models.Transaction) (models.Transaction, error)

	// Delete removes a transaction by ID.
	Delete(ctx context.Context, ownerID, id string) error
}
