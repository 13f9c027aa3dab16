package importer

import (
	"context"
	"errors"
	"fmt"

	"fintrack/fintrack/internal/ledger"
	"fintrack/fintrack/internal/logging"
	"fintrack/fintrack/internal/models"
)

// Decision is the user's choice for rows flagged as duplicates.
type Decision string

const (
	DecisionNone    Decision = ""
	DecisionSkip    Decision = "skip"
	DecisionInclude Decision = "include"
)

var (
	// ErrDecisionRequired blocks a commit while duplicates exist and the
	// user has not chosen to skip or include them.
	ErrDecisionRequired = errors.New("duplicates found: decide whether to skip or include them before committing")

	// ErrNothingToImport reports that no committable rows remain after
	// filtering; the ledger store is never contacted in that case.
	ErrNothingToImport = errors.New("nothing to import")
)

// Summary is the aggregate outcome of one batch commit. Done counts rows
// attempted (including failures), Total the rows selected for commit, and
// Failed the per-row write failures.
type Summary struct {
	Done   int
	Total  int
	Failed int
}

// PreviewStats aggregates an import preview for the user.
type PreviewStats struct {
	Valid     int
	Invalid   int
	Duplicate int
}

// Preview counts valid, invalid and duplicate rows.
func Preview(rows []models.ImportRowResult) PreviewStats {
	var stats PreviewStats
	for i := range rows {
		switch {
		case !rows[i].IsValid():
			stats.Invalid++
		default:
			stats.Valid++
			if rows[i].IsDuplicate {
				stats.Duplicate++
			}
		}
	}
	return stats
}

// ReadyCount reports how many rows a commit with the given decision would
// write: every valid row when duplicates are included, valid minus duplicate
// rows when they are skipped.
func (s PreviewStats) ReadyCount(decision Decision) int {
	if decision == DecisionInclude {
		return s.Valid
	}
	return s.Valid - s.Duplicate
}

// Commit writes the user-approved rows to the ledger store, one at a time
// and in file order. Sequential writes bound the burst rate against the
// store and keep ordering deterministic. A per-row failure is counted and
// the batch continues; already-committed rows are never rolled back.
//
// Cancellation is honored between rows: once ctx is done the loop stops and
// the partial summary is returned with the context error.
func Commit(ctx context.Context, rows []models.ImportRowResult, decision Decision, store ledger.Store, ownerID string, logger logging.Logger) (Summary, error) {
	switch decision {
	case DecisionNone, DecisionSkip, DecisionInclude:
	default:
		return Summary{}, fmt.Errorf("unknown import decision %q", decision)
	}

	hasDuplicates := false
	selected := make([]models.ImportRowResult, 0, len(rows))
	for i := range rows {
		if rows[i].IsDuplicate {
			hasDuplicates = true
		}
		if !rows[i].IsValid() {
			continue
		}
		if rows[i].IsDuplicate && decision != DecisionInclude {
			continue
		}
		selected = append(selected, rows[i])
	}
	if hasDuplicates && decision == DecisionNone {
		return Summary{}, ErrDecisionRequired
	}
	if len(selected) == 0 {
		return Summary{}, ErrNothingToImport
	}

	summary := Summary{Total: len(selected)}
	for _, row := range selected {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if _, err := store.Add(ctx, ownerID, *row.Transaction); err != nil {
			summary.Failed++
			logger.WithError(err).Warn("Failed to write imported row",
				logging.Field{Key: "row", Value: row.RowNumber})
		}
		summary.Done++
	}
	if summary.Failed > 0 {
		logger.Warn("Import finished with failures",
			logging.Field{Key: "done", Value: summary.Done},
			logging.Field{Key: "failed", Value: summary.Failed})
	}
	return summary, nil
}
