package importer

import (
	"strings"

	"fintrack/fintrack/internal/coerce"
	"fintrack/fintrack/internal/models"
)

// Duplicate classification reasons, in the order they are checked.
const (
	ReasonDuplicateInFile  = "Duplicate within import file"
	ReasonExactDuplicate   = "Already exists in your cash flow"
	ReasonDirectionDiffers = "Similar entry exists (type differs)"
)

// reconciliationKey derives the tuple used to decide two transactions "are
// the same": ISO date, normalized counterparty, normalized category, and the
// amount rounded to two decimals. Direction is deliberately excluded; the
// directed variant below adds it back for the exact-match refinement.
func reconciliationKey(t *models.Transaction) string {
	return strings.Join([]string{
		t.Date,
		coerce.NormalizeText(t.Counterparty),
		coerce.NormalizeText(t.Category),
		t.Amount.Round(2).StringFixed(2),
	}, "|")
}

func directedKey(key string, d models.Direction) string {
	return key + "|" + string(d)
}

// ClassifyDuplicates flags rows that likely already exist, either earlier in
// the same file or in the ledger snapshot taken when the import opened. The
// snapshot is not refreshed mid-session; a concurrent edit to the ledger is
// not detected.
//
// Rows are visited in file order and every classified row's key is added to
// the in-file set regardless of outcome, so a third occurrence of a key is
// still flagged against the first. Rows with validation errors never
// participate. The input slice is not mutated; classification of the same
// inputs is idempotent.
func ClassifyDuplicates(rows []models.ImportRowResult, existing []models.Transaction) []models.ImportRowResult {
	existingKeys := make(map[string]struct{}, len(existing))
	existingDirected := make(map[string]struct{}, len(existing))
	for i := range existing {
		k := reconciliationKey(&existing[i])
		existingKeys[k] = struct{}{}
		existingDirected[directedKey(k, existing[i].Direction)] = struct{}{}
	}

	out := make([]models.ImportRowResult, len(rows))
	copy(out, rows)

	seenInFile := make(map[string]struct{}, len(rows))
	for i := range out {
		row := &out[i]
		if !row.IsValid() {
			continue
		}
		key := reconciliationKey(row.Transaction)
		if _, dup := seenInFile[key]; dup {
			row.IsDuplicate = true
			row.DuplicateReason = ReasonDuplicateInFile
		} else if _, dup := existingKeys[key]; dup {
			row.IsDuplicate = true
			if _, exact := existingDirected[directedKey(key, row.Transaction.Direction)]; exact {
				row.DuplicateReason = ReasonExactDuplicate
			} else {
				row.DuplicateReason = ReasonDirectionDiffers
			}
		}
		seenInFile[key] = struct{}{}
	}
	return out
}
