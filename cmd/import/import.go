// Package importcmd handles ledger file imports.
package importcmd

import (
	"fintrack/fintrack/cmd/root"
	"fintrack/fintrack/internal/coerce"
	"fintrack/fintrack/internal/importer"
	"fintrack/fintrack/internal/models"
	"fintrack/fintrack/internal/tabular"

	"github.com/spf13/cobra"
)

var (
	file      string
	direction string
	decision  string
	dryRun    bool
)

// Cmd represents the import command.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from a spreadsheet, CSV or JSON file",
	Long: `Import reads a tabular file, detects which columns hold the date,
counterparty, category and amount, validates every row and writes the
accepted rows to the ledger. Rows that look like duplicates are flagged;
use --decision to skip or include them.`,
	Run: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	owner := root.OwnerID()

	root.Log.Infof("Importing %s for owner %s", file, owner)

	records, err := tabular.ParseFile(file)
	if err != nil {
		root.Fail("Could not read the import file", err)
	}

	mapping, err := importer.DetectMapping(records)
	if err != nil {
		root.Fail("Could not map the file's columns", err)
	}

	defaultDirection := resolveDirection()
	rows := importer.BuildImportRows(records, mapping, defaultDirection)

	existing, err := root.Store.List(ctx, owner)
	if err != nil {
		root.Fail("Could not read the existing ledger", err)
	}
	rows = importer.ClassifyDuplicates(rows, existing)

	stats := importer.Preview(rows)
	for _, row := range rows {
		if !row.IsValid() {
			root.Log.Warnf("Row %d skipped: %v", row.RowNumber, row.Errors)
			continue
		}
		if row.IsDuplicate {
			root.Log.Infof("Row %d flagged: %s", row.RowNumber, row.DuplicateReason)
		}
	}
	root.Log.Infof("Preview: %d valid, %d invalid, %d duplicate", stats.Valid, stats.Invalid, stats.Duplicate)

	if dryRun {
		root.Log.Infof("Dry run: %d rows would be written with --decision=%s",
			stats.ReadyCount(importer.Decision(decision)), decisionOrDefault())
		return
	}

	summary, err := importer.Commit(ctx, rows, importer.Decision(decision), root.Store, owner, root.Logger)
	if err != nil {
		root.Fail("Import failed", err)
	}
	root.Log.Infof("Imported %d of %d rows (%d failed)", summary.Done-summary.Failed, summary.Total, summary.Failed)
}

// resolveDirection picks the direction for rows that carry no usable
// direction of their own: the flag when set, the configured default
// otherwise.
func resolveDirection() models.Direction {
	value := direction
	if value == "" {
		value = root.Cfg.Import.DefaultDirection
	}
	if d, ok := coerce.Direction(value); ok {
		return d
	}
	return models.Expense
}

func decisionOrDefault() string {
	if decision == "" {
		return string(importer.DecisionSkip)
	}
	return decision
}

func init() {
	Cmd.Flags().StringVarP(&file, "file", "i", "", "Input file (.xlsx, .csv or .json) (required)")
	Cmd.Flags().StringVarP(&direction, "direction", "d", "", "Default direction for rows without one (income or expense)")
	Cmd.Flags().StringVar(&decision, "decision", "", "What to do with duplicate rows: skip or include")
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the import without writing anything")
	_ = Cmd.MarkFlagRequired("file")
}
