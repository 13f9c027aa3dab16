// Package tx manages individual ledger entries.
package tx

import (
	"fmt"

	"fintrack/fintrack/cmd/root"
	"fintrack/fintrack/internal/coerce"
	"fintrack/fintrack/internal/models"

	"github.com/spf13/cobra"
)

var (
	date         string
	direction    string
	category     string
	amount       string
	counterparty string
	memo         string
	txID         string
)

// Cmd represents the tx command.
var Cmd = &cobra.Command{
	Use:   "tx",
	Short: "Add, list and delete ledger entries",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the ledger",
	Run: func(cmd *cobra.Command, args []string) {
		txs, err := root.Store.List(cmd.Context(), root.OwnerID())
		if err != nil {
			root.Fail("Could not read the ledger", err)
		}
		if len(txs) == 0 {
			root.Log.Info("The ledger is empty")
			return
		}
		for _, t := range txs {
			fmt.Printf("%s  %s  %-7s  %s  %s  %s\n",
				t.ID, t.Date, t.Direction, t.Amount.StringFixed(2), t.Category, t.Counterparty)
		}
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a ledger entry",
	Run: func(cmd *cobra.Command, args []string) {
		entry, err := buildEntry()
		if err != nil {
			root.Fail("Invalid entry", err)
		}
		added, err := root.Store.Add(cmd.Context(), root.OwnerID(), entry)
		if err != nil {
			root.Fail("Could not store the entry", err)
		}
		root.Log.Infof("Added %s %s %s (%s)", added.Date, added.Direction, added.Amount.StringFixed(2), added.ID)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a ledger entry",
	Run: func(cmd *cobra.Command, args []string) {
		if err := root.Store.Delete(cmd.Context(), root.OwnerID(), txID); err != nil {
			root.Fail("Could not delete the entry", err)
		}
		root.Log.Infof("Deleted entry %s", txID)
	},
}

// buildEntry runs the flag values through the same coercion rules the
// importer applies, so a hand-typed entry and an imported one are held to
// identical standards.
func buildEntry() (models.Transaction, error) {
	isoDate, ok := coerce.Date(models.TextCell(date))
	if !ok {
		return models.Transaction{}, fmt.Errorf("unusable date %q", date)
	}
	value, wasNegative, ok := coerce.Amount(models.TextCell(amount))
	if !ok || value.IsZero() {
		return models.Transaction{}, fmt.Errorf("unusable amount %q", amount)
	}
	dir, ok := coerce.Direction(direction)
	if !ok {
		if !wasNegative {
			return models.Transaction{}, fmt.Errorf("unusable direction %q", direction)
		}
		dir = models.Expense
	}
	return models.Transaction{
		Date:         isoDate,
		Direction:    dir,
		Category:     category,
		Amount:       value,
		Counterparty: counterparty,
		Memo:         memo,
	}, nil
}

func init() {
	addCmd.Flags().StringVarP(&date, "date", "t", "", "Entry date (required)")
	addCmd.Flags().StringVarP(&direction, "direction", "d", "", "income or expense")
	addCmd.Flags().StringVarP(&category, "category", "c", "", "Category (required)")
	addCmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount (required)")
	addCmd.Flags().StringVarP(&counterparty, "party", "p", "", "Counterparty (required)")
	addCmd.Flags().StringVarP(&memo, "memo", "m", "", "Free-form memo")
	_ = addCmd.MarkFlagRequired("date")
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("party")

	deleteCmd.Flags().StringVar(&txID, "id", "", "Entry ID (required)")
	_ = deleteCmd.MarkFlagRequired("id")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(deleteCmd)
}
