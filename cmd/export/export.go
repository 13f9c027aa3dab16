// Package export writes the ledger out as CSV or a spreadsheet.
package export

import (
	"os"
	"path/filepath"
	"strings"

	"fintrack/fintrack/cmd/root"
	"fintrack/fintrack/internal/exporter"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to a CSV or XLSX file",
	Run:   exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	txs, err := root.Store.List(cmd.Context(), root.OwnerID())
	if err != nil {
		root.Fail("Could not read the ledger", err)
	}

	f, err := os.Create(output)
	if err != nil {
		root.Fail("Could not create the output file", err)
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(output)) {
	case ".xlsx":
		err = exporter.WriteXLSX(f, txs)
	default:
		err = exporter.WriteCSV(f, txs)
	}
	if err != nil {
		root.Fail("Export failed", err)
	}
	root.Log.Infof("Exported %d entries to %s", len(txs), output)
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (.csv or .xlsx) (required)")
	_ = Cmd.MarkFlagRequired("output")
}
