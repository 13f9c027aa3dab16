// Package report renders financial statements from the ledger.
package report

import (
	"fmt"

	"fintrack/fintrack/cmd/root"
	"fintrack/fintrack/internal/reports"

	"github.com/spf13/cobra"
)

var reportType string

// Cmd represents the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Show dashboard, balance sheet or monthly figures",
	Long: `Report aggregates the ledger into one of three statements:
dashboard (headline KPIs and top expense categories), balance (the
simplified balance sheet) or monthly (per-month income and expenses).`,
	Run: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) {
	txs, err := root.Store.List(cmd.Context(), root.OwnerID())
	if err != nil {
		root.Fail("Could not read the ledger", err)
	}

	var report any
	switch reportType {
	case "dashboard":
		report = reports.BuildDashboard(txs)
	case "balance":
		report = reports.BuildBalanceSheet(txs)
	case "monthly":
		report = reports.BuildMonthly(txs)
	default:
		root.Fail("Unknown report type", fmt.Errorf("want dashboard, balance or monthly, got %q", reportType))
	}

	out, err := reports.NewGenerator(root.Logger).RenderJSON(report)
	if err != nil {
		root.Fail("Could not render the report", err)
	}
	fmt.Println(string(out))
}

func init() {
	Cmd.Flags().StringVarP(&reportType, "type", "t", "dashboard", "Report type: dashboard, balance or monthly")
}
