package main

import (
	"fmt"
	"os"

	"fintrack/fintrack/cmd/advise"
	"fintrack/fintrack/cmd/export"
	"fintrack/fintrack/cmd/goal"
	importcmd "fintrack/fintrack/cmd/import"
	"fintrack/fintrack/cmd/report"
	"fintrack/fintrack/cmd/root"
	"fintrack/fintrack/cmd/scan"
	"fintrack/fintrack/cmd/tx"
	"fintrack/fintrack/cmd/upgrade"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(tx.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(goal.Cmd)
	root.Cmd.AddCommand(advise.Cmd)
	root.Cmd.AddCommand(scan.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(upgrade.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
