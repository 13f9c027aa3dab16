// Package goal manages savings targets.
package goal

import (
	"fmt"

	"fintrack/fintrack/cmd/root"
	"fintrack/fintrack/internal/goals"
	"fintrack/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	name       string
	target     string
	targetDate string
	note       string
	goalID     string
)

// Cmd represents the goal command.
var Cmd = &cobra.Command{
	Use:   "goal",
	Short: "Track savings goals against the ledger",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all goals",
	Run: func(cmd *cobra.Command, args []string) {
		svc := service()
		all, err := svc.List()
		if err != nil {
			root.Fail("Could not read goals", err)
		}
		if len(all) == 0 {
			root.Log.Info("No goals yet. Add one with: fintrack goal add")
			return
		}
		for _, g := range all {
			fmt.Printf("%s  %s  target %s by %s\n", g.ID, g.Name, g.TargetAmount.StringFixed(2), g.TargetDate)
		}
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a goal",
	Run: func(cmd *cobra.Command, args []string) {
		amount, err := decimal.NewFromString(target)
		if err != nil {
			root.Fail("Target amount is not a number", err)
		}
		added, err := service().Add(models.Goal{
			Name:         name,
			TargetAmount: amount,
			TargetDate:   targetDate,
			Note:         note,
		})
		if err != nil {
			root.Fail("Could not add the goal", err)
		}
		root.Log.Infof("Added goal %s (%s)", added.Name, added.ID)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a goal",
	Run: func(cmd *cobra.Command, args []string) {
		if err := service().Delete(goalID); err != nil {
			root.Fail("Could not delete the goal", err)
		}
		root.Log.Infof("Deleted goal %s", goalID)
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show progress toward each goal",
	Run: func(cmd *cobra.Command, args []string) {
		all, err := service().List()
		if err != nil {
			root.Fail("Could not read goals", err)
		}
		txs, err := root.Store.List(cmd.Context(), root.OwnerID())
		if err != nil {
			root.Fail("Could not read the ledger", err)
		}
		for _, p := range goals.MeasureProgress(all, txs) {
			fmt.Printf("%s: %s of %s (%s%%)\n",
				p.Goal.Name, p.Saved.StringFixed(2), p.Goal.TargetAmount.StringFixed(2), p.Percent)
		}
	},
}

func service() *goals.Service {
	svc, err := goals.NewService(root.Cfg.Data.Directory, root.Logger)
	if err != nil {
		root.Fail("Could not open the goals store", err)
	}
	return svc
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Goal name (required)")
	addCmd.Flags().StringVarP(&target, "target", "t", "", "Target amount (required)")
	addCmd.Flags().StringVar(&targetDate, "by", "", "Target date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&note, "note", "", "Free-form note")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("target")

	deleteCmd.Flags().StringVar(&goalID, "id", "", "Goal ID (required)")
	_ = deleteCmd.MarkFlagRequired("id")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(progressCmd)
}
