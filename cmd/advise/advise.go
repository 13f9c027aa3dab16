// Package advise is the AI CFO chat command.
package advise

import (
	"fmt"
	"strings"
	"time"

	"fintrack/fintrack/cmd/root"
	"fintrack/fintrack/internal/advisor"

	"github.com/spf13/cobra"
)

var record bool

// Cmd represents the advise command.
var Cmd = &cobra.Command{
	Use:   "advise [question]",
	Short: "Ask the AI advisor about your finances",
	Long: `Advise sends your question together with a digest of the ledger to
the configured model and prints its answer. When the answer proposes
ledger entries, pass --record to validate and store them.`,
	Args: cobra.MinimumNArgs(1),
	Run:  adviseFunc,
}

func adviseFunc(cmd *cobra.Command, args []string) {
	if !root.Cfg.AI.Enabled {
		root.Fail("The advisor is disabled", fmt.Errorf("set ai.enabled=true or FINTRACK_AI_ENABLED=true"))
	}

	ctx := cmd.Context()
	question := strings.Join(args, " ")

	txs, err := root.Store.List(ctx, root.OwnerID())
	if err != nil {
		root.Fail("Could not read the ledger", err)
	}

	client := advisor.NewGeminiClient(
		root.Cfg.AI.APIKey,
		root.Cfg.AI.Model,
		time.Duration(root.Cfg.AI.TimeoutSeconds)*time.Second,
		root.Logger,
	)
	reply, err := client.Advise(ctx, question, txs)
	if err != nil {
		root.Fail("The advisor did not answer", err)
	}
	fmt.Println(reply)

	proposed := advisor.ParseProposedEntries(reply)
	if len(proposed) == 0 {
		return
	}
	if !record {
		root.Log.Infof("The advisor proposed %d entries; rerun with --record to store them", len(proposed))
		return
	}
	for _, entry := range proposed {
		added, err := root.Store.Add(ctx, root.OwnerID(), entry)
		if err != nil {
			root.Log.Warnf("Could not store proposed entry: %v", err)
			continue
		}
		root.Log.Infof("Recorded %s %s %s (%s)", added.Date, added.Direction, added.Amount.StringFixed(2), added.ID)
	}
}

func init() {
	Cmd.Flags().BoolVar(&record, "record", false, "Store ledger entries the advisor proposes")
}
