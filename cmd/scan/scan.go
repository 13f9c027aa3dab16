// Package scan turns receipt images into ledger entries.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fintrack/fintrack/cmd/root"
	"fintrack/fintrack/internal/vision"

	"github.com/spf13/cobra"
)

var (
	image  string
	record bool
)

// Cmd represents the scan command.
var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Extract a draft expense from a receipt image",
	Long: `Scan sends a receipt photo to the configured vision model and prints
the extracted expense. Pass --record to store it in the ledger.`,
	Run: scanFunc,
}

func scanFunc(cmd *cobra.Command, args []string) {
	if !root.Cfg.AI.Enabled {
		root.Fail("Receipt scanning is disabled", fmt.Errorf("set ai.enabled=true or FINTRACK_AI_ENABLED=true"))
	}

	data, err := os.ReadFile(image)
	if err != nil {
		root.Fail("Could not read the image", err)
	}
	subtype, err := mimeSubtype(image)
	if err != nil {
		root.Fail("Unsupported image type", err)
	}

	scanner := vision.NewGeminiScanner(
		root.Cfg.AI.APIKey,
		root.Cfg.AI.Model,
		time.Duration(root.Cfg.AI.TimeoutSeconds)*time.Second,
		root.Logger,
	)
	draft, err := scanner.Scan(cmd.Context(), data, subtype)
	if err != nil {
		root.Fail("Could not extract a transaction from the receipt", err)
	}

	fmt.Printf("%s  %s  %s  %s  %s\n",
		draft.Date, draft.Direction, draft.Amount.StringFixed(2), draft.Category, draft.Counterparty)

	if !record {
		root.Log.Info("Draft not stored; rerun with --record to add it to the ledger")
		return
	}
	added, err := root.Store.Add(cmd.Context(), root.OwnerID(), draft)
	if err != nil {
		root.Fail("Could not store the draft", err)
	}
	root.Log.Infof("Recorded receipt as entry %s", added.ID)
}

func mimeSubtype(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".png":
		return "png", nil
	case ".webp":
		return "webp", nil
	default:
		return "", fmt.Errorf("want a .jpg, .png or .webp image, got %s", path)
	}
}

func init() {
	Cmd.Flags().StringVarP(&image, "image", "i", "", "Receipt image file (required)")
	Cmd.Flags().BoolVar(&record, "record", false, "Store the extracted expense")
	_ = Cmd.MarkFlagRequired("image")
}
