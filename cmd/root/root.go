// Package root contains the root command for the application.
package root

import (
	"os"

	"fintrack/fintrack/internal/config"
	"fintrack/fintrack/internal/ledger"
	"fintrack/fintrack/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logrus instance for commands.
	Log = logrus.New()

	// Logger is the adapter view of Log that internal packages take.
	Logger logging.Logger = logging.FromLogrus(Log)

	// Cfg is the loaded application configuration, available to every
	// subcommand after PersistentPreRun.
	Cfg *config.Config

	// Store is the ledger store backing all commands.
	Store ledger.Store

	// Owner overrides the configured ledger owner when set.
	Owner string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "fintrack",
		Short: "A bookkeeping CLI for small businesses.",
		Long: `fintrack keeps a simple cash-flow ledger and imports bank and
spreadsheet exports into it: column mapping, value coercion, duplicate
detection and batch commit, plus reports, goals and an AI advisor.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fintrack!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			Log = config.ConfigureLogging(cfg)
			Logger = logging.FromLogrus(Log)

			store, err := ledger.NewFileStore(cfg.Data.Directory, Logger)
			if err != nil {
				Log.Fatalf("Failed to open ledger store: %v", err)
			}
			Store = store
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVar(&Owner, "owner", "", "Ledger owner (defaults to the configured owner)")
}

// OwnerID resolves the active ledger owner from the flag or configuration.
func OwnerID() string {
	if Owner != "" {
		return Owner
	}
	return Cfg.Data.Owner
}

// Fail logs the error and exits. Commands use it for unrecoverable errors so
// exit behavior stays consistent.
func Fail(msg string, err error) {
	Log.WithError(err).Error(msg)
	os.Exit(1)
}
