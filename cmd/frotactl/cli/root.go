// Package cli implements frotactl, the operations companion to the API
// server: CSV exports and manual backup push/pull against the same data
// directory and sync configuration the server uses.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eduardopaniago/GestaoFrota/internal/adapter/persistence"
	"github.com/eduardopaniago/GestaoFrota/internal/infrastructure/config"
	"github.com/eduardopaniago/GestaoFrota/internal/infrastructure/logger"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "frotactl",
	Short:   "frotactl - fleet ledger operations from the terminal",
	Version: version,
	Long: `frotactl works directly on the ledger data directory used by the
API server. It exports the accountant-facing CSV reports and pushes or
pulls cloud backups without the server running.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		logger.Setup("warn", "console")
	})
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(syncCmd)
}

// openStore loads configuration and the ledger the same way the API does.
func openStore() (*usecase.LedgerStore, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("loading configuration: %w", err)
	}
	kv, err := persistence.New(cfg.Data.Driver, cfg.Data.Dir)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("opening ledger data: %w", err)
	}
	return usecase.NewLedgerStore(kv), cfg, nil
}
