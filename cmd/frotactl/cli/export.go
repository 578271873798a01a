package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eduardopaniago/GestaoFrota/internal/adapter/export"
	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

var (
	exportYear  int
	exportMonth int
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export accountant-facing CSV reports",
}

var exportDRECmd = &cobra.Command{
	Use:   "dre",
	Short: "Export the realized income statement (DRE)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(func(snap entities.Snapshot) (string, []byte, error) {
			return export.IncomeStatementCSV(snap, exportYear, exportMonth)
		})
	},
}

var exportFuelCmd = &cobra.Command{
	Use:   "fuel",
	Short: "Export every fuel record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(func(snap entities.Snapshot) (string, []byte, error) {
			return export.FuelRecordsCSV(snap, time.Now().UTC().Format("2006-01-02"))
		})
	},
}

var exportRankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Export the yearly fleet ranking",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(func(snap entities.Snapshot) (string, []byte, error) {
			return export.FleetRankingCSV(snap, exportYear)
		})
	},
}

func runExport(build func(entities.Snapshot) (string, []byte, error)) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	filename, blob, err := build(store.Snapshot())
	if err != nil {
		return err
	}
	if exportOut != "" {
		filename = exportOut
	}
	if err := os.WriteFile(filename, blob, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	fmt.Printf("wrote %s\n", filename)
	return nil
}

func init() {
	exportCmd.PersistentFlags().IntVar(&exportYear, "year", time.Now().UTC().Year(), "report year")
	exportCmd.PersistentFlags().IntVar(&exportMonth, "month", 0, "report month (0 for the whole year)")
	exportCmd.PersistentFlags().StringVarP(&exportOut, "output", "o", "", "output file (default: report's own name)")
	exportCmd.AddCommand(exportDRECmd)
	exportCmd.AddCommand(exportFuelCmd)
	exportCmd.AddCommand(exportRankingCmd)
}
