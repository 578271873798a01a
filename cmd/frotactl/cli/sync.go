package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	syncadapter "github.com/eduardopaniago/GestaoFrota/internal/adapter/sync"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push or pull the cloud backup",
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the local ledger to the configured backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		sync, err := buildSync()
		if err != nil {
			return err
		}
		stamp, err := sync.Upload(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("backup uploaded at %s\n", stamp)
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace the local ledger with the remote backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		sync, err := buildSync()
		if err != nil {
			return err
		}
		if err := sync.Download(context.Background()); err != nil {
			return err
		}
		fmt.Println("backup restored")
		return nil
	},
}

func buildSync() (*usecase.SyncUseCase, error) {
	store, cfg, err := openStore()
	if err != nil {
		return nil, err
	}
	backend, err := syncadapter.New(context.Background(), cfg.Sync)
	if err != nil {
		return nil, fmt.Errorf("building sync backend: %w", err)
	}
	return usecase.NewSyncUseCase(store, backend, cfg.Sync.Key, cfg.Sync.Timeout), nil
}

func init() {
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
}
