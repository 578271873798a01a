package sync

import (
	"context"
	"fmt"
	"os"

	"github.com/eduardopaniago/GestaoFrota/internal/infrastructure/config"
	"github.com/eduardopaniago/GestaoFrota/internal/infrastructure/database"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

// New builds the configured backend. An empty backend name disables sync
// and returns nil without error.
func New(ctx context.Context, cfg config.SyncConfig) (interfaces.ISyncBackend, error) {
	switch cfg.Backend {
	case "":
		return nil, nil
	case "dynamo":
		ddb, err := database.NewDynamoDBClient(ctx)
		if err != nil {
			return nil, err
		}
		return NewDynamoBackend(ddb, cfg.DynamoTable), nil
	case "redis":
		return NewRedisBackend(cfg.RedisAddr)
	case "github":
		return NewGitHubBackend(os.Getenv("GITHUB_TOKEN"), cfg.GitHubOwner, cfg.GitHubRepo, cfg.GitHubBranch, cfg.GitHubPath)
	case "sheets":
		return NewSheetsBackend(ctx, cfg.SheetURL)
	case "pantry":
		return NewPantryBackend(cfg.PantryID)
	}
	return nil, fmt.Errorf("unknown sync backend %q", cfg.Backend)
}
