package routes

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/eduardopaniago/GestaoFrota/docs" // generated swagger docs
	"github.com/eduardopaniago/GestaoFrota/internal/adapter/persistence"
	syncadapter "github.com/eduardopaniago/GestaoFrota/internal/adapter/sync"
	"github.com/eduardopaniago/GestaoFrota/internal/infrastructure/analysis"
	"github.com/eduardopaniago/GestaoFrota/internal/infrastructure/config"
	"github.com/eduardopaniago/GestaoFrota/internal/infrastructure/payments"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

// Run wires the application together and starts the HTTP server.
func Run(cfg config.Config) error {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	store, deps, err := buildDependencies(cfg)
	if err != nil {
		return err
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLedgerRoutes(v1, store, deps)

	return router.Run(":" + strconv.Itoa(cfg.Server.Port))
}

// appDependencies groups the optional services: each one degrades to a
// clear API error when its configuration or credentials are absent.
type appDependencies struct {
	sync       *usecase.SyncUseCase
	settlement *usecase.SettlementUseCase
	entry      *usecase.EntryAnalysisUseCase
	importer   *usecase.ImportUseCase
}

func buildDependencies(cfg config.Config) (*usecase.LedgerStore, appDependencies, error) {
	kv, err := persistence.New(cfg.Data.Driver, cfg.Data.Dir)
	if err != nil {
		return nil, appDependencies{}, fmt.Errorf("building persistence: %w", err)
	}
	store := usecase.NewLedgerStore(kv)

	backend, err := syncadapter.New(context.Background(), cfg.Sync)
	if err != nil {
		return nil, appDependencies{}, fmt.Errorf("building sync backend: %w", err)
	}
	deps := appDependencies{
		sync:     usecase.NewSyncUseCase(store, backend, cfg.Sync.Key, cfg.Sync.Timeout),
		importer: usecase.NewImportUseCase(store),
	}

	var gateway interfaces.IPaymentGateway
	if cfg.Payments.Enabled {
		mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
		if err != nil {
			log.Warn().Err(err).Msg("payment gateway not configured")
		} else {
			gateway = mpGateway
		}
	}
	deps.settlement = usecase.NewSettlementUseCase(store, gateway)

	var analyzer interfaces.IEntryAnalyzer
	openaiAnalyzer, err := analysis.NewOpenAIAnalyzer(os.Getenv("OPENAI_API_KEY"), cfg.AI.Model)
	if err != nil {
		log.Warn().Err(err).Msg("entry analyzer not configured")
	} else {
		analyzer = openaiAnalyzer
	}
	deps.entry = usecase.NewEntryAnalysisUseCase(store, analyzer)

	return store, deps, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
	router.Use(cors.Default())
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
