package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eduardopaniago/GestaoFrota/internal/adapter/http/handlers"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

func addLedgerRoutes(rg *gin.RouterGroup, store *usecase.LedgerStore, deps appDependencies) {
	taxonomyHandler := handlers.NewTaxonomyHandler(store)
	transactionHandler := handlers.NewTransactionHandler(store)
	fuelHandler := handlers.NewFuelHandler(store)
	maintenanceHandler := handlers.NewMaintenanceHandler(store)
	budgetHandler := handlers.NewBudgetHandler(store)
	reportHandler := handlers.NewReportHandler(store)
	freightHandler := handlers.NewFreightHandler(store)
	exportHandler := handlers.NewExportHandler(store)
	settingsHandler := handlers.NewSettingsHandler(store)
	syncHandler := handlers.NewSyncHandler(deps.sync, store)
	settlementHandler := handlers.NewSettlementHandler(deps.settlement)
	entryHandler := handlers.NewEntryHandler(deps.entry)
	importHandler := handlers.NewImportHandler(deps.importer)

	categories := rg.Group("/categories")
	{
		categories.GET("", taxonomyHandler.ListCategories)
		categories.POST("", taxonomyHandler.CreateCategory)
		categories.DELETE("/:id", taxonomyHandler.DeleteCategory)
	}

	cargoTypes := rg.Group("/cargo-types")
	{
		cargoTypes.GET("", taxonomyHandler.ListCargoTypes)
		cargoTypes.POST("", taxonomyHandler.CreateCargoType)
		cargoTypes.DELETE("/:id", taxonomyHandler.DeleteCargoType)
	}

	trucks := rg.Group("/trucks")
	{
		trucks.GET("", taxonomyHandler.ListTrucks)
		trucks.POST("", taxonomyHandler.CreateTruck)
		trucks.DELETE("/:id", taxonomyHandler.DeleteTruck)
	}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", transactionHandler.List)
		transactions.POST("", transactionHandler.Create)
		transactions.GET("/pending", transactionHandler.Pending)
		transactions.DELETE("/:id", transactionHandler.Delete)
		transactions.PATCH("/:id/pay", transactionHandler.MarkAsPaid)
		transactions.PATCH("/:id/postpone", transactionHandler.Postpone)
		transactions.POST("/:id/charge", settlementHandler.Charge)
	}

	fuelRecords := rg.Group("/fuel-records")
	{
		fuelRecords.GET("", fuelHandler.List)
		fuelRecords.POST("", fuelHandler.Create)
		fuelRecords.DELETE("/:id", fuelHandler.Delete)
	}

	maintenances := rg.Group("/maintenances")
	{
		maintenances.GET("", maintenanceHandler.List)
		maintenances.POST("", maintenanceHandler.Create)
		maintenances.PUT("/:id", maintenanceHandler.Update)
		maintenances.DELETE("/:id", maintenanceHandler.Delete)
		maintenances.GET("/:id/items", maintenanceHandler.ListItems)
		maintenances.POST("/:id/items", maintenanceHandler.AddItem)
	}

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", budgetHandler.List)
		budgets.POST("", budgetHandler.Create)
		budgets.DELETE("/:id", budgetHandler.Delete)
		budgets.POST("/:id/options", budgetHandler.AddOption)
		budgets.DELETE("/:id/options/:optionId", budgetHandler.DeleteOption)
		budgets.PATCH("/:id/options/:optionId/select", budgetHandler.SelectOption)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/dre", reportHandler.IncomeStatement)
		reports.GET("/monthly", reportHandler.MonthlyTrend)
		reports.GET("/categories", reportHandler.CategoryTotals)
		reports.GET("/fleet", reportHandler.FleetReport)
		reports.GET("/fuel", reportHandler.FuelEfficiency)
	}

	freight := rg.Group("/freight")
	{
		freight.POST("/quote", freightHandler.Quote)
		freight.POST("/save", freightHandler.Save)
	}

	exports := rg.Group("/exports")
	{
		exports.GET("/dre", exportHandler.IncomeStatementCSV)
		exports.GET("/fuel", exportHandler.FuelRecordsCSV)
		exports.GET("/ranking", exportHandler.FleetRankingCSV)
	}

	sync := rg.Group("/sync")
	{
		sync.GET("/status", syncHandler.Status)
		sync.POST("/upload", syncHandler.Upload)
		sync.POST("/download", syncHandler.Download)
	}

	entries := rg.Group("/entries")
	{
		entries.POST("/analyze", entryHandler.Analyze)
		entries.POST("/confirm", entryHandler.Confirm)
	}

	rg.POST("/import", importHandler.ImportCSV)

	settings := rg.Group("/settings")
	{
		settings.GET("", settingsHandler.Get)
		settings.PUT("/company", settingsHandler.SetCompanyName)
		settings.PUT("/user", settingsHandler.SetUser)
		settings.DELETE("/user", settingsHandler.ClearUser)
	}
}
