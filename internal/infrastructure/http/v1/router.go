// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"gestock/internal/domain/catalogs/article"
	"gestock/internal/domain/catalogs/category"
	"gestock/internal/domain/movements"
	"gestock/internal/domain/stats"
	"gestock/internal/infrastructure/http/v1/handlers"
	"gestock/internal/infrastructure/http/v1/middleware"
	"gestock/internal/infrastructure/storage/postgres"
	"gestock/internal/infrastructure/storage/postgres/catalog_repo"
	"gestock/internal/infrastructure/storage/postgres/movement_repo"
	"gestock/internal/infrastructure/storage/postgres/stats_repo"
	"gestock/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool
	Pool *postgres.Pool

	// TxManager owns database transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		registerCatalogRoutes(apiV1, cfg)
		registerStockRoutes(apiV1, cfg)
	}

	return router
}

// registerCatalogRoutes registers category and article endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	categoryRepo := catalog_repo.NewCategoryRepo(cfg.TxManager)
	categoryService := category.NewService(categoryRepo)
	categoryHandler := handlers.NewCategoryHandler(baseHandler, categoryService)
	categoryHandler.RegisterRoutes(rg.Group("/categories"))

	articleRepo := catalog_repo.NewArticleRepo(cfg.TxManager)
	articleService := article.NewService(articleRepo, categoryRepo)
	articleHandler := handlers.NewArticleHandler(baseHandler, articleService)
	articleHandler.RegisterRoutes(rg.Group("/articles"))
}

// registerStockRoutes registers movement and statistics endpoints.
func registerStockRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	articleRepo := catalog_repo.NewArticleRepo(cfg.TxManager)
	entryRepo := movement_repo.NewEntryRepo(cfg.TxManager)
	exitRepo := movement_repo.NewExitRepo(cfg.TxManager)
	ledger := movements.NewLedger(articleRepo, entryRepo, exitRepo)

	statsService := stats.NewService(stats_repo.NewStatsRepo(cfg.TxManager))

	stock := rg.Group("/stock")

	entryService := movements.NewEntryService(ledger, cfg.TxManager)
	entryHandler := handlers.NewEntryHandler(baseHandler, entryService, statsService)
	entryHandler.RegisterRoutes(stock.Group("/entries"))

	exitService := movements.NewExitService(ledger, cfg.TxManager)
	exitHandler := handlers.NewExitHandler(baseHandler, exitService, statsService)
	exitHandler.RegisterRoutes(stock.Group("/exits"))
}
