package v1

import (
	"github.com/gin-gonic/gin"

	"freshstock/internal/core/clock"
	"freshstock/internal/domain/audit"
	"freshstock/internal/domain/batches"
	"freshstock/internal/domain/catalogs/buyer"
	"freshstock/internal/domain/catalogs/product"
	"freshstock/internal/domain/catalogs/section"
	"freshstock/internal/domain/catalogs/seller"
	"freshstock/internal/domain/catalogs/warehouse"
	"freshstock/internal/domain/comments"
	"freshstock/internal/domain/orders"
	"freshstock/internal/infrastructure/http/v1/handlers"
	"freshstock/internal/infrastructure/http/v1/middleware"
	"freshstock/internal/infrastructure/storage/postgres"
	"freshstock/internal/infrastructure/storage/postgres/catalog_repo"
	"freshstock/internal/infrastructure/storage/postgres/document_repo"
	"freshstock/internal/infrastructure/storage/postgres/register_repo"
	"freshstock/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (used by health checks).
	Pool *postgres.Pool

	// TxManager manages database transactions.
	TxManager *postgres.TxManager

	// Logger for request logging.
	Logger *logger.Logger

	// Clock drives freshness-window arithmetic. Defaults to the system clock.
	Clock clock.Clock

	// Auditor records mutations. Defaults to a no-op recorder.
	Auditor audit.Recorder
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}
	if cfg.Auditor == nil {
		cfg.Auditor = audit.Nop{}
	}

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

	baseHandler := handlers.NewBaseHandler()

	// Repositories
	sellerRepo := catalog_repo.NewSellerRepo(cfg.TxManager)
	buyerRepo := catalog_repo.NewBuyerRepo(cfg.TxManager)
	warehouseRepo := catalog_repo.NewWarehouseRepo(cfg.TxManager)
	sectionRepo := catalog_repo.NewSectionRepo(cfg.TxManager)
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	batchRepo := register_repo.NewBatchStockRepo(cfg.TxManager)
	orderRepo := document_repo.NewPurchaseOrderRepo(cfg.TxManager)
	commentRepo := document_repo.NewCommentRepo(cfg.TxManager)

	// Services
	sellerService := seller.NewService(sellerRepo, cfg.TxManager)
	buyerService := buyer.NewService(buyerRepo, cfg.TxManager)
	warehouseService := warehouse.NewService(warehouseRepo, cfg.TxManager)
	sectionService := section.NewService(sectionRepo, warehouseRepo, cfg.TxManager)
	productService := product.NewService(productRepo, sellerRepo, cfg.TxManager)
	batchService := batches.NewService(batchRepo, productService, sectionService, cfg.TxManager, cfg.Clock, cfg.Auditor)
	orderValidator := orders.NewValidator(batchService, cfg.Clock)
	orderService := orders.NewService(orderRepo, buyerService, productService, orderValidator, batchService, cfg.TxManager, cfg.Auditor)
	commentService := comments.NewService(commentRepo, productService, buyerService, cfg.TxManager)

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		RegisterCatalogRoutes(apiV1.Group("/sellers"), handlers.NewSellerHandler(baseHandler, sellerService))
		RegisterCatalogRoutes(apiV1.Group("/buyers"), handlers.NewBuyerHandler(baseHandler, buyerService))
		RegisterCatalogRoutes(apiV1.Group("/warehouses"), handlers.NewWarehouseHandler(baseHandler, warehouseService))

		sectionHandler := handlers.NewSectionHandler(baseHandler, sectionService)
		sections := apiV1.Group("/sections")
		RegisterCatalogRoutes(sections, sectionHandler)
		sections.GET("/warehouse/:id", sectionHandler.ListByWarehouse)

		productHandler := handlers.NewProductHandler(baseHandler, productService)
		products := apiV1.Group("/products")
		RegisterCatalogRoutes(products, productHandler)
		products.GET("/seller/:id", productHandler.ListBySeller)
		products.GET("/category/:category", productHandler.ListByCategory)

		batchHandler := handlers.NewBatchHandler(baseHandler, batchService)
		batchGroup := apiV1.Group("/batches")
		{
			batchGroup.POST("", batchHandler.Admit)
			batchGroup.GET("", batchHandler.ListByProduct)
			batchGroup.GET("/:id", batchHandler.Get)
			batchGroup.GET("/section/:id", batchHandler.ListBySection)
			batchGroup.GET("/availability/:productId", batchHandler.Availability)
		}

		orderHandler := handlers.NewPurchaseOrderHandler(baseHandler, orderService)
		orderGroup := apiV1.Group("/purchase-orders")
		{
			orderGroup.POST("", orderHandler.Create)
			orderGroup.GET("", orderHandler.List)
			orderGroup.GET("/:id", orderHandler.Get)
			orderGroup.PATCH("/:id/status", orderHandler.UpdateStatus)
		}

		commentHandler := handlers.NewCommentHandler(baseHandler, commentService)
		commentGroup := apiV1.Group("/comments")
		{
			commentGroup.POST("", commentHandler.Create)
			commentGroup.GET("/:id", commentHandler.Get)
			commentGroup.GET("/product/:id", commentHandler.ListByProduct)
			commentGroup.PUT("/:id", commentHandler.Update)
			commentGroup.DELETE("/:id", commentHandler.Delete)
		}
	}

	return router
}
