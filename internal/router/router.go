// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/shoplabs/shop-backend/internal/config"
	"github.com/shoplabs/shop-backend/internal/handlers"
	"github.com/shoplabs/shop-backend/internal/middleware"
	"github.com/shoplabs/shop-backend/internal/repository/mysql"
	"github.com/shoplabs/shop-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize repositories
	categoryRepo := mysql.NewCategoryRepository(db)
	customerRepo := mysql.NewCustomerRepository(db)
	productRepo := mysql.NewProductRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	reportRepo := mysql.NewReportRepository(db)

	// Initialize services
	catalogService := services.NewCatalogService(categoryRepo, productRepo)
	customerService := services.NewCustomerService(customerRepo)
	orderService := services.NewOrderService(orderRepo, productRepo)
	reportService := services.NewReportService(reportRepo)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	productHandler := handlers.NewProductHandler(catalogService)
	customerHandler := handlers.NewCustomerHandler(customerService, reportService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	r.Use(limiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.POST("", categoryHandler.Create)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PATCH("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", customerHandler.List)
			customers.GET("/:id", customerHandler.Get)
			customers.GET("/:id/orders", customerHandler.Orders)
			customers.POST("", customerHandler.Create)
			customers.DELETE("/:id", customerHandler.Delete)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.POST("", orderHandler.Create)
			orders.POST("/:id/items", orderHandler.AddItem)
			orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		}

		items := api.Group("/order-items")
		{
			items.PATCH("/:itemId", orderHandler.UpdateItemQuantity)
			items.DELETE("/:itemId", orderHandler.RemoveItem)
		}

		search := api.Group("/search")
		{
			search.GET("/customers", customerHandler.Search)
			search.GET("/products", productHandler.Search)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/order-summary", reportHandler.OrderSummary)
			reports.GET("/top-products", reportHandler.TopProducts)
		}

		api.GET("/stats", reportHandler.Stats)
	}

	return r
}
