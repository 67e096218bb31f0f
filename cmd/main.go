package main

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"storefront/internal/handler"
	mid "storefront/internal/middleware"
	"storefront/internal/store"
	"storefront/internal/store/filestore"
	"storefront/internal/store/pgstore"
	"storefront/pkg/config"
	"storefront/pkg/jwtutil"
	"storefront/pkg/logger"
	"storefront/prometheus"
)

func main() {
	// Load configuration (reads .env when present)
	appConfig, err := config.Load("storefront")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.Init(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port),
		zap.String("store_driver", appConfig.Store.Driver))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Surface storage errors verbosely only outside production
	handler.SetEnvironment(appConfig.Server.Env)

	// Initialize the persistence backend
	st, err := newStore(appConfig, log)
	if err != nil {
		log.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer st.Close()
	log.Info("Store initialized", zap.String("driver", appConfig.Store.Driver))

	if appConfig.Upload.BaseURL == "" {
		appConfig.Upload.BaseURL = "http://localhost:" + appConfig.Server.Port
	}

	// Handlers
	productHandler := handler.NewProductHandler(st)
	orderHandler := handler.NewOrderHandler(st)
	categoryHandler := handler.NewCategoryHandler(st)
	analyticsHandler := handler.NewAnalyticsHandler(st)
	authHandler := handler.NewAuthHandler(appConfig.Admin)
	uploadHandler, err := handler.NewUploadHandler(appConfig.Upload)
	if err != nil {
		log.Fatal("Failed to initialize upload handler", zap.Error(err))
	}

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/api/health", handler.Health)

	// Customer API routes
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Get)
	e.GET("/api/categories", categoryHandler.List)
	e.GET("/api/orders", orderHandler.List)
	e.GET("/api/orders/:id", orderHandler.Get)
	e.POST("/api/orders", orderHandler.Create)

	// Authentication routes
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/status", authHandler.Status)

	// Admin API routes - bearer token required
	adminAPI := e.Group("/api/admin", mid.AdminAuthMiddleware)
	adminAPI.POST("/products", productHandler.Create)
	adminAPI.PUT("/products/:id", productHandler.Update)
	adminAPI.DELETE("/products/:id", productHandler.Delete)
	adminAPI.PUT("/orders/:id", orderHandler.UpdateStatus)
	adminAPI.GET("/analytics", analyticsHandler.Get)

	// Image upload (admin) and static serving of uploaded files
	e.POST("/api/upload-image", uploadHandler.Upload, mid.AdminAuthMiddleware)
	e.Static("/uploads", appConfig.Upload.Dir)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}

// newStore selects the persistence backend from configuration
func newStore(cfg *config.Config, log *zap.Logger) (store.Store, error) {
	switch cfg.Store.Driver {
	case "file":
		return filestore.New(cfg.Store.DataDir, log)
	case "postgres":
		return pgstore.New(cfg, log)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
