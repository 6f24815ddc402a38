package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/omnistock/inventory-service/config"
	"github.com/omnistock/inventory-service/internal/cache"
	"github.com/omnistock/inventory-service/internal/database"
	"github.com/omnistock/inventory-service/internal/logger"
	"github.com/omnistock/inventory-service/internal/middleware"

	"github.com/omnistock/inventory-service/internal/auth"

	catH "github.com/omnistock/inventory-service/internal/category/handler"
	catRepoPkg "github.com/omnistock/inventory-service/internal/category/repository"
	catUCPkg "github.com/omnistock/inventory-service/internal/category/usecase"

	dashH "github.com/omnistock/inventory-service/internal/dashboard/handler"
	dashRepoPkg "github.com/omnistock/inventory-service/internal/dashboard/repository"
	dashUCPkg "github.com/omnistock/inventory-service/internal/dashboard/usecase"

	invH "github.com/omnistock/inventory-service/internal/inventory/handler"
	invRepoPkg "github.com/omnistock/inventory-service/internal/inventory/repository"
	invUCPkg "github.com/omnistock/inventory-service/internal/inventory/usecase"

	prodH "github.com/omnistock/inventory-service/internal/product/handler"
	prodRepoPkg "github.com/omnistock/inventory-service/internal/product/repository"
	prodUCPkg "github.com/omnistock/inventory-service/internal/product/usecase"

	userH "github.com/omnistock/inventory-service/internal/user/handler"
	userRepoPkg "github.com/omnistock/inventory-service/internal/user/repository"
	userUCPkg "github.com/omnistock/inventory-service/internal/user/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := logger.NewZapLogger(&cfg.Logger)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := database.NewPostgres(&cfg.Postgres)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5. Initialize Repositories
	queryTimeout := time.Duration(cfg.Postgres.QueryTimeout) * time.Second
	userRepo := userRepoPkg.NewPGRepository(db, queryTimeout)
	catRepo := catRepoPkg.NewPGRepository(db, queryTimeout)
	prodRepo := prodRepoPkg.NewPGRepository(db, queryTimeout)
	invRepo := invRepoPkg.NewPGRepository(db, queryTimeout)
	dashRepo := dashRepoPkg.NewPGRepository(db, queryTimeout)

	// 6. Initialize UseCases
	tokens := auth.NewTokenManager(cfg.JWT.SecretKey, time.Duration(cfg.JWT.TTL)*time.Minute)
	userUC := userUCPkg.NewUserUseCase(userRepo, tokens, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, prodRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, catRepo, invRepo, redisClient, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, prodRepo, cache.NewLedgerLocker(redisClient), appLogger)
	dashUC := dashUCPkg.NewDashboardUseCase(dashRepo)

	// 7. Initialize Handlers
	authHandler := userH.NewAuthHandler(userUC, appLogger)
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	invHandler := invH.NewInventoryHandler(invUC, appLogger)
	dashHandler := dashH.NewDashboardHandler(dashUC, appLogger)

	// 8. Build Router
	if cfg.Server.AppEnv != "development" && cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(appLogger))
	router.Use(cors.Default())

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.Use(middleware.RateLimiter(redisClient.Client))
	authHandler.RegisterRoutes(authRoutes)

	authorized := api.Group("/")
	authorized.Use(middleware.RequireAuth(tokens, userRepo))
	catHandler.RegisterRoutes(authorized)
	prodHandler.RegisterRoutes(authorized)
	invHandler.RegisterRoutes(authorized)
	dashHandler.RegisterRoutes(authorized)

	// 9. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
