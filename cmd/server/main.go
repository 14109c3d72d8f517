package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"makershop.backend/internal/config"
	"makershop.backend/internal/infrastructure/datasources/postgres"
	"makershop.backend/internal/infrastructure/jobs"
	"makershop.backend/internal/infrastructure/repositories"
	"makershop.backend/internal/interfaces/http/handlers"
	"makershop.backend/internal/interfaces/http/middleware"
	"makershop.backend/internal/usecases"
	"makershop.backend/pkg/jwt"
	"makershop.backend/pkg/logger"
	"makershop.backend/pkg/redis"
)

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	openDB          = func(cfg config.DatabaseConfig) (*gorm.DB, error) { return postgres.NewConnection(cfg) }
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("✅ Connected to PostgreSQL via GORM")

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	shopRepo := repositories.NewShopRepository(db)
	tokenRepo := repositories.NewDesignTokenRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	hoursRepo := repositories.NewShopHoursRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore)
	builderUsecase := usecases.NewBuilderUsecase(shopRepo, tokenRepo, uow, cfg.Builder)
	storefrontUsecase := usecases.NewStorefrontUsecase(shopRepo, tokenRepo, productRepo, categoryRepo, hoursRepo, cfg.Builder.PageCacheTTL)
	contentUsecase := usecases.NewContentUsecase(shopRepo, productRepo, categoryRepo, hoursRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, shopRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	builderHandler := handlers.NewBuilderHandler(builderUsecase, storefrontUsecase)
	storefrontHandler := handlers.NewStorefrontHandler(storefrontUsecase)
	catalogHandler := handlers.NewCatalogHandler()
	productHandler := handlers.NewProductHandler(contentUsecase)
	categoryHandler := handlers.NewCategoryHandler(contentUsecase)
	hoursHandler := handlers.NewHoursHandler(contentUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService, sessionStore)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pruneJob := jobs.NewTokenHistoryPruneJob(tokenRepo, cfg.Builder.TokenHistoryMaxAge, cfg.Builder.TokenPruneInterval)
	go pruneJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		builderHandler:    builderHandler,
		storefrontHandler: storefrontHandler,
		catalogHandler:    catalogHandler,
		productHandler:    productHandler,
		categoryHandler:   categoryHandler,
		hoursHandler:      hoursHandler,
		adminHandler:      adminHandler,
		authMiddleware:    authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		pruneJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 MakerShop Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
