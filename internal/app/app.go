package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gigwork_backend/internal/config"
	"gigwork_backend/internal/database"
	"gigwork_backend/internal/handlers"
	"gigwork_backend/internal/logger"
	"gigwork_backend/internal/middleware"
	"gigwork_backend/internal/repositories"
	"gigwork_backend/internal/routes"
	"gigwork_backend/internal/services"
	"gigwork_backend/internal/validator"
)

// Run starts the gigwork API server.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine: repositories -> services ->
// handlers -> routes.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, cfg)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	postingRepo := repositories.NewPostingRepository(gormDB)
	gigRepo := repositories.NewGigRepository(gormDB)

	return &services.ServiceContainer{
		UserService:    services.NewUserService(userRepo),
		PostingService: services.NewPostingService(postingRepo, userRepo),
		GigService:     services.NewGigService(gigRepo, userRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, routes.BasePath)

	return &handlers.AppHandlers{
		RootHandler:    handlers.NewRootHandler(baseHandler),
		UserHandler:    handlers.NewUserHandler(baseHandler, container.UserService),
		PostingHandler: handlers.NewPostingHandler(baseHandler, container.PostingService),
		GigHandler:     handlers.NewGigHandler(baseHandler, container.GigService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
