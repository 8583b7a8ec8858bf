package app

import (
	"context"
	"errors"
	"fmt"

	"skillswap_backend/internal/config"
	"skillswap_backend/internal/email"
	"skillswap_backend/internal/handlers"
	"skillswap_backend/internal/logger"
	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/routes"
	"skillswap_backend/internal/services"
	"skillswap_backend/internal/taxonomy"
	"skillswap_backend/internal/validator"
	"skillswap_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.SwapRequest{},
		&models.AdminMessage{},
		&models.Notification{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	workers.NewTokenWorker(repositories.NewRefreshTokenRepository(gormDB)).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tax := loadTaxonomy(cfg)

	serviceContainer := initializeServices(cfg, gormDB, tax)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func loadTaxonomy(cfg *config.Config) *taxonomy.Taxonomy {
	if cfg.Taxonomy.File == "" {
		return taxonomy.Default()
	}

	tax, err := taxonomy.LoadFile(cfg.Taxonomy.File)
	if err != nil {
		logger.Fatal("Failed to load taxonomy file", "file", cfg.Taxonomy.File, "error", err)
	}
	logger.Info("Taxonomy loaded", "file", cfg.Taxonomy.File, "categories", len(tax.Categories()))
	return tax
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, tax *taxonomy.Taxonomy) *services.ServiceContainer {
	mailer := email.NewSender(cfg)

	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	swapRepo := repositories.NewSwapRequestRepository(gormDB)
	messageRepo := repositories.NewAdminMessageRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, refreshTokenRepo),
		UserService:         services.NewUserService(userRepo),
		SwapService:         services.NewSwapService(swapRepo, userRepo, notificationRepo, mailer),
		BrowseService:       services.NewBrowseService(userRepo, tax),
		AdminService:        services.NewAdminService(userRepo, swapRepo, messageRepo),
		NotificationService: services.NewNotificationService(notificationRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, container.UserService),
		SwapHandler:         handlers.NewSwapHandler(baseHandler, container.SwapService),
		BrowseHandler:       handlers.NewBrowseHandler(baseHandler, container.BrowseService),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, container.AdminService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService),
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
		Name:         "Platform Admin",
		IsPublic:     false,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
