package app

import (
	"fmt"

	"barberia_backend/database"
	"barberia_backend/internal/auth"
	"barberia_backend/internal/config"
	"barberia_backend/internal/email"
	"barberia_backend/internal/handlers"
	"barberia_backend/internal/logger"
	"barberia_backend/internal/middleware"
	"barberia_backend/internal/models"
	"barberia_backend/internal/repositories"
	"barberia_backend/internal/routes"
	"barberia_backend/internal/services"
	"barberia_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Database connected and migrated")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles repositories, services, handlers and routes.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	emailProvider, err := email.NewSMTPProvider(cfg)
	if err != nil {
		logger.Warn("SMTP not configured, outbound email disabled", "error", err)
		emailProvider = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	catalogRepo := repositories.NewCatalogRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, emailProvider),
		UserService:    services.NewUserService(userRepo),
		CatalogService: services.NewCatalogService(catalogRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	v := validator.New()
	base := handlers.NewBaseHandler(v)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(base, sc.AuthService),
		UserHandler:      handlers.NewUserHandler(base, sc.UserService),
		CatalogHandler:   handlers.NewCatalogHandler(base, sc.CatalogService),
		DashboardHandler: handlers.NewDashboardHandler(base),
	}
}

// seedFirstAdmin creates the configured administrator account when no
// ADMIN user exists yet.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdmin.Email == "" || cfg.FirstAdmin.Password == "" {
		logger.Warn("first_admin not configured, skipping admin seeding")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.FirstAdmin.Password)
	if err != nil {
		return err
	}

	name := cfg.FirstAdmin.Name
	if name == "" {
		name = "Administrador"
	}

	admin := &models.User{
		Name:         name,
		Email:        cfg.FirstAdmin.Email,
		PasswordHash: hashed,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("creating first admin: %w", err)
	}

	logger.Info("Seeded first admin user", "email", admin.Email)
	return nil
}
