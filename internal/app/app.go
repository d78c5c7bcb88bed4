package app

import (
	"fmt"

	"pettime_backend/database"
	"pettime_backend/internal/auth"
	"pettime_backend/internal/config"
	"pettime_backend/internal/email"
	"pettime_backend/internal/handlers"
	"pettime_backend/internal/logger"
	"pettime_backend/internal/middleware"
	"pettime_backend/internal/models"
	"pettime_backend/internal/push"
	"pettime_backend/internal/repositories"
	"pettime_backend/internal/routes"
	"pettime_backend/internal/services"
	"pettime_backend/internal/storage"
	"pettime_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run boots the whole application: config, logger, database, migration,
// admin seed and the HTTP server.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected", "driver", cfg.Database.Driver)

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("database migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Tests call this with their
// own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter(cfg, gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers, cfg.Storage.BasePath)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPUsername == "" {
		logger.Warn("SMTP credentials missing, outgoing mail is logged only")
		emailProvider = &MockEmailProvider{}
	} else {
		emailProvider, _ = email.NewGomailProvider(&email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUsername,
			Password:    cfg.Email.SMTPPassword,
			FromEmail:   cfg.Email.FromEmail,
			FromName:    cfg.Email.FromName,
			ResetTTLMin: cfg.JWT.ResetTTL,
		})
	}

	// Push delivery stays on the log provider until an FCM key lands.
	pushProvider := push.NewLogProvider()

	return services.NewServiceContainer(
		repositories.NewUserRepository(),
		repositories.NewPetRepository(),
		repositories.NewCatalogRepository(),
		repositories.NewProductRepository(),
		repositories.NewAppointmentRepository(),
		repositories.NewNotificationRepository(),
		repositories.NewDeviceTokenRepository(),
		storageInstance,
		emailProvider,
		pushProvider,
	)
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, sc.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, sc.UserService),
		PetHandler:          handlers.NewPetHandler(baseHandler, sc.PetService),
		CatalogHandler:      handlers.NewCatalogHandler(baseHandler, sc.CatalogService),
		ProductHandler:      handlers.NewProductHandler(baseHandler, sc.ProductService),
		AppointmentHandler:  handlers.NewAppointmentHandler(baseHandler, sc.AppointmentService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, sc.NotificationService, sc.PushService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	return router
}

// seedFirstAdmin creates the configured admin account if no admin exists.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("tipo = ?", models.UserRoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "Administrador",
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("first admin user created", "email", cfg.FirstAdminEmail)
	return nil
}
