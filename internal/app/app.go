package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tunzacare_backend/database"
	"tunzacare_backend/internal/auth"
	"tunzacare_backend/internal/config"
	"tunzacare_backend/internal/email"
	"tunzacare_backend/internal/handlers"
	"tunzacare_backend/internal/logger"
	"tunzacare_backend/internal/middleware"
	"tunzacare_backend/internal/models"
	"tunzacare_backend/internal/repositories"
	"tunzacare_backend/internal/routes"
	"tunzacare_backend/internal/services"
	"tunzacare_backend/internal/validator"
	"tunzacare_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

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
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	mailer := email.NewProvider(cfg)
	serviceContainer := services.NewServiceContainer(mailer)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func startWorkers(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) {
	interval := time.Duration(cfg.Workers.SubscriptionSweepHours) * time.Hour
	worker := workers.NewSubscriptionWorker(
		gormDB,
		repositories.NewSubscriptionRepository(),
		repositories.NewCaregiverRepository(),
		repositories.NewTxRunner(),
		interval,
	)
	worker.Start(ctx)
	logger.Info("Subscription worker started", "interval", interval)
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
		logger.Warn("First admin credentials not configured. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminUser models.User
		result := tx.Where("email = ?", adminEmail).First(&adminUser)
		if result.Error == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := models.User{
			FirstName:    "Platform",
			LastName:     "Admin",
			Email:        adminEmail,
			Phone:        "0000000000",
			IDNumber:     "ADMIN-SEED",
			PasswordHash: hash,
			Role:         models.UserRoleAdmin,
			IsActive:     true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		logger.Info("First admin user created", "email", adminEmail)
		return nil
	})
}
