package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-commerce/config"
	jobs "github.com/fekuna/omnipos-commerce/internal/cron"
	"github.com/fekuna/omnipos-commerce/pkg/cache"
	"github.com/fekuna/omnipos-commerce/pkg/database/postgres"
	"github.com/fekuna/omnipos-commerce/pkg/i18n"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/mailer"

	discountRepoPkg "github.com/fekuna/omnipos-commerce/internal/discount/repository"
	discountUCPkg "github.com/fekuna/omnipos-commerce/internal/discount/usecase"
	invRepoPkg "github.com/fekuna/omnipos-commerce/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-commerce/internal/inventory/usecase"
	prodRepoPkg "github.com/fekuna/omnipos-commerce/internal/product/repository"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.IsDevelopment() {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig).With(zap.String("process", "cron"))
	defer appLogger.Sync()

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	// 3. Connect to Database
	connector := postgres.NewConnector(&postgres.Config{
		URI:             cfg.Postgres.URI,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
	})
	db, err := connector.Connect()
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer connector.Close()

	// 4. Initialize Redis (inventory lock)
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// 5. Initialize UseCases
	prodRepo := prodRepoPkg.NewPGRepository(db)
	discountUC := discountUCPkg.NewDiscountUseCase(discountRepoPkg.NewPGRepository(db), prodRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepoPkg.NewPGRepository(db), prodRepo, redisClient, appLogger)

	translator, err := i18n.New()
	if err != nil {
		appLogger.Fatal("Could not load translations", zap.Error(err))
	}
	smtpMailer := mailer.NewSMTPMailer(&mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	// 6. Schedule Jobs
	cronLogger := jobs.NewLogger(appLogger)
	scheduler := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	j := jobs.NewJobs(discountUC, invUC, smtpMailer, translator, jobs.Options{
		WarehouseEmail:    cfg.Admin.WarehouseEmail,
		ExpiryWarningDays: cfg.Cron.ExpiryWarningDays,
		DiscountSchedule:  cfg.Cron.DiscountSchedule,
		InventorySchedule: cfg.Cron.InventorySchedule,
	}, appLogger)
	if err := j.Register(scheduler); err != nil {
		appLogger.Fatal("Could not schedule jobs", zap.Error(err))
	}

	scheduler.Start()
	appLogger.Info("Cron scheduler started",
		zap.String("discount_schedule", cfg.Cron.DiscountSchedule),
		zap.String("inventory_schedule", cfg.Cron.InventorySchedule),
	)

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Stopping cron scheduler...")
	<-scheduler.Stop().Done()
	appLogger.Info("Cron scheduler stopped")
}
