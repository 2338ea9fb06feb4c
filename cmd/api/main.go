package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-commerce/config"
	"github.com/fekuna/omnipos-commerce/internal/auth"
	"github.com/fekuna/omnipos-commerce/internal/health"
	"github.com/fekuna/omnipos-commerce/internal/middleware"
	"github.com/fekuna/omnipos-commerce/internal/server"
	"github.com/fekuna/omnipos-commerce/migrations"
	"github.com/fekuna/omnipos-commerce/pkg/broker"
	"github.com/fekuna/omnipos-commerce/pkg/cache"
	"github.com/fekuna/omnipos-commerce/pkg/database/postgres"
	"github.com/fekuna/omnipos-commerce/pkg/i18n"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/mailer"
	"github.com/fekuna/omnipos-commerce/pkg/search"
	"github.com/fekuna/omnipos-commerce/pkg/token"

	adminH "github.com/fekuna/omnipos-commerce/internal/admin/handler"
	adminRepoPkg "github.com/fekuna/omnipos-commerce/internal/admin/repository"
	adminUCPkg "github.com/fekuna/omnipos-commerce/internal/admin/usecase"

	catH "github.com/fekuna/omnipos-commerce/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-commerce/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-commerce/internal/category/usecase"

	discountH "github.com/fekuna/omnipos-commerce/internal/discount/handler"
	discountRepoPkg "github.com/fekuna/omnipos-commerce/internal/discount/repository"
	discountUCPkg "github.com/fekuna/omnipos-commerce/internal/discount/usecase"

	exportH "github.com/fekuna/omnipos-commerce/internal/export/handler"
	exportRepoPkg "github.com/fekuna/omnipos-commerce/internal/export/repository"
	exportUCPkg "github.com/fekuna/omnipos-commerce/internal/export/usecase"

	favoriteH "github.com/fekuna/omnipos-commerce/internal/favorite/handler"
	favoriteRepoPkg "github.com/fekuna/omnipos-commerce/internal/favorite/repository"
	favoriteUCPkg "github.com/fekuna/omnipos-commerce/internal/favorite/usecase"

	healthH "github.com/fekuna/omnipos-commerce/internal/health/handler"

	invH "github.com/fekuna/omnipos-commerce/internal/inventory/handler"
	invListenerPkg "github.com/fekuna/omnipos-commerce/internal/inventory/listener"
	invRepoPkg "github.com/fekuna/omnipos-commerce/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-commerce/internal/inventory/usecase"

	newsletterH "github.com/fekuna/omnipos-commerce/internal/newsletter/handler"
	newsletterRepoPkg "github.com/fekuna/omnipos-commerce/internal/newsletter/repository"
	newsletterUCPkg "github.com/fekuna/omnipos-commerce/internal/newsletter/usecase"

	orderH "github.com/fekuna/omnipos-commerce/internal/order/handler"
	orderRepoPkg "github.com/fekuna/omnipos-commerce/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-commerce/internal/order/usecase"

	prodH "github.com/fekuna/omnipos-commerce/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-commerce/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-commerce/internal/product/usecase"

	settingH "github.com/fekuna/omnipos-commerce/internal/setting/handler"
	settingRepoPkg "github.com/fekuna/omnipos-commerce/internal/setting/repository"
	settingUCPkg "github.com/fekuna/omnipos-commerce/internal/setting/usecase"

	userH "github.com/fekuna/omnipos-commerce/internal/user/handler"
	userRepoPkg "github.com/fekuna/omnipos-commerce/internal/user/repository"
	userUCPkg "github.com/fekuna/omnipos-commerce/internal/user/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const (
	tokenIssuer         = "omnipos-commerce"
	healthCheckInterval = 15 * time.Second
	shutdownTimeout     = 30 * time.Second
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

	appLogger := logger.NewZapLogger(logConfig)
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
	appLogger.Info("Connected to PostgreSQL database")

	if cfg.Postgres.MigrateOnStart {
		if err := postgres.Migrate(db, migrations.FS); err != nil {
			appLogger.Fatal("Could not apply migrations", zap.Error(err))
		}
		appLogger.Info("Database migrations applied")
	}

	// 4. Initialize Repositories
	userRepo := userRepoPkg.NewPGRepository(db)
	adminRepo := adminRepoPkg.NewPGRepository(db)
	catRepo := catRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	discountRepo := discountRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)
	favoriteRepo := favoriteRepoPkg.NewPGRepository(db)
	newsletterRepo := newsletterRepoPkg.NewPGRepository(db)
	settingRepo := settingRepoPkg.NewPGRepository(db)
	exportRepo := exportRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 6. Initialize Kafka
	brokerConfig := &broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	}
	kafkaProducer, err := broker.NewProducer(brokerConfig)
	if err != nil {
		appLogger.Fatal("Could not create Kafka producer", zap.Error(err))
	}
	defer kafkaProducer.Close()

	kafkaConsumer := broker.NewConsumer(brokerConfig)
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 7. Initialize Elasticsearch
	var productIndex prodUCPkg.SearchIndex
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch, product search uses the database", zap.Error(err))
	} else {
		productIndex = esClient
		if err := prodUCPkg.EnsureIndex(context.Background(), esClient); err != nil {
			appLogger.Warn("Could not create product index", zap.Error(err))
		}
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 8. Initialize token maker, mailer and translations
	tokenMaker, err := token.NewJWTMaker(cfg.JWT.Secret, tokenIssuer)
	if err != nil {
		appLogger.Fatal("Could not create token maker", zap.Error(err))
	}

	smtpMailer := mailer.NewSMTPMailer(&mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	translator, err := i18n.New()
	if err != nil {
		appLogger.Fatal("Could not load translations", zap.Error(err))
	}

	// 9. Initialize UseCases
	userUC := userUCPkg.NewUserUseCase(userRepo, tokenMaker, redisClient, smtpMailer, translator, userUCPkg.Options{
		TokenDuration: cfg.JWT.ExpiresIn,
		VerifyURL:     strings.TrimRight(cfg.Apps.UserURL, "/") + "/verify-email",
		LoginURL:      strings.TrimRight(cfg.Apps.UserURL, "/") + "/login",
	}, appLogger)
	adminUC := adminUCPkg.NewAdminUseCase(adminRepo, tokenMaker, redisClient, cfg.JWT.ExpiresIn, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, catRepo, redisClient, productIndex, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, prodRepo, redisClient, appLogger)
	discountUC := discountUCPkg.NewDiscountUseCase(discountRepo, prodRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, prodRepo, discountRepo, userRepo, kafkaProducer, smtpMailer, translator,
		orderUCPkg.Options{WarehouseEmail: cfg.Admin.WarehouseEmail}, appLogger)
	favoriteUC := favoriteUCPkg.NewFavoriteUseCase(favoriteRepo, prodRepo, appLogger)
	newsletterUC := newsletterUCPkg.NewNewsletterUseCase(newsletterRepo, smtpMailer, translator, appLogger)
	settingUC := settingUCPkg.NewSettingUseCase(settingRepo, redisClient, appLogger)
	exportUC := exportUCPkg.NewExportUseCase(exportRepo, appLogger)

	// 10. Initialize Listeners
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	invListener := invListenerPkg.NewInventoryListener(kafkaConsumer, invUC, appLogger)
	go invListener.Start(ctx)

	// 11. Initialize Handlers
	cookie := &auth.CookieConfig{
		Domain: cfg.Cookie.Domain,
		MaxAge: time.Duration(cfg.Cookie.ExpiresInDays) * 24 * time.Hour,
		Secure: !cfg.IsDevelopment(),
	}
	checker := health.NewChecker(db, appLogger)

	handlers := &server.Handlers{
		User:       userH.NewUserHandler(userUC, cookie, appLogger),
		Admin:      adminH.NewAdminHandler(adminUC, cookie, appLogger),
		Category:   catH.NewCategoryHandler(catUC, appLogger),
		Product:    prodH.NewProductHandler(prodUC, appLogger),
		Inventory:  invH.NewInventoryHandler(invUC, appLogger, cfg.Cron.ExpiryWarningDays),
		Discount:   discountH.NewDiscountHandler(discountUC, appLogger),
		Order:      orderH.NewOrderHandler(orderUC, appLogger),
		Favorite:   favoriteH.NewFavoriteHandler(favoriteUC, appLogger),
		Newsletter: newsletterH.NewNewsletterHandler(newsletterUC, appLogger),
		Setting:    settingH.NewSettingHandler(settingUC, appLogger),
		Export:     exportH.NewExportHandler(exportUC, appLogger),
		Health:     healthH.NewHealthHandler(checker, appLogger),
	}

	errs := middleware.NewErrorHandler(appLogger)
	authn := middleware.NewAuthenticator(errs, tokenMaker, redisClient, userUC, adminUC, cfg.Admin.APIKey)

	// 12. Start gRPC health server
	lis, err := net.Listen("tcp", listenAddr(cfg.Server.GRPCPort))
	if err != nil {
		appLogger.Fatal("failed to listen", zap.Error(err))
	}

	grpcServer := grpc.NewServer()
	healthServer := grpchealth.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)
	go checker.Watch(ctx, healthServer, healthCheckInterval)

	go func() {
		appLogger.Info("Starting gRPC health server", zap.String("port", cfg.Server.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve gRPC", zap.Error(err))
		}
	}()

	// 13. Start HTTP server
	httpServer := &http.Server{
		Addr:              listenAddr(cfg.Server.HTTPPort),
		Handler:           server.NewRouter(handlers, errs, authn, appLogger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", cfg.Server.HTTPPort), zap.String("env", cfg.Server.AppEnv))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve HTTP", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func listenAddr(port string) string {
	if !strings.HasPrefix(port, ":") && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
