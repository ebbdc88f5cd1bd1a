package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storelane/commerce-api/internal/api"
	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
	"github.com/storelane/commerce-api/internal/core/service"
	"github.com/storelane/commerce-api/internal/infrastructure/config"
	mongodb "github.com/storelane/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storelane/commerce-api/internal/infrastructure/db/redis"
	"github.com/storelane/commerce-api/internal/infrastructure/db/sqlite"
	"github.com/storelane/commerce-api/internal/infrastructure/mail"
	"github.com/storelane/commerce-api/internal/infrastructure/mailqueue"
	"github.com/storelane/commerce-api/internal/pending"
	"github.com/storelane/commerce-api/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

// @title        Storelane Commerce API
// @version      1.0
// @description  E-commerce backend: OTP registration, sessions, catalog, orders and a rule-based status chatbot.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Primary store ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("user indexes not created")
	}
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("product indexes not created")
	}
	if err := orderRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("order indexes not created")
	}

	if err := productRepo.Seed(ctx, seedCatalog()); err != nil {
		log.Warn().Err(err).Msg("product seeding failed")
	}

	// --- Pending-registration staging ---
	var rdb *goredis.Client
	var staging ports.RegistrationStore
	switch cfg.PendingStore {
	case "redis":
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		staging = redisdb.NewRegistrationStore(rdb)
	default:
		mem := pending.NewMemoryStore(log)
		mem.StartSweeper(ctx, time.Minute)
		staging = mem
	}

	// --- Secondary user mirror ---
	mirror, err := sqlite.NewUserMirror(cfg.SQLite.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("user mirror open failed")
	}
	defer func() { _ = mirror.Close() }()

	// --- Outbound mail ---
	smtp := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)
	mailQueue := mailqueue.NewDispatcher(0, smtp, log)
	mailQueue.Start(ctx)

	// --- Services ---
	otpTTL := time.Duration(cfg.OTPExpireMin) * time.Minute
	registrationSvc := service.NewRegistrationService(userRepo, staging, mirror, mailQueue, otpTTL, log)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, 12*time.Hour)
	orderSvc := service.NewOrderService(productRepo, orderRepo, log)
	chatSvc := service.NewChatService(orderRepo, log)

	e := api.NewRouter(api.Deps{
		Registration: registrationSvc,
		Auth:         authSvc,
		Orders:       orderSvc,
		Chat:         chatSvc,
		Mongo:        db,
		Redis:        rdb,
		JWTSecret:    cfg.JWTSecret,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// seedCatalog is inserted once at startup when the products collection is empty.
func seedCatalog() []domain.Product {
	return []domain.Product{
		{ProductID: "p1", Name: "Running Shoes", Price: 49.99, Stock: 10},
		{ProductID: "p2", Name: "Wireless Headphones", Price: 69.99, Stock: 8},
		{ProductID: "p3", Name: "Smart Watch", Price: 129.99, Stock: 5},
		{ProductID: "p4", Name: "Backpack", Price: 39.99, Stock: 12},
		{ProductID: "p5", Name: "Sunglasses", Price: 19.99, Stock: 20},
	}
}
