package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-service/config"
	"catalog-service/internal/api"
	"catalog-service/internal/broker"
	"catalog-service/internal/redisclient"
	"catalog-service/internal/service"
	"catalog-service/internal/store"
	"catalog-service/internal/todo"
	"catalog-service/internal/util"
	"catalog-service/internal/worker"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "catalog-service"

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env, cfg.Server.LogLevel, serviceName); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting catalog service", zap.String("env", cfg.Server.Env))

	ctx := context.Background()

	tp, err := util.InitTracer(ctx, serviceName, cfg.Observ.OTLPEndpoint)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn("Error shutting down tracer", zap.Error(err))
		}
	}()

	db, backend := store.Open(ctx, store.Options{
		Driver:      cfg.Database.Driver,
		URL:         cfg.Database.URL,
		AutoMigrate: cfg.Database.AutoMigrate,
	}, logger)
	defer db.Close()
	logger.Info("Catalog store ready", zap.String("backend", backend))

	if cfg.Admin.APIKey == "" {
		logger.Warn("ADMIN_API_KEY is not set, admin endpoints will reject every request")
	}

	var guard service.IdempotencyGuard
	if cfg.Redis.Enabled() {
		redisClient, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("Redis unavailable, inquiry deduplication disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			guard = redisclient.NewInquiryGuard(redisClient, cfg.Redis.IdempotencyTTL)
			logger.Info("Redis connected", zap.String("addr", cfg.Redis.Addr))
		}
	}

	var publisher service.EventPublisher = broker.NopPublisher{}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var leadNotifier *worker.LeadNotifier
	if cfg.Kafka.Enabled() {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicCatalog, logger)
		defer producer.Close()
		publisher = broker.NewEventPublisher(producer)
		logger.Info("Kafka producer initialized", zap.Strings("brokers", cfg.Kafka.Brokers))

		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicCatalog, cfg.Kafka.ConsumerGroup, logger)
		leadNotifier = worker.NewLeadNotifier(consumer, logger)
		go func() {
			if err := leadNotifier.Start(workerCtx); err != nil {
				logger.Error("Lead notifier stopped", zap.Error(err))
			}
		}()
	}

	catalogService := service.NewCatalogService(db, publisher)
	inquiryService := service.NewInquiryService(db, publisher, guard)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handler := api.NewHandler(catalogService, inquiryService, todo.NewStore(), cfg.Admin, backend)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	workerCancel()
	if leadNotifier != nil {
		if err := leadNotifier.Stop(); err != nil {
			logger.Warn("Error stopping lead notifier", zap.Error(err))
		}
	}

	logger.Info("Server exited")
}
