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

	"vastratrota-backend/config"
	"vastratrota-backend/internal/api"
	"vastratrota-backend/internal/broker"
	"vastratrota-backend/internal/redisclient"
	"vastratrota-backend/internal/service"
	"vastratrota-backend/internal/store"
	"vastratrota-backend/internal/util"
	"vastratrota-backend/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting vastratrota backend")

	tp, err := util.InitTracer("vastratrota-backend", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	db := store.NewStore()
	if cfg.Server.SeedDemo {
		db.SeedDemoData()
		log.Println("Demo data seeded")
	}

	var redisClient *redisclient.Client
	if cfg.Redis.Enabled {
		redisClient, err = redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Printf("Redis unavailable, using in-process sessions: %v", err)
		} else {
			defer redisClient.Close()
			log.Println("Redis connected")
		}
	}

	var producer *broker.Producer
	if cfg.Kafka.Enabled {
		producer = broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicAlerts)
		defer producer.Close()
		log.Println("Kafka producer initialized")
	}

	eventPublisher := broker.NewEventPublisher(producer)
	notifier := service.NewNotifier()

	authService := service.NewAuthService(db, redisClient, cfg.Business.SessionTTL)
	catalogService := service.NewCatalogService(db)
	dealerService := service.NewDealerService(db, eventPublisher, notifier, cfg.Business.OverdueAfter)
	inventoryService := service.NewInventoryService(db, redisClient, eventPublisher, notifier, cfg.Business.LowStockThreshold)
	saleService := service.NewSaleService(db, eventPublisher, notifier)
	reportService := service.NewReportService(db)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var notifyWorker *worker.NotifyWorker
	if cfg.Kafka.Enabled {
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicAlerts, cfg.Kafka.ConsumerGroup)
		notifyWorker = worker.NewNotifyWorker(consumer, notifier)
		go func() {
			if err := notifyWorker.Start(workerCtx); err != nil {
				log.Printf("Notification worker error: %v", err)
			}
		}()
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := api.NewHandler(authService, catalogService, dealerService, inventoryService, saleService, reportService)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workerCancel()
	if notifyWorker != nil {
		notifyWorker.Stop()
	}

	log.Println("Server exited")
}
