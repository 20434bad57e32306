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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/923325596/albedo-boot/audit"
	"github.com/923325596/albedo-boot/config"
	"github.com/923325596/albedo-boot/controller"
	"github.com/923325596/albedo-boot/db"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/router"
	"github.com/923325596/albedo-boot/service"
	"github.com/923325596/albedo-boot/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize the relational store
	if err := db.InitDatabase(); err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.CloseDatabase()
	if err := db.Migrate(db.DB); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Neo4j and Redis are optional and independent
	var g errgroup.Group
	g.Go(db.InitNeo4j)
	g.Go(db.InitRedis)
	err := g.Wait()
	defer db.CloseNeo4j()
	defer db.CloseRedis()
	if err != nil {
		logger.Fatal("Failed to initialize backing stores", zap.Error(err))
	}

	var cacheManager util.CacheManager
	if db.RedisClient != nil {
		cacheManager = util.NewRedisCacheManager(db.RedisClient, config.GetDuration("redis.defaultCacheTTL"))
	} else {
		cacheManager = util.NewLRUCacheManager(config.GetInt("cache.size"), config.GetDuration("cache.ttl"))
	}

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Audit trail
	var auditRepository audit.Repository = audit.NewLogRepository()
	if esURL := config.GetString("elasticsearch.url"); esURL != "" {
		esRepository, err := audit.NewElasticsearchRepository(esURL, config.GetString("elasticsearch.index"))
		if err != nil {
			logger.Fatal("Failed to initialize Elasticsearch", zap.Error(err))
		}
		auditRepository = esRepository
	}
	auditService := audit.NewService(auditRepository)
	audit.Subscribe(eventBus, auditService)

	// Initialize services
	services, err := service.InitializeServices(
		db.DB,
		db.Neo4jDriver,
		cacheManager,
		util.NewValidationUtil(),
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := controller.InitializeControllers(services, auditService)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	opts := router.Options{
		AuthSecret:        config.GetString("auth.secret"),
		RateLimitRequests: config.GetInt("rateLimit.requests"),
		RateLimitDuration: config.GetDuration("rateLimit.per"),
	}
	if db.RedisClient != nil {
		opts.RateLimitClient = db.RedisClient
	}
	engine := router.SetupRouter(controllers, opts)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Let pending audit handlers finish before the stores close.
	eventBus.Wait()
	logger.Info("Server exiting")
}
