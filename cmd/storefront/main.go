package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/wyfcoding/petstore/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/petstore/internal/catalog/domain"
	catalogmsg "github.com/wyfcoding/petstore/internal/catalog/infrastructure/messaging"
	catalogmysql "github.com/wyfcoding/petstore/internal/catalog/infrastructure/persistence/mysql"
	catalogevents "github.com/wyfcoding/petstore/internal/catalog/interfaces/events"
	cataloghttp "github.com/wyfcoding/petstore/internal/catalog/interfaces/http"
	orderdomain "github.com/wyfcoding/petstore/internal/order/domain"
	ordermysql "github.com/wyfcoding/petstore/internal/order/infrastructure/persistence/mysql"
	reviewapp "github.com/wyfcoding/petstore/internal/review/application"
	reviewdomain "github.com/wyfcoding/petstore/internal/review/domain"
	reviewmsg "github.com/wyfcoding/petstore/internal/review/infrastructure/messaging"
	reviewmysql "github.com/wyfcoding/petstore/internal/review/infrastructure/persistence/mysql"
	reviewhttp "github.com/wyfcoding/petstore/internal/review/interfaces/http"
	userdomain "github.com/wyfcoding/petstore/internal/user/domain"
	usermysql "github.com/wyfcoding/petstore/internal/user/infrastructure/persistence/mysql"
	wishapp "github.com/wyfcoding/petstore/internal/wishlist/application"
	wishdomain "github.com/wyfcoding/petstore/internal/wishlist/domain"
	wishmsg "github.com/wyfcoding/petstore/internal/wishlist/infrastructure/messaging"
	wishmysql "github.com/wyfcoding/petstore/internal/wishlist/infrastructure/persistence/mysql"
	wishhttp "github.com/wyfcoding/petstore/internal/wishlist/interfaces/http"
	"github.com/wyfcoding/petstore/pkg/cache"
	"github.com/wyfcoding/petstore/pkg/config"
	"github.com/wyfcoding/petstore/pkg/db"
	"github.com/wyfcoding/petstore/pkg/logger"
	"github.com/wyfcoding/petstore/pkg/metrics"
	"github.com/wyfcoding/petstore/pkg/middleware"
	"github.com/wyfcoding/petstore/pkg/mq"
)

func main() {
	configPath := flag.String("config", "configs/storefront/config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger.Info(ctx, "Starting storefront service",
		"service", cfg.ServiceName, "version", cfg.Version, "environment", cfg.Environment)

	database, err := db.Init(db.Config{
		Driver:             cfg.Database.Driver,
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		LogEnabled:         cfg.Database.LogEnabled,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	})
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to database", "error", err)
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&catalogdomain.Product{},
		&reviewdomain.Review{},
		&wishdomain.Wish{},
		&orderdomain.Order{},
		&userdomain.User{},
	); err != nil {
		logger.Fatal(ctx, "Failed to migrate database", "error", err)
	}

	redisCache, err := cache.New(cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxPoolSize:  cfg.Redis.MaxPoolSize,
		ConnTimeout:  cfg.Redis.ConnTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", "error", err)
	}
	defer redisCache.Close()

	kafkaCfg := mq.KafkaConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		SessionTimeout: cfg.Kafka.SessionTimeout,
		MaxRetries:     cfg.Kafka.MaxRetries,
		RetryBackoff:   cfg.Kafka.RetryBackoff,
	}
	producer, err := mq.NewProducer(kafkaCfg)
	if err != nil {
		logger.Fatal(ctx, "Failed to create Kafka producer", "error", err)
	}
	defer producer.Close()

	wishConsumer, err := mq.NewConsumer(kafkaCfg, wishdomain.TopicWishChanged)
	if err != nil {
		logger.Fatal(ctx, "Failed to create Kafka consumer", "error", err)
	}
	defer wishConsumer.Close()

	m := metrics.New("storefront")
	if cfg.Metrics.Enabled {
		if err := m.Register(); err != nil {
			logger.Fatal(ctx, "Failed to register metrics", "error", err)
		}
		if err := metrics.StartHTTPServer(cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
			logger.Fatal(ctx, "Failed to start metrics server", "error", err)
		}
	}

	// 仓储
	productRepo := catalogmysql.NewProductRepository(database.DB)
	reviewRepo := reviewmysql.NewReviewRepository(database)
	wishRepo := wishmysql.NewWishRepository(database)
	orderRepo := ordermysql.NewOrderRepository(database.DB)
	userRepo := usermysql.NewUserRepository(database.DB)

	// 应用服务
	catalogQuery := catalogapp.NewCatalogQueryService(productRepo, redisCache, m)
	catalogCmd := catalogapp.NewCatalogCommandService(productRepo, catalogmsg.NewKafkaPublisher(producer))
	reviewSvc := reviewapp.NewReviewService(
		reviewRepo, userRepo, productRepo, orderRepo,
		reviewmsg.NewKafkaPublisher(producer), m)
	wishSvc := wishapp.NewWishlistService(
		wishRepo, productRepo, wishmsg.NewKafkaPublisher(producer), m)

	// 心愿单变更事件驱动人气缓存失效
	listenerCtx, stopListener := context.WithCancel(ctx)
	defer stopListener()
	go catalogevents.NewWishListener(redisCache).Run(listenerCtx, wishConsumer)

	// HTTP
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.GinLoggingMiddleware(),
		middleware.GinRecoveryMiddleware(),
		middleware.GinCORSMiddleware(),
		middleware.GinMetricsMiddleware(m),
		middleware.GinRateLimitMiddleware(middleware.NewRateLimiter(1000, 500)),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.ServiceName})
	})

	authenticator := middleware.NewAuthenticator(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Second)
	public := engine.Group("")
	authed := engine.Group("", middleware.GinAuthMiddleware(authenticator))

	cataloghttp.NewCatalogHandler(catalogQuery, catalogCmd).RegisterRoutes(public)
	reviewhttp.NewReviewHandler(reviewSvc).RegisterRoutes(public, authed)
	wishhttp.NewWishlistHandler(wishSvc).RegisterRoutes(authed)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info(ctx, "HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "HTTP server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "Shutting down storefront service")
	stopListener()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "HTTP server shutdown failed", "error", err)
	}

	logger.Info(ctx, "Storefront service stopped")
}
