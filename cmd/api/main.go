package main

import (
	"context"
	"fmt"

	"review-srv/config"
	configES "review-srv/config/elasticsearch"
	configKafka "review-srv/config/kafka"
	configRedis "review-srv/config/redis"
	_ "review-srv/docs" // Import swagger docs
	"review-srv/internal/httpserver"
	"review-srv/internal/storage/memory"
	pkgES "review-srv/pkg/elasticsearch"
	pkgJWT "review-srv/pkg/jwt"
	pkgKafka "review-srv/pkg/kafka"
	"review-srv/pkg/log"
	"review-srv/pkg/metrics"
	pkgRedis "review-srv/pkg/redis"
)

// @title       Review Search Service API
// @description Review search and sentiment analytics API.
// @version     1
// @host        localhost:8080
// @schemes     http
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token for write routes. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Initialize search engine
	var (
		esClient  pkgES.IElasticsearch
		memDriver *memory.Driver
	)
	switch cfg.SearchEngine.Driver {
	case config.DriverMemory:
		memDriver = memory.NewDriver()
		logger.Warnf(ctx, "Using in-memory search engine, data is lost on restart")
	default:
		esClient, err = configES.Connect(cfg.SearchEngine)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Elasticsearch: ", err)
			return
		}
		defer configES.Disconnect()
		if info, err := esClient.Info(ctx); err != nil {
			logger.Warnf(ctx, "Elasticsearch not reachable yet: %v", err)
		} else {
			logger.Infof(ctx, "Elasticsearch %s connected (cluster %s)", info.Version.Number, info.ClusterName)
		}
	}

	// 4. Initialize Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Warnf(ctx, "Redis unavailable, analytics cache disabled: %v", err)
			redisClient = nil
		} else {
			defer configRedis.Disconnect()
			logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
		}
	}

	// 5. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.Connect(cfg.Kafka)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Kafka producer: ", err)
			return
		}
		defer configKafka.Disconnect()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// 6. Initialize JWT Manager (optional)
	var jwtManager pkgJWT.IManager
	if cfg.JWT.SecretKey != "" {
		jwtManager, err = pkgJWT.New(pkgJWT.Config{
			SecretKey: cfg.JWT.SecretKey,
			Issuer:    cfg.JWT.Issuer,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize JWT manager: ", err)
			return
		}
	}

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		Elasticsearch: esClient,
		MemoryDriver:  memDriver,

		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,
		JWTManager:    jwtManager,
		Registry:      metrics.InitRegistry(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
