package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"review-srv/config"
	"review-srv/internal/review"
	"review-srv/internal/search"
	searchRepo "review-srv/internal/search/repository"
	"review-srv/internal/storage/memory"
	pkgES "review-srv/pkg/elasticsearch"
	pkgJWT "review-srv/pkg/jwt"
	pkgKafka "review-srv/pkg/kafka"
	"review-srv/pkg/log"
	pkgRedis "review-srv/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Search engine: exactly one of es / memDriver is set
	es        pkgES.IElasticsearch
	memDriver *memory.Driver

	// Optional infrastructure
	redisClient   pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer
	jwtManager    pkgJWT.IManager
	registry      *prometheus.Registry

	// Domain usecases, set by the setup* methods
	analyticsCache searchRepo.CacheRepository
	reviewUC       review.UseCase
	searchUC       search.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Search engine. Elasticsearch is required unless the memory driver is selected.
	Elasticsearch pkgES.IElasticsearch
	MemoryDriver  *memory.Driver

	// Optional infrastructure; nil disables the feature
	RedisClient   pkgRedis.IRedis
	KafkaProducer pkgKafka.IProducer
	JWTManager    pkgJWT.IManager
	Registry      *prometheus.Registry
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		es:        cfg.Elasticsearch,
		memDriver: cfg.MemoryDriver,

		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,
		jwtManager:    cfg.JWTManager,
		registry:      cfg.Registry,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	switch srv.config.SearchEngine.Driver {
	case config.DriverElasticsearch:
		if srv.es == nil {
			return errors.New("elasticsearch client is required")
		}
	case config.DriverMemory:
		if srv.memDriver == nil {
			return errors.New("memory driver is required")
		}
	default:
		return errors.New("unknown search engine driver")
	}

	return nil
}
