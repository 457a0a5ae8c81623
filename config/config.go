package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Search engine - review documents
	SearchEngine SearchEngineConfig

	// Redis - Analytics cache
	Redis RedisConfig

	// Kafka - Review lifecycle events (optional)
	Kafka KafkaConfig

	// JWT - Write route authentication (optional)
	JWT JWTConfig

	// Review - Write path tuning
	Review ReviewConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SearchEngineConfig is the configuration for the search engine.
type SearchEngineConfig struct {
	// Driver is "elasticsearch" or "memory".
	Driver             string
	Index              string
	Addresses          []string
	Username           string
	Password           string
	APIKey             string
	AggregationTimeout time.Duration
	BootstrapOnStart   bool
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled      bool
	Host         string
	Port         int
	Password     string
	DB           int
	AnalyticsTTL time.Duration
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// JWTConfig is used to verify tokens on write routes. An empty secret disables auth.
type JWTConfig struct {
	SecretKey string
	Issuer    string
}

// ReviewConfig tunes the review write path.
type ReviewConfig struct {
	BulkConcurrency int
	BulkMaxItems    int
}

const (
	DriverElasticsearch = "elasticsearch"
	DriverMemory        = "memory"
)

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("review-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/review-srv/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Search engine
	cfg.SearchEngine.Driver = viper.GetString("search_engine.driver")
	cfg.SearchEngine.Index = viper.GetString("search_engine.index")
	cfg.SearchEngine.Addresses = viper.GetStringSlice("search_engine.addresses")
	cfg.SearchEngine.Username = viper.GetString("search_engine.username")
	cfg.SearchEngine.Password = viper.GetString("search_engine.password")
	cfg.SearchEngine.APIKey = viper.GetString("search_engine.api_key")
	cfg.SearchEngine.AggregationTimeout = viper.GetDuration("search_engine.aggregation_timeout")
	cfg.SearchEngine.BootstrapOnStart = viper.GetBool("search_engine.bootstrap_on_start")

	// Redis
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.AnalyticsTTL = viper.GetDuration("redis.analytics_ttl")

	// Kafka
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// JWT
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")

	// Review
	cfg.Review.BulkConcurrency = viper.GetInt("review.bulk_concurrency")
	cfg.Review.BulkMaxItems = viper.GetInt("review.bulk_max_items")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. Search engine
	viper.SetDefault("search_engine.driver", DriverElasticsearch)
	viper.SetDefault("search_engine.index", "reviews")
	viper.SetDefault("search_engine.addresses", []string{"http://localhost:9200"})
	viper.SetDefault("search_engine.aggregation_timeout", 10*time.Second)
	viper.SetDefault("search_engine.bootstrap_on_start", true)

	// 2. Redis
	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.analytics_ttl", 60*time.Second)

	// 3. Kafka (topic: review.events)
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "review.events")

	// JWT
	viper.SetDefault("jwt.issuer", "review-srv")

	// Review
	viper.SetDefault("review.bulk_concurrency", 8)
	viper.SetDefault("review.bulk_max_items", 1000)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port is invalid: %d", cfg.HTTPServer.Port)
	}

	switch cfg.SearchEngine.Driver {
	case DriverElasticsearch:
		if len(cfg.SearchEngine.Addresses) == 0 {
			return fmt.Errorf("search_engine.addresses is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("search_engine.driver must be %q or %q, got %q", DriverElasticsearch, DriverMemory, cfg.SearchEngine.Driver)
	}
	if cfg.SearchEngine.Index == "" {
		return fmt.Errorf("search_engine.index is required")
	}
	if cfg.SearchEngine.AggregationTimeout <= 0 {
		return fmt.Errorf("search_engine.aggregation_timeout must be positive")
	}

	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when kafka is enabled")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}

	if cfg.JWT.SecretKey != "" && len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters")
	}

	if cfg.Review.BulkConcurrency < 1 {
		return fmt.Errorf("review.bulk_concurrency must be at least 1")
	}
	if cfg.Review.BulkMaxItems < 1 {
		return fmt.Errorf("review.bulk_max_items must be at least 1")
	}

	return nil
}
