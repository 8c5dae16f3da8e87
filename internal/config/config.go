package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment profiles selected by FLASK_ENV. The variable name is kept so
// App Service settings written for the previous deployment keep working.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"

	DefaultSecretKey = "dev-secret-key-change-in-production"
)

// Config is the top-level struct that holds all configuration.
type Config struct {
	Env             string        `yaml:"env" env:"FLASK_ENV"`
	Port            string        `yaml:"port" env:"PORT"`
	SecretKey       string        `yaml:"secret_key" env:"SECRET_KEY"`
	CORSOrigins     []string      `yaml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	Log             LogConfig     `yaml:"log"`
	MongoDB         MongoDBConfig `yaml:"mongodb"`
	Redis           RedisConfig   `yaml:"redis"`
	Kafka           KafkaConfig   `yaml:"kafka"`
	Jobs            JobsConfig    `yaml:"jobs"`
}

// LogConfig controls the logrus logger. An empty Level means "use the
// profile default".
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
	File  string `yaml:"file" env:"LOG_FILE"`
}

// MongoDBConfig holds the connection settings and collection names.
type MongoDBConfig struct {
	URI                     string        `yaml:"uri" env:"MONGODB_URI"`
	DatabaseName            string        `yaml:"database_name" env:"MONGODB_DB_NAME"`
	TLSInsecure             bool          `yaml:"tls_insecure" env:"MONGODB_TLS_INSECURE"`
	ConnectTimeout          time.Duration `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT"`
	FundsCollectionName     string        `yaml:"funds_collection" env:"MONGODB_FUNDS_COLLECTION"`
	StocksCollectionName    string        `yaml:"stocks_collection" env:"MONGODB_STOCKS_COLLECTION"`
	TimelinesCollectionName string        `yaml:"timelines_collection" env:"MONGODB_TIMELINES_COLLECTION"`
	FavoritesCollectionName string        `yaml:"favorites_collection" env:"MONGODB_FAVORITES_COLLECTION"`
	UsersCollectionName     string        `yaml:"users_collection" env:"MONGODB_USERS_COLLECTION"`

	// written by the favorite events consumer
	FavoriteCountsCollectionName string `yaml:"favorite_counts_collection" env:"MONGODB_FAVORITE_COUNTS_COLLECTION"`
	FavoriteEventsCollectionName string `yaml:"favorite_events_collection" env:"MONGODB_FAVORITE_EVENTS_COLLECTION"`
}

// RedisConfig enables the read cache when Addr is set.
type RedisConfig struct {
	Addr     string        `yaml:"addr" env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB"`
	TTL      time.Duration `yaml:"ttl" env:"CACHE_TTL"`
}

// KafkaConfig enables favorite events when BrokerURL is set.
type KafkaConfig struct {
	BrokerURL string `yaml:"broker_url" env:"KAFKA_BROKER_URL"`
	Topic     string `yaml:"topic" env:"KAFKA_FAVORITES_TOPIC"`
	GroupID   string `yaml:"group_id" env:"KAFKA_CONSUMER_GROUP"`
}

// JobsConfig holds scheduler intervals. Zero disables a job.
type JobsConfig struct {
	FundDateRefreshInterval time.Duration `yaml:"fund_date_refresh_interval" env:"FUND_DATE_REFRESH_INTERVAL"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Env:             EnvDevelopment,
		Port:            "8000",
		SecretKey:       DefaultSecretKey,
		CORSOrigins:     []string{"http://localhost:4200"},
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MongoDB: MongoDBConfig{
			URI:                     "mongodb://localhost:27017/",
			DatabaseName:            "mf_data",
			ConnectTimeout:          10 * time.Second,
			FundsCollectionName:     "fund_holdings_test",
			StocksCollectionName:    "stocks",
			TimelinesCollectionName: "stock_timelines",
			FavoritesCollectionName: "favorites",
			UsersCollectionName:     "users",

			FavoriteCountsCollectionName: "favorite_counts",
			FavoriteEventsCollectionName: "favorite_events",
		},
		Redis: RedisConfig{TTL: 5 * time.Minute},
		Kafka: KafkaConfig{Topic: "favorites-events", GroupID: "mf-api-favorite-counter"},
	}
}

// LoadConfig builds the configuration in layers: defaults, then the YAML
// file at path (or $CONFIG_FILE when path is empty), then environment
// variables, which may come from a .env file.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	if c.Env == "" {
		c.Env = EnvDevelopment
	}

	origins := make([]string, 0, len(c.CORSOrigins))
	for _, o := range c.CORSOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSOrigins = origins

	if c.Log.Level == "" {
		c.Log.Level = c.defaultLogLevel()
	}
}

func (c *Config) defaultLogLevel() string {
	switch c.Env {
	case EnvProduction:
		return "warning"
	case EnvTesting:
		return "error"
	default:
		return "debug"
	}
}

// IsProduction reports whether the production profile is active.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}

func (c *Config) EventsEnabled() bool {
	return c.Kafka.BrokerURL != ""
}
