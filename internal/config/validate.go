package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDevelopment, EnvProduction, EnvTesting:
	default:
		return fmt.Errorf("FLASK_ENV must be one of development, production, testing, got %q", c.Env)
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %q", c.Port)
	}

	if c.SecretKey == "" {
		return errors.New("SECRET_KEY is required")
	}
	if c.IsProduction() && c.SecretKey == DefaultSecretKey {
		return errors.New("SECRET_KEY must be overridden in production")
	}

	if len(c.CORSOrigins) == 0 {
		return errors.New("CORS_ORIGINS must list at least one origin")
	}
	for _, o := range c.CORSOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("CORS_ORIGINS entries must start with http:// or https://, got %q", o)
		}
	}

	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	if err := c.MongoDB.validate(); err != nil {
		return err
	}

	if c.CacheEnabled() && c.Redis.TTL <= 0 {
		return errors.New("CACHE_TTL must be positive when REDIS_ADDR is set")
	}
	if c.EventsEnabled() && c.Kafka.Topic == "" {
		return errors.New("KAFKA_FAVORITES_TOPIC is required when KAFKA_BROKER_URL is set")
	}
	if c.EventsEnabled() && c.Kafka.GroupID == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required when KAFKA_BROKER_URL is set")
	}
	if c.Jobs.FundDateRefreshInterval < 0 {
		return errors.New("FUND_DATE_REFRESH_INTERVAL must not be negative")
	}

	return nil
}

func (m *MongoDBConfig) validate() error {
	if m.URI == "" {
		return errors.New("MONGODB_URI is required")
	}
	if m.DatabaseName == "" {
		return errors.New("MONGODB_DB_NAME is required")
	}
	if m.ConnectTimeout <= 0 {
		return errors.New("MONGODB_CONNECT_TIMEOUT must be positive")
	}
	names := map[string]string{
		"MONGODB_FUNDS_COLLECTION":     m.FundsCollectionName,
		"MONGODB_STOCKS_COLLECTION":    m.StocksCollectionName,
		"MONGODB_TIMELINES_COLLECTION": m.TimelinesCollectionName,
		"MONGODB_FAVORITES_COLLECTION": m.FavoritesCollectionName,
		"MONGODB_USERS_COLLECTION":     m.UsersCollectionName,

		"MONGODB_FAVORITE_COUNTS_COLLECTION": m.FavoriteCountsCollectionName,
		"MONGODB_FAVORITE_EVENTS_COLLECTION": m.FavoriteEventsCollectionName,
	}
	for key, name := range names {
		if name == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	return nil
}
