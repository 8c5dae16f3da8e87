package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mf-api/internal/config"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
)

const keyPrefix = "mf-api:"

// NewRedisClient connects to Redis and checks the connection.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// RedisCache stores BSON-encoded documents, so pass-through fields keep
// their types across a round trip.
type RedisCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisCache(redisClient *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: redisClient, ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.redis.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := decode(data, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value any) error {
	data, err := encode(value)
	if err != nil {
		return fmt.Errorf("encode %s for cache: %w", key, err)
	}
	return r.redis.Set(ctx, keyPrefix+key, data, r.ttl).Err()
}

func encode(value any) ([]byte, error) {
	return bson.Marshal(value)
}

// decode mirrors the MongoDB client options: nested documents become maps.
func decode(data []byte, dest any) error {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return err
	}
	dec.DefaultDocumentM()
	return dec.Decode(dest)
}
