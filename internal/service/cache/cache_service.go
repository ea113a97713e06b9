package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/securify-app/securify-backend/config"
)

// ErrCacheMiss is returned when a key is absent; callers fall through to the
// database.
var ErrCacheMiss = errors.New("cache miss")

type Service struct {
	client *redis.Client
}

// NewCacheService connects to redis. On failure it returns nil and the read
// paths run uncached.
func NewCacheService(cfg config.RedisConfig) *Service {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis, caching disabled: %v", err)
		return nil
	}

	log.Printf("✅ Connected to Redis at %s:%s", cfg.Host, cfg.Port)
	return &Service{client: client}
}

func (s *Service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return s.client.Set(ctx, key, jsonValue, ttl).Err()
}

func (s *Service) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get value: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (s *Service) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
