// Package cache caches account lookups in Redis. Only read paths (statement,
// notification message building) go through it; the transfer coordinator
// always reads locked rows. Entries are invalidated when a transfer commits.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"paymo/internal/models"
)

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient creates a Redis client from the config.
func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Service is the account cache.
type Service struct {
	client *redis.Client
	ttl    time.Duration
}

// NewService creates a cache service with the given entry TTL.
func NewService(client *redis.Client, ttl time.Duration) *Service {
	return &Service{client: client, ttl: ttl}
}

func accountKey(id uint) string {
	return fmt.Sprintf("account:%d", id)
}

// cachedAccount keeps the owner alongside the account; the User field is
// excluded from the model's own JSON form.
type cachedAccount struct {
	Account models.Account `json:"account"`
	User    models.User    `json:"user"`
}

// GetAccount returns a cached account (with its owner) or an error on miss.
func (s *Service) GetAccount(ctx context.Context, id uint) (*models.Account, error) {
	data, err := s.client.Get(ctx, accountKey(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var entry cachedAccount
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	acc := entry.Account
	acc.User = entry.User
	return &acc, nil
}

// SetAccount stores an account together with its owner.
func (s *Service) SetAccount(ctx context.Context, acc *models.Account) error {
	data, err := json.Marshal(cachedAccount{Account: *acc, User: acc.User})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, accountKey(acc.ID), data, s.ttl).Err()
}

// InvalidateAccount drops an account from the cache.
func (s *Service) InvalidateAccount(ctx context.Context, id uint) error {
	return s.client.Del(ctx, accountKey(id)).Err()
}

// Close releases the underlying Redis connection.
func (s *Service) Close() error {
	return s.client.Close()
}
