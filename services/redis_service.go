package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

type RedisService struct {
	client *redis.Client
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisService(config *RedisConfig) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisService{
		client: client,
	}, nil
}

// Set stores a key-value pair with optional expiration
func (r *RedisService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key
func (r *RedisService) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// Delete removes a key
func (r *RedisService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisService) Close() error {
	return r.client.Close()
}

func sessionKey(userID string) string {
	return "session:" + userID
}

// StoreSession keeps one active session per user. A new login replaces the previous one.
func (r *RedisService) StoreSession(ctx context.Context, userID, sessionID string, ttl time.Duration) error {
	return r.Set(ctx, sessionKey(userID), sessionID, ttl)
}

func (r *RedisService) ActiveSession(ctx context.Context, userID string) (string, error) {
	sessionID, err := r.Get(ctx, sessionKey(userID))
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	return sessionID, err
}

func (r *RedisService) RevokeSession(ctx context.Context, userID string) error {
	return r.Delete(ctx, sessionKey(userID))
}
