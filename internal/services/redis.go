package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itu-itis21-taflan21/RentalApp/internal/models"
)

var RedisClient *redis.Client

const (
	itemCacheTTL    = 10 * time.Minute
	popularCacheTTL = 5 * time.Minute
)

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

func itemKey(itemID uint) string {
	return fmt.Sprintf("item:detail:%d", itemID)
}

func popularKey(limit int) string {
	return fmt.Sprintf("items:popular:%d", limit)
}

// CacheItem stores item detail in Redis
func CacheItem(ctx context.Context, item *models.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, itemKey(item.ID), data, itemCacheTTL).Err()
}

// GetCachedItem retrieves item detail from Redis
func GetCachedItem(ctx context.Context, itemID uint) (*models.Item, error) {
	data, err := RedisClient.Get(ctx, itemKey(itemID)).Result()
	if err != nil {
		return nil, err
	}

	var item models.Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// InvalidateItem drops an item's cached detail and the popular listings
// that may include it.
func InvalidateItem(ctx context.Context, itemID uint) {
	RedisClient.Del(ctx, itemKey(itemID))

	iter := RedisClient.Scan(ctx, 0, "items:popular:*", 0).Iterator()
	for iter.Next(ctx) {
		RedisClient.Del(ctx, iter.Val())
	}
}

// CachePopularItems stores the popular items listing
func CachePopularItems(ctx context.Context, limit int, items []models.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, popularKey(limit), data, popularCacheTTL).Err()
}

// GetPopularItems retrieves the cached popular items listing
func GetPopularItems(ctx context.Context, limit int) ([]models.Item, error) {
	data, err := RedisClient.Get(ctx, popularKey(limit)).Result()
	if err != nil {
		return nil, err
	}

	var items []models.Item
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}
