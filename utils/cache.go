// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"roombook/config"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// DayListingKey is the cache key for one (room, date) day listing.
func DayListingKey(roomID, date string) string {
	return fmt.Sprintf("bookings:%s:%s", roomID, date)
}

// InvalidateDayListing drops the cached listing for a (room, date). With an
// empty date the key cannot be targeted; the short TTL covers that case.
func InvalidateDayListing(ctx context.Context, client *redis.Client, roomID, date string) {
	if client == nil || date == "" {
		return
	}
	if err := client.Del(ctx, DayListingKey(roomID, date)).Err(); err != nil {
		GetLogger().Sugar().Warnf("failed to invalidate day listing cache for %s/%s: %v", roomID, date, err)
	}
}
