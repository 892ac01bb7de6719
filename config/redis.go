package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

var RedisClient *redis.Client

const contentCacheTTL = 5 * time.Minute
const contentCacheKeyPrefix = "public:content:"

func InitRedis() {
	redisURL := viper.GetString("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not configured, public content cache disabled")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Warning: failed to parse REDIS_URL: %v - public content cache disabled", err)
		return
	}

	RedisClient = redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: failed to connect to Redis: %v - public content cache disabled", err)
		RedisClient = nil
		return
	}

	log.Println("Connected to Redis")
}

// GetCachedContent returns the cached public payload for a section/language pair.
// Returns empty string when the key is absent or Redis is unavailable.
func GetCachedContent(section, lang string) string {
	if RedisClient == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	val, err := RedisClient.Get(ctx, contentCacheKeyPrefix+section+":"+lang).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetCachedContent stores a rendered public payload for a section/language pair.
func SetCachedContent(section, lang, payload string) error {
	if RedisClient == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return RedisClient.Set(ctx, contentCacheKeyPrefix+section+":"+lang, payload, contentCacheTTL).Err()
}

// InvalidateContentCache drops every cached language variant of a section.
// Called after admin saves so public reads pick up new content immediately.
func InvalidateContentCache(section string) {
	if RedisClient == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for _, lang := range []string{"en", "so", "ar"} {
		if err := RedisClient.Del(ctx, contentCacheKeyPrefix+section+":"+lang).Err(); err != nil {
			log.Printf("Warning: failed to invalidate content cache for %s/%s: %v", section, lang, err)
		}
	}
}
