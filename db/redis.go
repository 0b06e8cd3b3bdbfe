package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// Seoul time decides when "today" rolls over for keyword suggestions.
var kst = time.FixedZone("KST", 9*60*60)

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		slog.Warn("REDIS_URL is not set, connecting will fail")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(context.Background()).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// KeywordCache keeps each user's "today's keywords" stable for the
// rest of the day: the same date must yield the same suggestion set.
type KeywordCache struct {
	client *redis.Client
}

func NewKeywordCache(client *redis.Client) *KeywordCache {
	return &KeywordCache{client: client}
}

func (c *KeywordCache) Get(ctx context.Context, userID int64) ([]string, bool) {
	raw, err := c.client.Get(ctx, keywordKey(userID, time.Now().In(kst))).Result()
	if err != nil {
		return nil, false
	}

	var keywords []string
	if err := json.Unmarshal([]byte(raw), &keywords); err != nil {
		return nil, false
	}
	return keywords, true
}

func (c *KeywordCache) Set(ctx context.Context, userID int64, keywords []string) error {
	raw, err := json.Marshal(keywords)
	if err != nil {
		return err
	}

	now := time.Now().In(kst)
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, kst)

	return c.client.Set(ctx, keywordKey(userID, now), raw, time.Until(midnight)).Err()
}

func keywordKey(userID int64, now time.Time) string {
	return fmt.Sprintf("finfeed:keywords:%d:%s", userID, now.Format("2006-01-02"))
}
