package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

// HistoryCache is a best-effort cache in front of the analysis store. A miss
// or any Redis failure just sends the caller back to the store.
type HistoryCache interface {
	Get(ctx context.Context, userID string, limit int) ([]types.AnalysisRecord, bool)
	Set(ctx context.Context, userID string, limit int, records []types.AnalysisRecord)
	Invalidate(ctx context.Context, userID string)
	Close() error
}

type historyCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewHistoryCache connects to REDIS_ADDR. Callers treat a constructor error
// as "run without cache".
func NewHistoryCache(log *logger.Logger, ttl time.Duration) (HistoryCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	if ttl <= 0 {
		ttl = 60 * time.Second
	}

	return &historyCache{
		log: log.With("service", "RedisHistoryCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func historyKey(userID string, limit int) string {
	return fmt.Sprintf("history:%s:%d", userID, limit)
}

func userPattern(userID string) string {
	return fmt.Sprintf("history:%s:*", userID)
}

func (c *historyCache) Get(ctx context.Context, userID string, limit int) ([]types.AnalysisRecord, bool) {
	raw, err := c.rdb.Get(ctx, historyKey(userID, limit)).Bytes()
	if err == goredis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("History cache read failed", "user_id", userID, "error", err)
		return nil, false
	}

	var records []types.AnalysisRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		c.log.Warn("History cache entry malformed, dropping", "user_id", userID, "error", err)
		c.Invalidate(ctx, userID)
		return nil, false
	}
	return records, true
}

func (c *historyCache) Set(ctx context.Context, userID string, limit int, records []types.AnalysisRecord) {
	raw, err := json.Marshal(records)
	if err != nil {
		c.log.Warn("History cache encode failed", "user_id", userID, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, historyKey(userID, limit), raw, c.ttl).Err(); err != nil {
		c.log.Warn("History cache write failed", "user_id", userID, "error", err)
	}
}

// Invalidate drops every cached window for the user. Called after each save
// so history reads never serve a stale list.
func (c *historyCache) Invalidate(ctx context.Context, userID string) {
	iter := c.rdb.Scan(ctx, 0, userPattern(userID), 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("History cache scan failed", "user_id", userID, "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("History cache invalidation failed", "user_id", userID, "error", err)
	}
}

func (c *historyCache) Close() error {
	return c.rdb.Close()
}
