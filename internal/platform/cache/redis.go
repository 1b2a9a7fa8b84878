package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

const rankingKey = "ranking:current"

// RankingCache keeps the computed ranking in Redis so repeated scoreboard
// polls do not re-run the join. A miss or any Redis failure falls back to
// recomputation.
type RankingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRankingCache(addr, password string, db int, ttl time.Duration) (*RankingCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &RankingCache{rdb: rdb, ttl: ttl}, nil
}

// GetRanking returns the cached ranking, or (nil, nil) on a cache miss.
func (c *RankingCache) GetRanking(ctx context.Context) ([]model.RankingEntry, error) {
	data, err := c.rdb.Get(ctx, rankingKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("RankingCache.GetRanking: %w", err)
	}

	var entries []model.RankingEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("RankingCache.GetRanking unmarshal: %w", err)
	}
	return entries, nil
}

func (c *RankingCache) SetRanking(ctx context.Context, entries []model.RankingEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("RankingCache.SetRanking marshal: %w", err)
	}
	if err := c.rdb.Set(ctx, rankingKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("RankingCache.SetRanking: %w", err)
	}
	return nil
}

// InvalidateRanking drops the cached ranking. Called after any user,
// problem, or pull request mutation.
func (c *RankingCache) InvalidateRanking(ctx context.Context) error {
	if err := c.rdb.Del(ctx, rankingKey).Err(); err != nil {
		return fmt.Errorf("RankingCache.InvalidateRanking: %w", err)
	}
	return nil
}

func (c *RankingCache) Close() error {
	return c.rdb.Close()
}
