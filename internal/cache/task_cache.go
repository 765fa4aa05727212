package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/gustavokauee/TaskFlex/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyListPrefix = "task:list:"

// TaskCache caches per-user task lists in Redis.
type TaskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTaskCache returns a new TaskCache.
func NewTaskCache(rdb *redis.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list for the user, or nil if miss.
func (c *TaskCache) GetList(ctx context.Context, userID int64) ([]dom.Task, error) {
	b, err := c.rdb.Get(ctx, listKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Task
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []dom.Task{}
	}
	return list, nil
}

// SetList stores the user's list in cache.
func (c *TaskCache) SetList(ctx context.Context, userID int64, list []dom.Task) error {
	if list == nil {
		list = []dom.Task{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(userID), b, c.ttl).Err()
}

// Invalidate drops the user's cached list (cache invalidation on write).
func (c *TaskCache) Invalidate(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, listKey(userID)).Err()
}

func listKey(userID int64) string {
	return keyListPrefix + strconv.FormatInt(userID, 10)
}
