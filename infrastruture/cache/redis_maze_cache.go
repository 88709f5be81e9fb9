package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	lockSuffix = ":lock"
)

// RedisMazeCache caches generated mazes in Redis. Generation for a key is
// serialized across processes with a redsync mutex so a maze is only created
// and persisted once.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	logger i.Logger
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int, logger i.Logger) (*RedisMazeCache, error) {
	if client == nil || logger == nil {
		return nil, errors.New("maze cache: client and logger are required")
	}
	if ttlSeconds <= 0 {
		return nil, errors.New("maze cache: ttl must be positive")
	}

	pool := goredis.NewPool(client)
	return &RedisMazeCache{
		client: client,
		locker: redsync.New(pool),
		ttl:    time.Duration(ttlSeconds) * time.Second,
		logger: logger,
	}, nil
}

// GetOrCreate returns the maze cached under key or creates, caches and returns it.
func (c *RedisMazeCache) GetOrCreate(ctx context.Context, key string, create func(context.Context) (*dmn.Maze, error)) (*dmn.Maze, error) {
	if m, ok := c.get(ctx, key); ok {
		return m, nil
	}

	mutex := c.locker.NewMutex(key + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("locking %s: %w", key, err)
	}
	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			c.logger.Warning(fmt.Sprintf("releasing lock for %s: %s", key, err))
		}
	}()

	// Another holder may have filled the key while we waited.
	if m, ok := c.get(ctx, key); ok {
		return m, nil
	}

	m, err := create(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(m.Document())
	if err != nil {
		return nil, err
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warning(fmt.Sprintf("caching %s: %s", key, err))
	}

	return m, nil
}

// get reads key. Misses and unreadable entries both report false.
func (c *RedisMazeCache) get(ctx context.Context, key string) (*dmn.Maze, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warning(fmt.Sprintf("reading %s: %s", key, err))
		}
		return nil, false
	}

	var doc dmn.MazeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		c.logger.Warning(fmt.Sprintf("decoding %s: %s", key, err))
		return nil, false
	}

	m, err := doc.Maze()
	if err != nil {
		c.logger.Warning(fmt.Sprintf("invalid cached maze %s: %s", key, err))
		return nil, false
	}
	return m, true
}
