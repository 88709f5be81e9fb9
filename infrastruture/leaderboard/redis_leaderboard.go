package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "leaderboard"
	keyFmt        = "%s:%s"
	memberSep     = ":"
)

var (
	ErrInvalidLimit = errors.New("limit must be positive")
)

// RedisLeaderboard ranks players per maze in a Redis sorted set scored by move count.
// Members are "<playerID>:<username>"; lower scores rank first.
type RedisLeaderboard struct {
	client *redis.Client
	prefix string
}

// NewRedisLeaderboard creates a leaderboard with keys under prefix ("leaderboard" if empty).
func NewRedisLeaderboard(client *redis.Client, prefix string) (*RedisLeaderboard, error) {
	if client == nil {
		return nil, errors.New("leaderboard: client is required")
	}
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &RedisLeaderboard{client: client, prefix: prefix}, nil
}

// Record adds the score, keeping the player's previous score if it was better.
func (l *RedisLeaderboard) Record(ctx context.Context, score dmn.Score) error {
	_, err := l.client.ZAddLT(ctx, l.key(score.MazeID), redis.Z{
		Score:  float64(score.Moves),
		Member: member(score.PlayerID, score.Username),
	}).Result()
	return err
}

// Top returns up to limit best scores for the maze.
func (l *RedisLeaderboard) Top(ctx context.Context, mazeID uuid.UUID, limit int64) ([]dmn.Score, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	entries, err := l.client.ZRangeWithScores(ctx, l.key(mazeID), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]dmn.Score, 0, len(entries))
	for _, e := range entries {
		raw, ok := e.Member.(string)
		if !ok {
			continue
		}
		playerID, username, err := parseMember(raw)
		if err != nil {
			continue
		}
		scores = append(scores, dmn.Score{
			MazeID:   mazeID,
			PlayerID: playerID,
			Username: username,
			Moves:    int(e.Score),
		})
	}
	return scores, nil
}

func (l *RedisLeaderboard) key(mazeID uuid.UUID) string {
	return fmt.Sprintf(keyFmt, l.prefix, mazeID)
}

func member(playerID uuid.UUID, username string) string {
	return playerID.String() + memberSep + username
}

func parseMember(raw string) (uuid.UUID, string, error) {
	id, username, _ := strings.Cut(raw, memberSep)
	playerID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, "", err
	}
	return playerID, username, nil
}
