package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RecentItemsStore 学习者最近练习过的单词，最新的在前
type RecentItemsStore interface {
	Push(ctx context.Context, learnerID, wordID string) error
	List(ctx context.Context, learnerID string) ([]string, error)
}

const recentTTL = 30 * 24 * time.Hour

// RedisRecentRepository 使用 Redis list 保存最近单词
type RedisRecentRepository struct {
	Redis *redis.Client
	Limit int
}

func NewRedisRecentRepository(rdb *redis.Client, limit int) *RedisRecentRepository {
	return &RedisRecentRepository{Redis: rdb, Limit: limit}
}

func recentKey(learnerID string) string {
	return fmt.Sprintf("motorkeys:learner:%s:recent", learnerID)
}

func (r *RedisRecentRepository) Push(ctx context.Context, learnerID, wordID string) error {
	key := recentKey(learnerID)
	pipe := r.Redis.TxPipeline()
	pipe.LRem(ctx, key, 0, wordID)
	pipe.LPush(ctx, key, wordID)
	pipe.LTrim(ctx, key, 0, int64(r.Limit-1))
	pipe.Expire(ctx, key, recentTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisRecentRepository) List(ctx context.Context, learnerID string) ([]string, error) {
	items, err := r.Redis.LRange(ctx, recentKey(learnerID), 0, int64(r.Limit-1)).Result()
	if err == redis.Nil {
		return []string{}, nil
	}
	return items, err
}

// AttemptRecentRepository 未启用 Redis 时从输入历史推导最近单词
type AttemptRecentRepository struct {
	Learners *LearnerRepository
	Limit    int
}

func NewAttemptRecentRepository(learners *LearnerRepository, limit int) *AttemptRecentRepository {
	return &AttemptRecentRepository{Learners: learners, Limit: limit}
}

// Push 输入历史已在事务中写入，这里无需操作
func (r *AttemptRecentRepository) Push(ctx context.Context, learnerID, wordID string) error {
	return nil
}

func (r *AttemptRecentRepository) List(ctx context.Context, learnerID string) ([]string, error) {
	// 多取一些以便去重后仍能凑满
	attempts, err := r.Learners.RecentAttempts(learnerID, r.Limit*5)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, r.Limit)
	items := make([]string, 0, r.Limit)
	for _, a := range attempts {
		if seen[a.WordID] {
			continue
		}
		seen[a.WordID] = true
		items = append(items, a.WordID)
		if len(items) == r.Limit {
			break
		}
	}
	return items, nil
}
