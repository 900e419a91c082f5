package store

import (
	"context"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/data/redisStore"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

// class membership is a redis set of user ids keyed by class id
type RedisClassStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisClassStore(ctx context.Context) *RedisClassStore {
	s := redisStore.GetRedisStore(ctx, config.RedisClassStore)
	if s == nil {
		return nil
	}
	return &RedisClassStore{store: s, logger: logger_i.NewLogger("ClassStore")}
}

func (s *RedisClassStore) JoinClass(ctx context.Context, classId string, userId string) error {
	return s.store.SetAdd(ctx, classId, userId)
}

func (s *RedisClassStore) IsMember(ctx context.Context, classId string, userId string) bool {
	ok, err := s.store.SetIsMember(ctx, classId, userId)
	if err != nil {
		s.logger.WithTrace(ctx).Error("Failed to check class membership", "class Id", classId, "error", err)
		return false
	}
	return ok
}

func TestClassStore(store *redisStore.Store) *RedisClassStore {
	return &RedisClassStore{store: store, logger: logger_i.NewLogger("test redis")}
}
