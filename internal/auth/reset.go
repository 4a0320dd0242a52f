package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const resetKeyPrefix = "pwreset:"

// ResetStore holds single-use password-reset tokens. Consume deletes the
// key first, so a token can never reset a password twice.
type ResetStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewResetStore(rdb *redis.Client, ttl time.Duration) *ResetStore {
	return &ResetStore{rdb: rdb, ttl: ttl}
}

func (s *ResetStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, resetKeyPrefix+token, userID.String(), s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *ResetStore) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.rdb.GetDel(ctx, resetKeyPrefix+token).Result()
	if err == redis.Nil {
		return uuid.Nil, ErrTokenNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(val)
}
