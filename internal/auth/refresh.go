package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "refresh:"

var ErrTokenNotFound = errors.New("refresh token not found")

// RefreshStore keeps opaque refresh tokens server-side so logout actually
// revokes them. Tokens expire with the redis TTL; the cookie carries only
// the opaque value.
type RefreshStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRefreshStore(rdb *redis.Client, ttl time.Duration) *RefreshStore {
	return &RefreshStore{rdb: rdb, ttl: ttl}
}

func (s *RefreshStore) TTL() time.Duration {
	return s.ttl
}

// Issue mints a new opaque token bound to the user.
func (s *RefreshStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+token, userID.String(), s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the user the token was issued to.
func (s *RefreshStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return uuid.Nil, ErrTokenNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(val)
}

// Rotate revokes the old token and issues a fresh one atomically enough
// for this flow: the delete happens first, so a replayed old token fails.
func (s *RefreshStore) Rotate(ctx context.Context, token string) (string, uuid.UUID, error) {
	userID, err := s.Resolve(ctx, token)
	if err != nil {
		return "", uuid.Nil, err
	}
	if err := s.Revoke(ctx, token); err != nil {
		return "", uuid.Nil, err
	}
	fresh, err := s.Issue(ctx, userID)
	if err != nil {
		return "", uuid.Nil, err
	}
	return fresh, userID, nil
}

func (s *RefreshStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
