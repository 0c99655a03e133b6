package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix     = "session:"
	redisUserKeyPrefix = "session:user:"
)

// RedisStore keeps sessions in Redis with TTLs matching their expiry, so
// expired sessions vanish without a sweep. A per-user set of tokens backs
// DeleteByUserID.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrInvalidSession, err)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return ErrExpired
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+sess.Token, payload, ttl)
	if sess.UserID != nil {
		userKey := redisUserKeyPrefix + sess.UserID.String()
		pipe.SAdd(ctx, userKey, sess.Token)
		pipe.Expire(ctx, userKey, ttl)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}
	if sess.IsExpired() {
		_ = s.client.Del(ctx, redisKeyPrefix+token).Err()
		return nil, ErrExpired
	}

	return &sess, nil
}

func (s *RedisStore) Update(ctx context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}

	exists, err := s.client.Exists(ctx, redisKeyPrefix+sess.Token).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}

	return s.Create(ctx, sess)
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	sess, err := s.Get(ctx, token)
	if err == nil && sess.UserID != nil {
		_ = s.client.SRem(ctx, redisUserKeyPrefix+sess.UserID.String(), token).Err()
	}
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}

// DeleteExpired is a no-op: Redis TTLs expire sessions on their own.
func (s *RedisStore) DeleteExpired(ctx context.Context) error {
	return nil
}

func (s *RedisStore) DeleteByUserID(ctx context.Context, userID string) error {
	userKey := redisUserKeyPrefix + userID
	tokens, err := s.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, redisKeyPrefix+token)
	}
	keys = append(keys, userKey)

	return s.client.Del(ctx, keys...).Err()
}
