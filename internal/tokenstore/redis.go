package tokenstore

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const redisKey = "smartlearn:auth"

// RedisStore shares the auth blob through redis, for headless clients
// that run on more than one host.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Load(ctx context.Context) (Blob, bool) {
	data, err := s.rdb.Get(ctx, redisKey).Bytes()
	if err != nil {
		// redis.Nil included: no blob stored yet.
		return Blob{}, false
	}
	var blob Blob
	if err := json.Unmarshal(data, &blob); err != nil || blob.Token == "" {
		return Blob{}, false
	}
	return blob, true
}

func (s *RedisStore) Save(ctx context.Context, blob Blob) error {
	data, err := json.Marshal(blob)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKey, data, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context) {
	s.rdb.Del(ctx, redisKey)
}
