package kvstore

import "context"

// redisKV is the surface of pkg/redis.Client this backend needs.
type redisKV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
	Keys(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

// RedisBackend stores each key as a namespaced redis string.
type RedisBackend struct {
	client redisKV
}

func NewRedisBackend(client redisKV) *RedisBackend {
	return &RedisBackend{client: client}
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, found, err := r.client.Get(ctx, key)
	if err != nil || !found {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, string(value))
}

func (r *RedisBackend) Delete(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...)
}

func (r *RedisBackend) Keys(ctx context.Context) ([]string, error) {
	return r.client.Keys(ctx)
}

func (r *RedisBackend) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}
