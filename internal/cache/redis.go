package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisStore keeps the same lazy-expiry semantics as Memory on a shared
// backend: per-entry TTLs map to native key expiry, no-TTL entries carry a
// sibling timestamp key checked against the default duration.
type redisStore struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
}

func newRedis(opts Options) (*redisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &redisStore{
		client:     client,
		prefix:     opts.Prefix,
		defaultTTL: opts.DefaultDuration,
	}, nil
}

func (r *redisStore) key(k string) string   { return r.prefix + k }
func (r *redisStore) tsKey(k string) string { return r.prefix + k + ":at" }

func (r *redisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("cache: redis get %s: %v", key, err)
		return "", false
	}
	return val, true
}

func (r *redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if ttl > 0 {
		if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
			log.Printf("cache: redis set %s: %v", key, err)
			return
		}
		r.client.Del(ctx, r.tsKey(key))
		return
	}
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		log.Printf("cache: redis set %s: %v", key, err)
		return
	}
	r.client.Set(ctx, r.tsKey(key), time.Now().Format(time.RFC3339Nano), 0)
}

func (r *redisStore) IsValid(ctx context.Context, key string) bool {
	exists, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil || exists == 0 {
		return false
	}
	ts, err := r.client.Get(ctx, r.tsKey(key)).Result()
	if err == redis.Nil {
		// Entry has its own TTL; redis purges it at the deadline
		return true
	}
	if err != nil {
		return false
	}
	last, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return false
	}
	return time.Since(last) < r.defaultTTL
}

func (r *redisStore) Clear(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("cache: redis scan: %v", err)
		return
	}
	if len(keys) > 0 {
		r.client.Del(ctx, keys...)
	}
}
