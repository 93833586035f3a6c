package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Devuelve {contador, ttl_ms} de la ventana actual.
const redisGenerationAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`

const defaultGenerationKeyPrefix = "gen:rl:"

type redisGenerationRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// NewRedisGenerationRateLimiter usa ventanas fijas compartidas entre réplicas.
// prefix vacío usa "gen:rl:".
func NewRedisGenerationRateLimiter(client *redis.Client, window time.Duration, max int, prefix string) GenerationRateLimiter {
	if client == nil || max <= 0 {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if prefix == "" {
		prefix = defaultGenerationKeyPrefix
	}
	return &redisGenerationRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: prefix,
	}
}

func (l *redisGenerationRateLimiter) Allow(key string) RateDecision {
	if l == nil || l.client == nil {
		return allowUnknown()
	}
	normalizedKey := normalizeLimiterKey(key)
	if normalizedKey == "" {
		return RateDecision{Remaining: 0}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	windowMs := l.window.Milliseconds()
	if windowMs <= 0 {
		windowMs = time.Minute.Milliseconds()
	}
	vals, err := l.client.Eval(ctx, redisGenerationAllowScript, []string{l.prefix + normalizedKey}, windowMs).Int64Slice()
	if err != nil || len(vals) != 2 {
		return allowUnknown()
	}

	count, ttlMs := vals[0], vals[1]
	if ttlMs < 0 {
		ttlMs = windowMs
	}
	remaining := int64(l.max) - count
	if remaining < 0 {
		remaining = 0
	}
	decision := RateDecision{
		Allowed:   count <= int64(l.max),
		Remaining: int(remaining),
	}
	if !decision.Allowed {
		decision.RetryAfter = time.Duration(ttlMs) * time.Millisecond
	}
	return decision
}
