package service

import (
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateDecision es el resultado de consultar el limitador.
// Remaining < 0 indica que la cuota restante es desconocida.
type RateDecision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// GenerationRateLimiter limita las generaciones por cliente.
type GenerationRateLimiter interface {
	Allow(key string) RateDecision
}

func allowUnknown() RateDecision {
	return RateDecision{Allowed: true, Remaining: -1}
}

func normalizeLimiterKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type memoryGenerationRateLimiter struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	sweeps    int
	now       func() time.Time
}

// NewMemoryGenerationRateLimiter crea un token bucket por clave dentro del proceso.
// perMinute <= 0 devuelve nil (sin límite).
func NewMemoryGenerationRateLimiter(perMinute int) GenerationRateLimiter {
	if perMinute <= 0 {
		return nil
	}
	return &memoryGenerationRateLimiter{
		entries: make(map[string]*limiterEntry),
		limit:   rate.Limit(float64(perMinute) / 60),
		burst:   perMinute,
		idleTTL: 10 * time.Minute,
		now:     time.Now,
	}
}

func (l *memoryGenerationRateLimiter) Allow(key string) RateDecision {
	if l == nil {
		return allowUnknown()
	}
	key = normalizeLimiterKey(key)
	if key == "" {
		return RateDecision{Remaining: 0}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.lastSweep.IsZero() {
		l.lastSweep = now
	} else if now.Sub(l.lastSweep) >= l.idleTTL {
		l.evictIdle(now)
	}

	entry, ok := l.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = entry
	}
	entry.lastSeen = now

	allowed := entry.limiter.AllowN(now, 1)
	tokens := entry.limiter.TokensAt(now)
	decision := RateDecision{Allowed: allowed, Remaining: int(math.Max(0, math.Floor(tokens)))}
	if !allowed {
		missing := 1 - tokens
		decision.RetryAfter = time.Duration(missing / float64(l.limit) * float64(time.Second))
	}
	return decision
}

// evictIdle se llama con mu tomado, como mucho una vez por idleTTL.
func (l *memoryGenerationRateLimiter) evictIdle(now time.Time) {
	for k, e := range l.entries {
		if now.Sub(e.lastSeen) > l.idleTTL {
			delete(l.entries, k)
		}
	}
	l.lastSweep = now
	l.sweeps++
}
