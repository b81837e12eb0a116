package infrastructure

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter admits at most `limit` requests per `window` for each key.
// Each key gets its own token bucket; buckets idle for three windows are
// swept by a background goroutine.
type RateLimiter struct {
	mutex    sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	window   time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(float64(limit) / window.Seconds()),
		burst:    limit,
		window:   window,
	}

	go rl.cleanupStaleEntries()
	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

func (rl *RateLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-3 * rl.window)

		rl.mutex.Lock()
		for key, v := range rl.visitors {
			if v.lastSeen.Before(cutoff) {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}
