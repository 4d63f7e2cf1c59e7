package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/clubdeck/api/internal/model"
)

// RateLimitConfig tunes the per-caller token buckets. Zero values fall
// back to the defaults noted per field.
type RateLimitConfig struct {
	Rate    int           // tokens refilled per window (default 100)
	Window  time.Duration // refill window (default 1m)
	Burst   int           // extra capacity above Rate (default 20)
	Cleanup time.Duration // idle-bucket sweep interval (default 5m)
}

// RateLimiter tracks a token bucket per caller key. Buckets idle for more
// than two windows are swept by a background goroutine; call Stop to end it.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     int
	window   time.Duration
	burst    int
	cleanup  time.Duration
	stopChan chan struct{}
}

type bucket struct {
	tokens    int
	lastReset time.Time
}

// NewRateLimiter builds a limiter and starts its sweep goroutine.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Rate == 0 {
		cfg.Rate = 100
	}
	if cfg.Window == 0 {
		cfg.Window = time.Minute
	}
	if cfg.Burst == 0 {
		cfg.Burst = 20
	}
	if cfg.Cleanup == 0 {
		cfg.Cleanup = 5 * time.Minute
	}

	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     cfg.Rate,
		window:   cfg.Window,
		burst:    cfg.Burst,
		cleanup:  cfg.Cleanup,
		stopChan: make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// Stop ends the sweep goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopChan)
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropIdle()
		case <-rl.stopChan:
			return
		}
	}
}

func (rl *RateLimiter) dropIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.window * 2)
	for key, b := range rl.buckets {
		if b.lastReset.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
}

// Allow spends one token for the key and reports whether the request may
// proceed, along with the tokens left and when the window resets.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, resetTime time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	capacity := rl.rate + rl.burst

	b, ok := rl.buckets[key]
	if !ok {
		// A fresh bucket starts full; this request spends one token.
		b = &bucket{tokens: capacity - 1, lastReset: now}
		rl.buckets[key] = b
		return true, b.tokens, now.Add(rl.window)
	}

	elapsed := now.Sub(b.lastReset)
	if elapsed >= rl.window {
		b.tokens = capacity
		b.lastReset = now
	} else if refill := int(float64(rl.rate) * (float64(elapsed) / float64(rl.window))); refill > 0 {
		b.tokens = min(b.tokens+refill, capacity)
		b.lastReset = now
	}

	if b.tokens == 0 {
		return false, 0, b.lastReset.Add(rl.window)
	}
	b.tokens--
	return true, b.tokens, b.lastReset.Add(rl.window)
}

// RateLimit throttles by authenticated user id, falling back to the remote
// address for anonymous requests, and reports the quota in headers.
func RateLimit(limiter *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := GetUserID(r.Context())
			if key == "" {
				key = r.RemoteAddr
			}

			allowed, remaining, resetTime := limiter.Allow(key)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.rate))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

			if !allowed {
				retryAfter := max(int(time.Until(resetTime).Seconds()), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				model.NewRateLimitError(retryAfter).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
