package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/devdash-backend/internal/config"
)

// idleBucketTTL is how long an untouched client bucket survives cleanup.
const idleBucketTTL = 10 * time.Minute

// RateLimiter is a per-client-IP token bucket limiter. Buckets refill
// continuously at RequestsPerMinute/60 tokens per second.
type RateLimiter struct {
	perMinute int
	buckets   sync.Map // client IP -> *bucket
	now       func() time.Time
	stop      chan struct{}
	stopOnce  sync.Once
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter starts a limiter with a background cleanup loop.
// Call Stop on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		perMinute: cfg.RequestsPerMinute,
		now:       time.Now,
		stop:      make(chan struct{}),
	}
	if rl.perMinute > 0 && cfg.CleanupInterval > 0 {
		go rl.cleanup(cfg.CleanupInterval)
	}
	return rl
}

// Stop terminates the cleanup loop. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns the limiting middleware. A non-positive limit disables it.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		if rl.perMinute <= 0 {
			return next
		}
		retryAfter := strconv.Itoa(60/rl.perMinute + 1)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientIP(r)) {
				w.Header().Set("Retry-After", retryAfter)
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string) bool {
	now := rl.now()
	capacity := float64(rl.perMinute)

	val, _ := rl.buckets.LoadOrStore(key, &bucket{tokens: capacity, lastRefill: now})
	b := val.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*capacity/60)
	b.lastRefill = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastRefill)
		b.mu.Unlock()
		if idle > idleBucketTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}

// clientIP strips the port from RemoteAddr so one client shares one bucket
// across connections.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
