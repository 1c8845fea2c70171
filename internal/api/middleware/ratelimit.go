package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"golang.org/x/time/rate"
)

// DefaultCleanupInterval is how often idle per-client limiters are swept.
const DefaultCleanupInterval = 5 * time.Minute

// RateLimiterConfig holds the per-client token bucket settings.
type RateLimiterConfig struct {
	Rate            rate.Limit
	Burst           int
	CleanupInterval time.Duration
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter limits requests per client IP. Entries idle for twice the
// cleanup interval are dropped by a background goroutine until Stop is called.
type RateLimiter struct {
	config  RateLimiterConfig
	onLimit func(r *http.Request)

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter starts a RateLimiter. onLimit, if non-nil, runs for every
// rejected request.
func NewRateLimiter(config RateLimiterConfig, onLimit func(r *http.Request)) *RateLimiter {
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = DefaultCleanupInterval
	}
	if config.Burst < 1 {
		config.Burst = 1
	}

	rl := &RateLimiter{
		config:   config,
		onLimit:  onLimit,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		if !rl.limiterFor(key).Allow() {
			logger.FromContext(r.Context()).Warn("rate limit exceeded",
				slog.String("client", key),
				slog.String("path", r.URL.Path))
			if rl.onLimit != nil {
				rl.onLimit(r)
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(rl.config.Rate)))
			shared.RespondWithError(w, r, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Len returns the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.config.Rate, rl.config.Burst)}
		rl.limiters[key] = cl
	}
	cl.lastAccess = time.Now()
	return cl.limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanup(now time.Time) {
	ttl := rl.config.CleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
}

// clientKey is the request's IP. chi's RealIP middleware has already
// rewritten RemoteAddr when proxy headers are present.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// retryAfterSeconds estimates the wait until one token is refilled.
func retryAfterSeconds(limit rate.Limit) int {
	if limit <= 0 || limit == rate.Inf {
		return 1
	}
	secs := int(math.Ceil(1.0 / float64(limit)))
	if secs < 1 {
		secs = 1
	}
	return secs
}
