package api

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/fantasymotogp/fantasy-data/internal/api/respond"
)

// --------------------------------------------------------------------------
// Request timing middleware
// --------------------------------------------------------------------------

// TimingMiddleware adds X-Process-Time header to all responses.
func TimingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		w.Header().Set("X-Process-Time", fmt.Sprintf("%.2fms", float64(elapsed.Microseconds())/1000.0))
	})
}

// --------------------------------------------------------------------------
// Rate limiting middleware (IP-based token bucket)
// --------------------------------------------------------------------------

type viewLimiter struct {
	mu      sync.Mutex
	perIP   map[string]*rate.Limiter
	rate    rate.Limit
	burst   int
	retryAt string
}

func newViewLimiter(requestsPerWindow int, window time.Duration) *viewLimiter {
	return &viewLimiter{
		perIP: make(map[string]*rate.Limiter),
		rate:  rate.Limit(float64(requestsPerWindow) / window.Seconds()),
		// A dashboard page load fires one request per view panel; the
		// burst has to absorb a full page load in one go.
		burst:   requestsPerWindow / 2,
		retryAt: fmt.Sprintf("%d", int(window.Seconds())),
	}
}

func (l *viewLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	limiter, ok := l.perIP[ip]
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.perIP[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware returns middleware that rate-limits by client IP.
// Dataset views are cheap after the first build, so the limit guards the
// snapshot fetch path and the JSON encoding, not any per-request state.
func RateLimitMiddleware(requestsPerWindow int, window time.Duration) func(http.Handler) http.Handler {
	limiter := newViewLimiter(requestsPerWindow, window)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, _ := net.SplitHostPort(r.RemoteAddr)
			if ip == "" {
				ip = r.RemoteAddr
			}

			if !limiter.limiterFor(ip).Allow() {
				w.Header().Set("Retry-After", limiter.retryAt)
				respond.WriteError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
