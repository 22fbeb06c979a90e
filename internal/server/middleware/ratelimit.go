package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// sweepInterval bounds how often stale client buckets are collected.
const sweepInterval = 5 * time.Minute

// bucket tracks one client's remaining tokens. Refill happens lazily
// on access, proportional to the time elapsed since the last check.
type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter throttles requests per client address using token
// buckets. It exists to slow down password guessing against the token
// endpoint, so limits are deliberately low.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	burst     float64
	rate      float64 // tokens per second
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter allows `requests` per `window` from each client, with
// an initial burst of the same size.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:   make(map[string]*bucket),
		burst:     float64(requests),
		rate:      float64(requests) / window.Seconds(),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow consumes one token for the client. When the bucket is empty it
// returns false and the wait until the next token becomes available.
func (rl *RateLimiter) Allow(clientID string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	b, ok := rl.buckets[clientID]
	if !ok {
		b = &bucket{tokens: rl.burst}
		rl.buckets[clientID] = b
	} else {
		elapsed := now.Sub(b.lastSeen).Seconds()
		b.tokens = math.Min(rl.burst, b.tokens+elapsed*rl.rate)
	}
	b.lastSeen = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true, 0
	}

	wait := time.Duration((1.0 - b.tokens) / rl.rate * float64(time.Second))
	return false, wait
}

// sweep drops buckets idle for more than an hour. Caller holds the lock.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < sweepInterval {
		return
	}
	rl.lastSweep = now
	cutoff := now.Add(-time.Hour)
	for id, b := range rl.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(rl.buckets, id)
		}
	}
}

// Middleware rejects over-limit clients with 429 and a Retry-After
// header; allowed requests pass through untouched.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, wait := rl.Allow(clientAddr(r))
		if !allowed {
			retryAfter := int(math.Ceil(wait.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientAddr strips the port from the remote address so one client is
// one bucket regardless of its ephemeral port.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
