// Package middleware holds the HTTP middleware the API mounts on top of
// chi's built-ins.
package middleware

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientLimiters stores per-IP token buckets with stale-entry cleanup.
// The appeal endpoint fronts a paid text-generation API, so each client
// gets its own budget rather than one shared bucket.
type clientLimiters struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rate    rate.Limit
	burst   int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiters(r rate.Limit, burst int) *clientLimiters {
	cl := &clientLimiters{
		entries: make(map[string]*limiterEntry),
		rate:    r,
		burst:   burst,
	}
	go cl.cleanup()
	return cl
}

func (cl *clientLimiters) get(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	entry, ok := cl.entries[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(cl.rate, cl.burst)}
		cl.entries[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// cleanup drops entries idle for 10 minutes so the map cannot grow unbounded.
func (cl *clientLimiters) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cl.mu.Lock()
		for ip, entry := range cl.entries {
			if time.Since(entry.lastSeen) > 10*time.Minute {
				delete(cl.entries, ip)
			}
		}
		cl.mu.Unlock()
	}
}

// RateLimit returns middleware limiting requests per client IP.
// r is the sustained rate, burst the momentary allowance.
//
// Example: RateLimit(rate.Every(10*time.Second), 5) allows one request
// every 10 seconds with bursts of 5.
func RateLimit(r rate.Limit, burst int) func(http.Handler) http.Handler {
	cl := newClientLimiters(r, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !cl.get(clientIP(req)).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "60")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Too many requests. Please try again later.",
				})
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// clientIP returns the client address, respecting X-Forwarded-For set
// by reverse proxies.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// First entry is the original client.
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}
	return r.RemoteAddr
}
