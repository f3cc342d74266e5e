package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/juju/ratelimit"

	"github.com/peacematcher/assistant-api/config"
	"github.com/peacematcher/assistant-api/handlers"
	"github.com/peacematcher/assistant-api/logging"
	"github.com/peacematcher/assistant-api/metrics"
)

// RealIPMiddleware extracts the real client IP from X-Forwarded-For
func RealIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// Take the first IP from the comma-separated list
			if idx := strings.Index(xff, ","); idx != -1 {
				xff = xff[:idx]
			}
			r.RemoteAddr = strings.TrimSpace(xff)
		}
		next.ServeHTTP(w, r)
	})
}

// RequestSizeMiddleware limits the size of request headers and body
func RequestSizeMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if contentLength := r.Header.Get("Content-Length"); contentLength != "" {
				if length, err := strconv.ParseInt(contentLength, 10, 64); err == nil {
					if length > int64(cfg.MaxRequestBody) {
						logging.Warn("Request body too large",
							"content_length", length,
							"max_allowed", cfg.MaxRequestBody,
							"remote_addr", r.RemoteAddr,
							"user_agent", r.UserAgent())

						handlers.RespondWithError(w, http.StatusRequestEntityTooLarge,
							"Request body too large",
							fmt.Sprintf("Maximum allowed size is %d bytes", cfg.MaxRequestBody))
						return
					}
				}
			}

			// Rough estimate, key and value bytes only
			headerSize := int64(0)
			for key, values := range r.Header {
				headerSize += int64(len(key))
				for _, value := range values {
					headerSize += int64(len(value))
				}
			}

			if headerSize > int64(cfg.MaxHeaderSize) {
				logging.Warn("Request headers too large",
					"header_size", headerSize,
					"max_allowed", cfg.MaxHeaderSize,
					"remote_addr", r.RemoteAddr,
					"user_agent", r.UserAgent())

				handlers.RespondWithError(w, http.StatusRequestHeaderFieldsTooLarge,
					"Request headers too large",
					fmt.Sprintf("Maximum allowed size is %d bytes", cfg.MaxHeaderSize))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Probe endpoints are free so monitoring never gets throttled.
var requestCosts = map[string]int64{
	"/health":  0,
	"/metrics": 0,
}

// RateLimiter manages per-client token buckets. Each client gets a bucket
// refilled at perMinute tokens per minute up to burst capacity.
type RateLimiter struct {
	clients   map[string]*ratelimit.Bucket
	mu        sync.RWMutex
	perMinute int64
	burst     int64
	done      chan struct{}
}

// NewRateLimiter creates a rate limiter from the configured per-minute
// refill rate and burst capacity, and starts its cleanup loop.
func NewRateLimiter(perMinute, burst int64) *RateLimiter {
	rl := &RateLimiter{
		clients:   make(map[string]*ratelimit.Bucket),
		perMinute: perMinute,
		burst:     burst,
		done:      make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) getBucket(clientIP string) *ratelimit.Bucket {
	rl.mu.RLock()
	bucket, exists := rl.clients[clientIP]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		if bucket, exists = rl.clients[clientIP]; !exists {
			bucket = ratelimit.NewBucketWithRate(float64(rl.perMinute)/60.0, rl.burst)
			rl.clients[clientIP] = bucket
		}
		metrics.RateLimiterBucketsTotal.Set(float64(len(rl.clients)))
		rl.mu.Unlock()
	}

	return bucket
}

// cleanup drops clients whose buckets have refilled completely.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, bucket := range rl.clients {
				if bucket.Available() == bucket.Capacity() {
					delete(rl.clients, ip)
				}
			}
			metrics.RateLimiterBucketsTotal.Set(float64(len(rl.clients)))
			rl.mu.Unlock()
		}
	}
}

// Stop terminates the cleanup loop.
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

func (rl *RateLimiter) costFor(r *http.Request) int64 {
	if cost, ok := requestCosts[r.URL.Path]; ok {
		return cost
	}
	return 1
}

// Handler enforces the per-client limit and reports genuine bucket state
// through the X-RateLimit headers.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cost := rl.costFor(r)
		if cost == 0 {
			next.ServeHTTP(w, r)
			return
		}

		bucket := rl.getBucket(r.RemoteAddr)

		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(rl.burst, 10))

		if bucket.TakeAvailable(cost) < cost {
			retryAfter := 60 / rl.perMinute
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(rl.resetAt(bucket), 10))
			w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
			logging.Warn("Rate limit exceeded", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
			handlers.RespondWithError(w, http.StatusTooManyRequests,
				"Rate limit exceeded", "Please try again later")
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(bucket.Available(), 10))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(rl.resetAt(bucket), 10))

		next.ServeHTTP(w, r)
	})
}

// resetAt returns the Unix time at which the bucket will be full again.
func (rl *RateLimiter) resetAt(bucket *ratelimit.Bucket) int64 {
	missing := bucket.Capacity() - bucket.Available()
	if missing <= 0 {
		return time.Now().Unix()
	}
	secondsPerToken := 60.0 / float64(rl.perMinute)
	return time.Now().Add(time.Duration(float64(missing) * secondsPerToken * float64(time.Second))).Unix()
}
