package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter counts requests per client IP over a fixed window. Each
// client gets its own window, so one tenant's burst cannot reset another
// tenant's budget. Generation endpoints fan out paid LLM calls, which is
// why the limit is enforced before any handler runs.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	rate    int           // requests per window
	window  time.Duration // time window
}

type clientWindow struct {
	count int
	start time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientWindow),
		rate:    rate,
		window:  window,
	}
}

// Allow records one request for the client and reports whether it fits
// the rate budget.
func (l *RateLimiter) Allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	cw, ok := l.clients[clientIP]
	if !ok || now.Sub(cw.start) > l.window {
		l.pruneExpired(now)
		l.clients[clientIP] = &clientWindow{count: 1, start: now}
		return true
	}

	if cw.count >= l.rate {
		return false
	}
	cw.count++
	return true
}

// pruneExpired drops clients whose window has passed. Called with the lock
// held on window rollovers, so the map does not grow with client churn.
func (l *RateLimiter) pruneExpired(now time.Time) {
	for ip, cw := range l.clients {
		if now.Sub(cw.start) > l.window {
			delete(l.clients, ip)
		}
	}
}

// RateLimit middleware limits requests per IP
func RateLimit(rate int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(rate, window)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		if !limiter.Allow(clientIP) {
			slog.Warn("rate limit exceeded",
				"client_ip", clientIP,
				"username", GetUsername(c),
				"request_id", GetRequestID(c),
			)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
