package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ClientRateLimiter hands out one token bucket per client IP.
type ClientRateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters map[string]*clientLimiter
	mutex    sync.Mutex
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientRateLimiter allows perMinute requests per client, with bursts of the same size.
func NewClientRateLimiter(perMinute int) *ClientRateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return &ClientRateLimiter{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		limiters: make(map[string]*clientLimiter),
	}
}

func (l *ClientRateLimiter) Allow(client string, now time.Time) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	entry, exists := l.limiters[client]
	if !exists {
		entry = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[client] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// Forget drops clients idle for longer than idle.
func (l *ClientRateLimiter) Forget(idle time.Duration, now time.Time) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	for client, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > idle {
			delete(l.limiters, client)
		}
	}
}

// StartCleanup forgets clients idle for longer than idle, checking every interval until ctx is done.
func (l *ClientRateLimiter) StartCleanup(ctx context.Context, interval, idle time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				l.Forget(idle, now)
			}
		}
	}()
}

// RateLimit answers 429 once a client exceeds its budget.
func RateLimit(limiter *ClientRateLimiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !limiter.Allow(ctx.ClientIP(), time.Now()) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "Too many requests, try again later"})
			return
		}
		ctx.Next()
	}
}

// Clients reports how many clients are currently tracked.
func (l *ClientRateLimiter) Clients() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return len(l.limiters)
}
