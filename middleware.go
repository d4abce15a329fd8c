package main

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Client supplied request IDs end up in log lines, so only plain tokens pass.
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// getLimiter returns the token bucket for key (the client IP), creating it on
// first use. Buckets idle for longer than limiterIdleTTL are swept once the
// map grows past limiterSweepAfter.
func (app *App) getLimiter(key string, now time.Time) *rate.Limiter {
	app.LimiterMutex.Lock()
	defer app.LimiterMutex.Unlock()
	if cl, ok := app.LimiterMap[key]; ok {
		cl.lastSeen = now
		return cl.limiter
	}

	if key == "" {
		logWarn("Rate limiter key is empty")
	}
	if len(app.LimiterMap) >= limiterSweepAfter {
		app.sweepLimiters(now)
	}
	rps := max(app.RateLimitRPS, 1)
	cl := &clientLimiter{
		limiter:  rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), app.RateLimitBurst),
		lastSeen: now,
	}
	app.LimiterMap[key] = cl
	return cl.limiter
}

// sweepLimiters drops idle buckets. Callers hold LimiterMutex.
func (app *App) sweepLimiters(now time.Time) {
	dropped := 0
	for key, cl := range app.LimiterMap {
		if now.Sub(cl.lastSeen) > limiterIdleTTL {
			delete(app.LimiterMap, key)
			dropped++
		}
	}
	if dropped > 0 {
		logInfo("Dropped %d idle rate limiters, %d remain", dropped, len(app.LimiterMap))
	}
}

// rateLimitMiddleware throttles guesses per client IP.
func (app *App) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !app.getLimiter(key, time.Now()).Allow() {
			rateLimitedTotal.Inc()
			logRequestWarn(c.Request.Context(), "Rate limit exceeded for %s", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": ErrorTooManyRequests})
			return
		}
		c.Next()
	}
}

// requestIDMiddleware keeps a well-formed X-Request-Id from the client or
// assigns a fresh UUID, and echoes it back.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if len(reqID) > maxRequestIDLength || !requestIDPattern.MatchString(reqID) {
			reqID = uuid.NewString()
		}
		ctx := context.WithValue(c.Request.Context(), requestIDKey, reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, reqID)
		c.Next()
	}
}
