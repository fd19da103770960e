package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a sliding-window limiter backed by a Redis sorted set per
// key. Redis failures fail open.
type RateLimiter struct {
	client     *redis.Client
	prefix     string
	limit      int
	windowSize time.Duration
}

func NewRateLimiter(client *redis.Client, prefix string, limitPerMin int) *RateLimiter {
	return &RateLimiter{
		client:     client,
		prefix:     prefix,
		limit:      limitPerMin,
		windowSize: time.Minute,
	}
}

// Limit keys the window by client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return rl.handler(func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// LimitSession keys the window by the authenticated session so that
// several booths behind one NAT do not share an export budget.
func (rl *RateLimiter) LimitSession() gin.HandlerFunc {
	return rl.handler(func(c *gin.Context) string {
		if sessionID := c.GetString(SessionIDKey); sessionID != "" {
			return sessionID
		}
		return c.ClientIP()
	})
}

func (rl *RateLimiter) handler(keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", rl.prefix, keyFn(c))

		allowed, remaining, err := rl.isAllowed(ctx, key)
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rl.windowSize.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    "RATE_LIMITED",
				"message": "too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) isAllowed(ctx context.Context, key string) (bool, int, error) {
	now := time.Now().UnixMilli()
	windowStart := now - rl.windowSize.Milliseconds()

	pipe := rl.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

	// Members must be unique or concurrent requests in the same
	// millisecond collapse into one entry.
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now),
		Member: uuid.NewString(),
	})

	countCmd := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, rl.windowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return true, rl.limit, err
	}

	count := int(countCmd.Val())
	remaining := max(rl.limit-count, 0)

	return count <= rl.limit, remaining, nil
}
