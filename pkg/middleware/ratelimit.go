package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"cinebook/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit applies a fixed-window counter per client IP, backed by
// redis so the limit holds across instances. A nil client disables the
// limiter entirely.
func RateLimit(client *redis.Client, limit int, window time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if client == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			key := fmt.Sprintf("ratelimit:%s", ip)

			count, err := client.Incr(r.Context(), key).Result()
			if err != nil {
				// Redis being down should not take the API with it.
				logger.Warn("Rate limit check failed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if count == 1 {
				if err := client.Expire(r.Context(), key, window).Err(); err != nil {
					logger.Warn("Failed to set rate limit window", zap.Error(err))
				}
			}

			if count > int64(limit) {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", ip),
					zap.Int64("count", count),
				)
				utils.ResponseTooManyRequests(w, "Too many requests, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
