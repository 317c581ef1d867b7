package middleware

import (
	"strings"
	"sync"
	"time"

	"spendtrack/internal/errors"
	"spendtrack/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP using a token bucket per
// visitor. Idle visitors are evicted in the background.
func RateLimiter(requestsPerSecond, burst int) echo.MiddlewareFunc {
	var (
		visitors = make(map[string]*visitor)
		mu       sync.Mutex
	)

	go func() {
		for {
			time.Sleep(time.Minute)

			mu.Lock()
			for ip, v := range visitors {
				if time.Since(v.lastSeen) > 3*time.Minute {
					delete(visitors, ip)
				}
			}
			mu.Unlock()
		}
	}()

	getVisitor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		v, exists := visitors[ip]
		if !exists {
			limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
			visitors[ip] = &visitor{limiter, time.Now()}
			return limiter
		}

		v.lastSeen = time.Now()
		return v.limiter
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !getVisitor(clientIP(c)).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}
