package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter throttles clients per remote address. Credential endpoints get
// tighter buckets than the rest of the API.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.RWMutex

	done     chan struct{}
	stopOnce sync.Once

	loginLimiter    rate.Limit
	loginBurst      int
	registerLimiter rate.Limit
	registerBurst   int
	defaultLimiter  rate.Limit
	defaultBurst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		done:     make(chan struct{}),

		// Login and registration are brute-force targets.
		loginLimiter:    rate.Every(12 * time.Second),
		loginBurst:      5,
		registerLimiter: rate.Every(20 * time.Second),
		registerBurst:   3,

		defaultLimiter: rate.Every(time.Second),
		defaultBurst:   20,
	}

	go rl.cleanupVisitors()

	return rl
}

func (rl *RateLimiter) getVisitor(ip, path string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	key := ip + ":" + path
	v, exists := rl.visitors[key]
	if !exists {
		var limiter *rate.Limiter
		switch path {
		case "/api/auth/login":
			limiter = rate.NewLimiter(rl.loginLimiter, rl.loginBurst)
		case "/api/auth/register", "/api/auth/reset-password":
			limiter = rate.NewLimiter(rl.registerLimiter, rl.registerBurst)
		default:
			limiter = rate.NewLimiter(rl.defaultLimiter, rl.defaultBurst)
		}

		rl.visitors[key] = &visitor{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// Stop terminates the background cleanup goroutine. Safe to call more than
// once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.done)
	})
}

// cleanupVisitors drops buckets idle for more than three minutes, until Stop
// is called.
func (rl *RateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for key, v := range rl.visitors {
				if time.Since(v.lastSeen) > 3*time.Minute {
					delete(rl.visitors, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// RateLimit returns the echo middleware enforcing the per-visitor buckets.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			path := c.Request().URL.Path

			limiter := rl.getVisitor(ip, path)
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "Too many requests. Please try again later.",
				})
			}

			return next(c)
		}
	}
}
