package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// loginLimiterStore holds a map of IP addresses to their rate limiters.
type loginLimiterStore struct {
	limiters       map[string]*rate.Limiter
	attemptsPerMin int
	mu             sync.Mutex
}

// getLimiter returns the rate limiter for a given IP, creating one if it
// doesn't exist.
func (s *loginLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.attemptsPerMin)), s.attemptsPerMin)
		s.limiters[ip] = limiter
	}
	return limiter
}

// LoginRateLimitMiddleware throttles login attempts per client IP. This is a
// hardening on top of the credential check; it does not replace it.
func LoginRateLimitMiddleware(attemptsPerMin int) gin.HandlerFunc {
	if attemptsPerMin <= 0 {
		attemptsPerMin = 10
	}
	store := &loginLimiterStore{
		limiters:       make(map[string]*rate.Limiter),
		attemptsPerMin: attemptsPerMin,
	}
	return func(c *gin.Context) {
		ip := getClientIP(c)
		limiter := store.getLimiter(ip)
		if !limiter.Allow() {
			zap.L().Warn("Login rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts. Try again later."})
			return
		}
		c.Next()
	}
}
