package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubLimiter struct {
	allowed   bool
	remaining int
	err       error
}

func (s *stubLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	return s.allowed, s.err
}

func (s *stubLimiter) Remaining(ctx context.Context, key string, limit int, window time.Duration) (int, error) {
	return s.remaining, s.err
}

func performRateLimited(t *testing.T, cfg RateLimitConfig, limiter RateLimiter) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RateLimit(cfg, limiter))
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	return w
}

func TestRateLimitAllowedSetsQuotaHeaders(t *testing.T) {
	limiter := &stubLimiter{allowed: true, remaining: 7}
	w := performRateLimited(t, RateLimitConfig{Enabled: true, RequestsPerSecond: 10}, limiter)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "7", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitDeniedReturns429(t *testing.T) {
	limiter := &stubLimiter{allowed: false, remaining: 0}
	w := performRateLimited(t, RateLimitConfig{Enabled: true, RequestsPerSecond: 10}, limiter)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestRateLimitFailsOpenOnLimiterError(t *testing.T) {
	limiter := &stubLimiter{err: fmt.Errorf("redis down")}
	w := performRateLimited(t, RateLimitConfig{Enabled: true, RequestsPerSecond: 10}, limiter)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	w := performRateLimited(t, RateLimitConfig{Enabled: false}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}
