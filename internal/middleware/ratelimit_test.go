package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func newLimitedRouter(client *redis.Client, maxRequests int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(client, "vs:", maxRequests, window))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func requestFrom(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":40000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_InvalidArguments(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	assert.Panics(t, func() { RateLimit(nil, "vs:", 10, time.Second) })
	assert.Panics(t, func() { RateLimit(client, "vs:", 0, time.Second) })
	assert.Panics(t, func() { RateLimit(client, "vs:", 10, 0) })
}

func TestRateLimit_RejectsOverLimitUntilWindowResets(t *testing.T) {
	mr, client := setupTestRedis(t)
	r := newLimitedRouter(client, 3, time.Minute)

	for i := 1; i <= 3; i++ {
		w := requestFrom(r, "10.0.0.1")
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, strconv.Itoa(3-i), w.Header().Get("X-RateLimit-Remaining"))
	}

	w := requestFrom(r, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	mr.FastForward(time.Minute)

	w = requestFrom(r, "10.0.0.1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_CountsPerClientIP(t *testing.T) {
	_, client := setupTestRedis(t)
	r := newLimitedRouter(client, 1, time.Minute)

	assert.Equal(t, http.StatusOK, requestFrom(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, requestFrom(r, "10.0.0.2").Code)
}

func TestRateLimit_RestoresMissingExpiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	r := newLimitedRouter(client, 1, time.Minute)

	// 计数已超限但没有 TTL 的 key
	require.NoError(t, mr.Set("vs:ratelimit:10.0.0.1", "5"))

	assert.Equal(t, http.StatusTooManyRequests, requestFrom(r, "10.0.0.1").Code)
	assert.Equal(t, time.Minute, mr.TTL("vs:ratelimit:10.0.0.1"))

	mr.FastForward(time.Minute)
	assert.Equal(t, http.StatusOK, requestFrom(r, "10.0.0.1").Code)
}

func TestRateLimit_AllowsWhenRedisUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	w := requestFrom(newLimitedRouter(client, 1, time.Minute), "10.0.0.1")

	assert.Equal(t, http.StatusOK, w.Code)
}
