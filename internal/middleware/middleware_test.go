package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(store CounterStore, rate int) *gin.Engine {
	router := gin.New()
	router.Use(NewRateLimiter(store, rate, logrus.New()).RateLimit())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return router
}

func doRequest(router http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_MemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	router := newLimitedRouter(store, 2)

	assert.Equal(t, http.StatusOK, doRequest(router, "GET", "/ping", nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "GET", "/ping", nil).Code)

	w := doRequest(router, "GET", "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestMemoryStore_WindowResets(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	count, err := store.Increment(context.Background(), "ip", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, _ = store.Increment(context.Background(), "ip", time.Minute)
	assert.Equal(t, int64(2), count)

	now = now.Add(61 * time.Second)
	count, _ = store.Increment(context.Background(), "ip", time.Minute)
	assert.Equal(t, int64(1), count)
}

func TestRateLimit_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	router := newLimitedRouter(NewRedisStore(client), 1)

	assert.Equal(t, http.StatusOK, doRequest(router, "GET", "/ping", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "GET", "/ping", nil).Code)

	assert.True(t, mr.Exists("ratelimit:10.0.0.1"))
	assert.Equal(t, time.Minute, mr.TTL("ratelimit:10.0.0.1"))

	mr.FastForward(61 * time.Second)
	assert.Equal(t, http.StatusOK, doRequest(router, "GET", "/ping", nil).Code)
}

type brokenStore struct{}

func (brokenStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestRateLimit_StoreErrorAllowsRequest(t *testing.T) {
	router := newLimitedRouter(brokenStore{}, 1)

	assert.Equal(t, http.StatusOK, doRequest(router, "GET", "/ping", nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "GET", "/ping", nil).Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	router := newLimitedRouter(brokenStore{}, 0)
	assert.Equal(t, http.StatusOK, doRequest(router, "GET", "/ping", nil).Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := doRequest(router, "GET", "/id", nil)
	generated := w.Header().Get("X-Request-ID")
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	w = doRequest(router, "GET", "/id", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"*"}))
	router.POST("/api/faq", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doRequest(router, "OPTIONS", "/api/faq", map[string]string{"Origin": "https://chat.example.org"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://chat.example.org", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	restricted := gin.New()
	restricted.Use(CORS([]string{"https://allowed.example.org"}))
	restricted.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w = doRequest(restricted, "GET", "/x", map[string]string{"Origin": "https://other.example.org"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeadersAndLogger(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Logger(logrus.New()), SecurityHeaders())
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doRequest(router, "GET", "/x", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
