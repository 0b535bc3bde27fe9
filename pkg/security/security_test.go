package security

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiterUpdate(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))

	rl.Update(5, time.Minute)
	assert.Equal(t, 5, rl.visitors["a"].limiter.Burst())
	assert.Equal(t, 5, rl.burst)

	// 非法值忽略
	rl.Update(0, time.Minute)
	assert.Equal(t, 5, rl.burst)
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	rl.Allow("a")
	rl.sweep(time.Now().Add(2 * time.Minute))
	assert.Empty(t, rl.visitors)
}

func TestMiddlewares(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173"}), Secure(), NewRateLimiter(1, time.Minute).Middleware())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMaxBody(t *testing.T) {
	r := gin.New()
	r.Use(MaxBody(func() int64 { return 4 }))
	r.POST("/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("too long")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("ok")))
	assert.Equal(t, http.StatusOK, w.Code)
}
