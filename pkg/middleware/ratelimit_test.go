package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/galaxybooks/bookstore-backend/pkg/config"
)

func newRateLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	router := gin.New()
	router.Use(NewRateLimiter(cfg, zap.NewNop()).Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"pong": true})
	})
	return router
}

func TestRateLimiter_Disabled(t *testing.T) {
	router := newRateLimitedRouter(config.RateLimitConfig{Enabled: false})

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != 200 {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}
}

func TestRateLimiter_BurstExceeded(t *testing.T) {
	router := newRateLimitedRouter(config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 1,
		Burst:             3,
	})

	statuses := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		statuses = append(statuses, w.Code)
	}

	for i := 0; i < 3; i++ {
		if statuses[i] != 200 {
			t.Errorf("request %d inside burst: status = %d, want 200", i, statuses[i])
		}
	}
	if statuses[3] != 429 && statuses[4] != 429 {
		t.Errorf("no request beyond the burst was limited: %v", statuses)
	}
}
