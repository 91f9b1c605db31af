package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tutorlink/config"

	"github.com/gin-gonic/gin"
)

func newRateLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitUsesConfiguredRequestsPerMinute(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 2
	defer func() { config.AppConfig.MaxRequestsPerMin = prev }()

	r := newRateLimitedRouter()

	// Limiters are cached per IP across the process, so each test case needs
	// an address of its own.
	ip := "203.0.113.7"
	for i := 0; i < 2; i++ {
		if code := doRequest(r, ip); code != http.StatusOK {
			t.Fatalf("request %d: got %d, want %d", i+1, code, http.StatusOK)
		}
	}
	if code := doRequest(r, ip); code != http.StatusTooManyRequests {
		t.Errorf("request over the limit: got %d, want %d", code, http.StatusTooManyRequests)
	}
}

func TestRateLimitIsPerClientIP(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 1
	defer func() { config.AppConfig.MaxRequestsPerMin = prev }()

	r := newRateLimitedRouter()

	if code := doRequest(r, "203.0.113.8"); code != http.StatusOK {
		t.Fatalf("first client blocked: got %d", code)
	}
	if code := doRequest(r, "203.0.113.8"); code != http.StatusTooManyRequests {
		t.Errorf("first client should be throttled: got %d", code)
	}
	if code := doRequest(r, "203.0.113.9"); code != http.StatusOK {
		t.Errorf("second client should not share the first client's budget: got %d", code)
	}
}
