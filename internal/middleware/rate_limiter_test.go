package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	middleware := RateLimiter(2, 4)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// initial burst is allowed
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "192.168.1.100:12345"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// the limiter rejects once the burst is spent
	rateLimited := false
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "192.168.1.100:12345"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler(c)
		if err == nil && rec.Code == http.StatusTooManyRequests {
			rateLimited = true
			break
		}
	}
	assert.True(t, rateLimited, "Should be rate limited after many requests")
}

func TestRateLimiter_PerIP(t *testing.T) {
	e := echo.New()
	middleware := RateLimiter(1, 1)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	exhaust := httptest.NewRequest(http.MethodGet, "/test", nil)
	exhaust.RemoteAddr = "192.168.1.1:12345"
	rec := httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(exhaust, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	blocked := httptest.NewRequest(http.MethodGet, "/test", nil)
	blocked.RemoteAddr = "192.168.1.1:12345"
	rec = httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(blocked, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// a different client gets its own budget
	other := httptest.NewRequest(http.MethodGet, "/test", nil)
	other.RemoteAddr = "10.0.0.1:12345"
	rec = httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(other, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
