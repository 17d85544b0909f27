package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestAddressLimiterAllowsUpToBurst(t *testing.T) {
	limiter := newAddressLimiter(rate.Limit(1), 3)

	assert.True(t, limiter.allow("1.2.3.4"))
	assert.True(t, limiter.allow("1.2.3.4"))
	assert.True(t, limiter.allow("1.2.3.4"))
	assert.False(t, limiter.allow("1.2.3.4"))
}

func TestAddressLimiterTracksAddressesIndependently(t *testing.T) {
	limiter := newAddressLimiter(rate.Limit(1), 1)

	assert.True(t, limiter.allow("1.1.1.1"))
	assert.True(t, limiter.allow("2.2.2.2"))
	assert.False(t, limiter.allow("1.1.1.1"))
}

func TestRateLimitMiddlewareRejectsOverLimit(t *testing.T) {
	limiter := newAddressLimiter(rate.Limit(1), 1)
	handler := rateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req1 := httptest.NewRequest(http.MethodPost, "/api/pack", nil)
	req1.RemoteAddr = "10.0.0.1:5555"
	rec1 := httptest.NewRecorder()
	handler.ServeHTTP(rec1, req1)
	assert.Equal(t, http.StatusOK, rec1.Code)

	req2 := httptest.NewRequest(http.MethodPost, "/api/pack", nil)
	req2.RemoteAddr = "10.0.0.1:5556"
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, req2)
	assert.Equal(t, http.StatusTooManyRequests, rec2.Code)
}
