package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)
	handler := rl.Middleware(okHandler())

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings/seva", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rr.Code)
		}
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/seva", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429 after burst", rr.Code)
	}
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := rl.Middleware(okHandler())

	first := httptest.NewRequest(http.MethodPost, "/api/quiz/start", nil)
	first.RemoteAddr = "10.0.0.1:5000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, first)
	if rr.Code != http.StatusOK {
		t.Fatalf("first ip status = %d", rr.Code)
	}

	// A different IP has its own bucket.
	second := httptest.NewRequest(http.MethodPost, "/api/quiz/start", nil)
	second.RemoteAddr = "10.0.0.2:5000"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, second)
	if rr.Code != http.StatusOK {
		t.Errorf("second ip status = %d, want 200", rr.Code)
	}
}
