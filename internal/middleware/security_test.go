package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func applySecurityHeaders(cfg SecurityHeadersConfig) *httptest.ResponseRecorder {
	handler := SecurityHeaders(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/home", nil))
	return rr
}

func TestSecurityHeaders_Production(t *testing.T) {
	rr := applySecurityHeaders(DefaultSecurityHeadersConfig(false))

	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rr.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	hsts := rr.Header().Get("Strict-Transport-Security")
	if !strings.Contains(hsts, "max-age=31536000") || !strings.Contains(hsts, "includeSubDomains") {
		t.Errorf("Strict-Transport-Security = %q", hsts)
	}
	csp := rr.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "default-src 'self'") {
		t.Errorf("Content-Security-Policy = %q", csp)
	}
}

func TestSecurityHeaders_DevDisablesHSTS(t *testing.T) {
	rr := applySecurityHeaders(DefaultSecurityHeadersConfig(true))

	if got := rr.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("expected no HSTS in dev, got %q", got)
	}
}

func TestBuildCSP_Order(t *testing.T) {
	csp := buildCSP(map[string]string{
		"script-src":  "'self'",
		"default-src": "'self'",
	})
	if !strings.HasPrefix(csp, "default-src") {
		t.Errorf("directives out of order: %q", csp)
	}
}
