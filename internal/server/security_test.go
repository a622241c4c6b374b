package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "test-admin-key"

	t.Run("Valid Key", func(t *testing.T) {
		detector := NewSuspiciousActivityDetector()
		handler := AuthMiddleware(apiKey, nil, detector)(okHandler())

		req := httptest.NewRequest("POST", "/api/v1/admin/fights/1/cancel", nil)
		req.Header.Set(HeaderAPIKey, apiKey)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing Key", func(t *testing.T) {
		detector := NewSuspiciousActivityDetector()
		handler := AuthMiddleware(apiKey, nil, detector)(okHandler())

		req := httptest.NewRequest("POST", "/api/v1/admin/fights/1/cancel", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong Key", func(t *testing.T) {
		detector := NewSuspiciousActivityDetector()
		handler := AuthMiddleware(apiKey, nil, detector)(okHandler())

		req := httptest.NewRequest("POST", "/api/v1/admin/fights/1/cancel", nil)
		req.Header.Set(HeaderAPIKey, "wrong-key")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/events", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, w.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	handler := RequestSizeLimitMiddleware(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, readErr = r.Body.Read(buf)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/api/v1/predictions", strings.NewReader(strings.Repeat("x", 64)))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Error(t, readErr)
	assert.Contains(t, readErr.Error(), "request body too large")
}

func TestSecurityLoggingMiddleware_RateLimit(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := SecurityLoggingMiddleware(nil, detector)(okHandler())

	for i := 0; i < 1000; i++ {
		req := httptest.NewRequest("GET", "/api/v1/events", nil)
		req.RemoteAddr = "203.0.113.50:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest("GET", "/api/v1/events", nil)
	req.RemoteAddr = "203.0.113.50:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Other IPs are unaffected
	req = httptest.NewRequest("GET", "/api/v1/events", nil)
	req.RemoteAddr = "203.0.113.51:1234"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExtractIP(t *testing.T) {
	t.Run("Direct Connection", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "203.0.113.10:5678"

		assert.Equal(t, "203.0.113.10", extractIP(req, nil))
	})

	t.Run("Forwarded Header Ignored From Untrusted Source", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "203.0.113.10:5678"
		req.Header.Set(HeaderForwardedFor, "198.51.100.1")

		assert.Equal(t, "203.0.113.10", extractIP(req, []string{"10.0.0.1"}))
	})

	t.Run("Forwarded Header Honored From Trusted Proxy", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:5678"
		req.Header.Set(HeaderForwardedFor, "198.51.100.1, 198.51.100.2")

		// Rightmost hop is the one the trusted proxy saw directly
		assert.Equal(t, "198.51.100.2", extractIP(req, []string{"10.0.0.1"}))
	})
}
