package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuth_Disabled(t *testing.T) {
	h := BearerAuthMiddleware(nil)(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/search/products", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200 with auth disabled, got %d", rr.Code)
	}
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	h := BearerAuthMiddleware([]string{"key-1"})(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/search/products", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestBearerAuth_WrongScheme(t *testing.T) {
	h := BearerAuthMiddleware([]string{"key-1"})(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/search/products", http.NoBody)
	req.Header.Set("Authorization", "Basic key-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestBearerAuth_InvalidKey(t *testing.T) {
	h := BearerAuthMiddleware([]string{"key-1"})(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/search/products", http.NoBody)
	req.Header.Set("Authorization", "Bearer wrong")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestBearerAuth_ValidKey(t *testing.T) {
	h := BearerAuthMiddleware([]string{"key-1", "key-2"})(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/search/products", http.NoBody)
	req.Header.Set("Authorization", "Bearer key-2")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

func TestBearerAuth_ExemptPaths(t *testing.T) {
	h := BearerAuthMiddleware([]string{"key-1"})(okHandler())

	for _, path := range []string{"/health", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, http.NoBody)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Errorf("expected 200 for exempt path %s, got %d", path, rr.Code)
			}
		})
	}
}
