package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stylesensai-server/internal/config"
)

func testContainer() *config.Container {
	return &config.Container{
		Config:      config.NewConfig(),
		Logger:      NewMockHandlerLogger(),
		AuthService: &mockAuthService{},
	}
}

func TestNewRouter_Health(t *testing.T) {
	router := NewRouter(testContainer())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_ProtectedRoutesRequireAuth(t *testing.T) {
	router := NewRouter(testContainer())

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/usage/check"},
		{http.MethodPost, "/api/v1/usage/increment"},
		{http.MethodPost, "/api/v1/rewrite"},
		{http.MethodPost, "/api/v1/billing/checkout"},
		{http.MethodGet, "/api/v1/history"},
		{http.MethodGet, "/api/v1/profile"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected status %d, got %d", route.method, route.path, http.StatusUnauthorized, rr.Code)
		}
	}
}
