package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coordinator-console/internal/bootstrap"
	"coordinator-console/internal/clients/backend/backendtest"
	"coordinator-console/internal/config"
	"coordinator-console/internal/observability"
	"coordinator-console/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, fake *backendtest.Server) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Backend: config.BackendConfig{BaseURL: fake.URL(), Timeout: 5 * time.Second},
		Auth: config.AuthConfig{
			SessionSecret:  "test-secret",
			SessionTTL:     time.Hour,
			RoleSource:     config.RoleSourceBackend,
			LoginRateLimit: 100,
		},
		Cache:    config.CacheConfig{StaleAfter: 30 * time.Second},
		Services: config.ServicesConfig{WebAppURI: "https://console.example.com"},
	}
	logger := observability.NewNopLogger()
	deps, err := bootstrap.Initialize(context.Background(), cfg, logger)
	require.NoError(t, err)

	s := New(cfg, deps, logger)
	s.Setup()
	return s
}

func (s *Server) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, s *Server) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"email":"nurse@company.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	w := s.serve(req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("login set no session cookie")
	return nil
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, backendtest.New(t, nil))

	w := s.serve(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNurseJourney(t *testing.T) {
	fake := backendtest.New(t, map[string]backendtest.Response{
		"/login":             backendtest.OK(`{"token":"t1","role":"nurse"}`),
		"/get-all-campaigns": backendtest.OK(`{"campaigns":[{"id":9,"name":"Flu","brand_id":1,"status":"Prod","notes":"","assignedNurses":[]}]}`),
	})
	s := newTestServer(t, fake)
	cookie := loginAs(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/protected/console", nil)
	req.AddCookie(cookie)
	w := s.serve(req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"kind":"assigned-campaigns"`)
	assert.Equal(t, "Bearer t1", fake.LastAuth("/get-all-campaigns"))

	req = httptest.NewRequest(http.MethodGet, "/api/protected/brands", nil)
	req.AddCookie(cookie)
	w = s.serve(req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/protected/campaigns", nil)
	req.AddCookie(cookie)
	w = s.serve(req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/protected/cards/channels", nil)
	req.AddCookie(cookie)
	w = s.serve(req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"channels":[]}`, w.Body.String())
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	s := newTestServer(t, backendtest.New(t, nil))

	w := s.serve(httptest.NewRequest(http.MethodGet, "/api/protected/console", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "https://console.example.com/login")

	req := httptest.NewRequest(http.MethodGet, "/api/protected/console", nil)
	req.Header.Set("Accept", "text/html")
	w = s.serve(req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://console.example.com/login", w.Header().Get("Location"))
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t, backendtest.New(t, nil))

	w := s.serve(httptest.NewRequest(http.MethodGet, "/api/protected/nothing-here", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)
	assert.Contains(t, w.Body.String(), "Route not found")
}
