// Package backendtest runs a canned coordination API for handler tests.
package backendtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"coordinator-console/internal/clients/backend"
	"coordinator-console/internal/observability"
)

// Response is what the server answers for one path.
type Response struct {
	Status int
	Body   string
}

func OK(body string) Response {
	return Response{Status: http.StatusOK, Body: body}
}

func Fail(status int, message string) Response {
	raw, _ := json.Marshal(map[string]string{"message": message})
	return Response{Status: status, Body: string(raw)}
}

type Server struct {
	mu     sync.Mutex
	routes map[string]Response
	calls  map[string]int
	bodies map[string]map[string]any
	auth   map[string]string
	url    string
	client *backend.Client
}

// New starts a server answering routes keyed by URL path. Unknown paths get a 404.
func New(t *testing.T, routes map[string]Response) *Server {
	t.Helper()
	s := &Server{
		routes: routes,
		calls:  map[string]int{},
		bodies: map[string]map[string]any{},
		auth:   map[string]string{},
	}
	srv := httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(srv.Close)
	s.url = srv.URL
	s.client = backend.NewClient(srv.URL, 5*time.Second, observability.NewNopLogger())
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.calls[r.URL.Path]++
	s.auth[r.URL.Path] = r.Header.Get("Authorization")
	if len(raw) > 0 {
		var body map[string]any
		if json.Unmarshal(raw, &body) == nil {
			s.bodies[r.URL.Path] = body
		}
	}
	resp, ok := s.routes[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		resp = Fail(http.StatusNotFound, "no such route")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}

// URL is the base URL to configure a backend client with.
func (s *Server) URL() string {
	return s.url
}

func (s *Server) Client() *backend.Client {
	return s.client
}

// Calls reports how often path was requested.
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// LastBody returns the decoded JSON body of the latest request to path.
func (s *Server) LastBody(path string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bodies[path]
}

// LastAuth returns the Authorization header of the latest request to path.
func (s *Server) LastAuth(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth[path]
}
