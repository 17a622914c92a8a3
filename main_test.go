package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/donalddop/proteinlab/internal/config"
	"github.com/donalddop/proteinlab/pkg/db"
	"github.com/donalddop/proteinlab/pkg/handler"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	apictx := &handler.APIContext{Store: db.NewMemStore()}
	return buildHandler(apictx, config.DefaultCORSOrigins)
}

func TestRouterStatusCodes(t *testing.T) {
	root := testHandler(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/sequences", http.StatusOK},
		{http.MethodGet, "/amino-acids", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/sequences/1", http.StatusNotFound},
		{http.MethodGet, "/no/such/path", http.StatusNotFound},
		{http.MethodGet, "/favicon.ico", http.StatusNotFound},
		{http.MethodPost, "/sequences", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/sequences/1", http.StatusMethodNotAllowed},
		{http.MethodGet, "/sequences/1/mutate", http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rr := httptest.NewRecorder()
		root.ServeHTTP(rr, req)

		if rr.Code != tc.want {
			t.Errorf("%s %s: status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

func TestHandlerSetsRequestID(t *testing.T) {
	root := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID header not set")
	}
}

func TestCORSAllowsKnownOrigins(t *testing.T) {
	root := testHandler(t)

	for _, origin := range []string{
		"http://localhost:3000",
		"https://myapp.vercel.app",
	} {
		req := httptest.NewRequest(http.MethodGet, "/sequences", nil)
		req.Header.Set("Origin", origin)
		rr := httptest.NewRecorder()
		root.ServeHTTP(rr, req)

		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != origin {
			t.Errorf("origin %s: Access-Control-Allow-Origin = %q, want %q", origin, got, origin)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	root := testHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/sequences/upload", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
	if rr.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("Access-Control-Allow-Credentials not set")
	}
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	root := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/sequences", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, req)

	// The request is still served; the browser enforces the missing header.
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}
