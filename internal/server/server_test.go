package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/internal/config"
	"github.com/nfrund/zbd-node-docs/internal/hub"
	"github.com/nfrund/zbd-node-docs/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{AddSource: true}))
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")
	assert.Equal(t, "Internal Server Error", rec.Body.String())

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"")
	assert.Contains(t, logOutput, "stack_trace=")
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

func TestHTTPErrorHandler_APIErrorsAreJSON(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e)
	e.GET("/api/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/boom", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.JSONEq(t, `{"code":"i'm_a_teapot","message":"short and stout"}`, rec.Body.String())
}

func newTestServer(t *testing.T, reloadHub *hub.Hub) *Server {
	t.Helper()
	cfg := &config.Config{
		Addr:          ":0",
		AppBaseURL:    "http://localhost",
		Env:           config.EnvDevelopment,
		PlaygroundURL: "https://nextjs.zbd.dev",
		APIRateLimit:  100,
	}
	s := New(Dependencies{
		Config:    cfg,
		Store:     catalog.NewStore(catalog.Default(), nil),
		Renderer:  rendering.NewUniversalRenderer(),
		Cache:     rendering.NewPageCache(),
		ReloadHub: reloadHub,
	})
	s.RegisterRoutes()
	return s
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		path        string
		status      int
		contentType string
		contains    string
	}{
		{"/", http.StatusOK, "text/html", `id="api-methods"`},
		{"/health", http.StatusOK, "text/plain", "OK"},
		{"/static/css/site.css", http.StatusOK, "text/css", ".entity-badge"},
		{"/static/js/copy.js", http.StatusOK, "javascript", "clipboard"},
		{"/api/entities", http.StatusOK, "application/json", "Lightning Address"},
		{"/api/methods/nope", http.StatusNotFound, "application/json", "not_found"},
		{"/partials/methods?entity=wallet", http.StatusOK, "text/html", `data-method="getWallet"`},
		{"/does-not-exist", http.StatusNotFound, "text/plain", "Not Found"},
		{"/ws/reload", http.StatusNotFound, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.contentType != "" {
				assert.Contains(t, rec.Header().Get(echo.HeaderContentType), tt.contentType)
			}
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestRoutes_LiveReloadEnabled(t *testing.T) {
	s := newTestServer(t, hub.NewHub())

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), "livereload.js")

	found := false
	for _, r := range s.E.Routes() {
		if r.Path == "/ws/reload" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRoutes_APIIsRateLimited(t *testing.T) {
	s := newTestServer(t, nil)
	s.Cfg.APIRateLimit = 2
	// Rebuild so the limiter picks up the lower limit.
	s = New(Dependencies{
		Config:   s.Cfg,
		Store:    catalog.NewStore(catalog.Default(), nil),
		Renderer: rendering.NewUniversalRenderer(),
	})
	s.RegisterRoutes()

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/entities", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)
		last = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "pages are not rate limited")
	assert.True(t, strings.Contains(rec.Body.String(), "<!doctype html>") || strings.Contains(rec.Body.String(), "<!DOCTYPE html>"))
}
