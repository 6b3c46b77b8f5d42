package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/portfolio/internal/analytics"
	"github.com/nfrund/portfolio/internal/app"
	"github.com/nfrund/portfolio/internal/config"
	"github.com/nfrund/portfolio/internal/content"
	"github.com/nfrund/portfolio/internal/pubsub"
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

	setupErrorHandling(e, nil)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, `error="a deliberate unhandled error occurred"`)
	assert.Contains(t, logOutput, "stack_trace=")
	assert.Contains(t, logOutput, "runtime/debug/stack.go")
	assert.Contains(t, logOutput, "internal/server/server_test.go")
}

func TestHTTPErrorHandler_PassesThroughHTTPErrors(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e, nil)
	e.GET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, rec.Body.String(), "short and stout")
}

var revealPath = regexp.MustCompile(`hx-post="/reveal/([0-9a-f-]{36})/`)

func testConfig() *config.Config {
	return &config.Config{
		AppAddr:       "127.0.0.1:0",
		AppEnv:        "test",
		SessionSecret: "test-session-secret",
		DefaultTheme:  "dark",
		RevealTTL:     time.Minute,
	}
}

// newTestServer builds a fully wired server with its modules booted.
func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	bus := pubsub.NewWatermillBridge()

	s, err := New(Dependencies{
		Config:         cfg,
		Content:        content.NewStore(content.Default()),
		PubSub:         bus,
		LiveReloadPath: app.LiveReloadPath(cfg),
	})
	require.NoError(t, err)
	s.RegisterRoutes()

	ctx, cancel := context.WithCancel(context.Background())
	modules := app.NewModules(cfg)
	require.NoError(t, s.InitModules(ctx, modules))

	t.Cleanup(func() {
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
		defer done()
		_ = s.Shutdown(shutdownCtx)
	})
	return s
}

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New(Dependencies{})
	assert.Error(t, err)

	_, err = New(Dependencies{Config: testConfig()})
	assert.Error(t, err)

	cfg := testConfig()
	cfg.DefaultTheme = "sepia"
	_, err = New(Dependencies{Config: cfg, Content: content.NewStore(content.Default()), PubSub: pubsub.NewWatermillBridge()})
	assert.Error(t, err)
}

func TestServerRoutes(t *testing.T) {
	s := newTestServer(t, testConfig())
	ts := httptest.NewServer(s.E)
	defer ts.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	get := func(path string) (*http.Response, string) {
		t.Helper()
		resp, err := client.Get(ts.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, string(body)
	}

	t.Run("home", func(t *testing.T) {
		resp, body := get("/")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(echo.HeaderXRequestID))
		assert.Contains(t, body, `lang="en" class="dark"`)
		assert.Contains(t, body, `id="projects"`)
	})

	t.Run("health", func(t *testing.T) {
		resp, body := get("/health")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "OK", body)
	})

	t.Run("static assets", func(t *testing.T) {
		resp, body := get("/static/css/site.css")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, body)
	})

	t.Run("theme toggle persists in the session cookie", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, ts.URL+"/theme/toggle", nil)
		require.NoError(t, err)
		req.Header.Set("HX-Request", "true")
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		_, body := get("/")
		assert.NotContains(t, body, `lang="en" class="dark"`)
	})

	t.Run("reveal", func(t *testing.T) {
		_, page := get("/")
		m := revealPath.FindStringSubmatch(page)
		require.Len(t, m, 2, "the page carries reveal hooks")

		stranger, err := client.Post(ts.URL+"/reveal/6f1c2a52-8a8e-4d3c-9f7b-3c2e1f0a9b8d/skills", "", nil)
		require.NoError(t, err)
		stranger.Body.Close()
		assert.Equal(t, http.StatusNotFound, stranger.StatusCode)

		target := ts.URL + "/reveal/" + m[1] + "/skills"
		first, err := client.Post(target, "", nil)
		require.NoError(t, err)
		first.Body.Close()
		assert.Equal(t, http.StatusOK, first.StatusCode)

		second, err := client.Post(target, "", nil)
		require.NoError(t, err)
		second.Body.Close()
		assert.Equal(t, http.StatusNoContent, second.StatusCode)
	})

	t.Run("stats counts events", func(t *testing.T) {
		assert.Eventually(t, func() bool {
			_, body := get("/stats")
			var snap analytics.Snapshot
			if err := json.Unmarshal([]byte(body), &snap); err != nil {
				return false
			}
			return snap.PageViews >= 2 && snap.Reveals["skills"] == 1 && snap.ActiveViews >= 1
		}, 2*time.Second, 20*time.Millisecond)
	})

	t.Run("live reload disabled", func(t *testing.T) {
		resp, _ := get("/ws/reload")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t, testConfig())

	t.Run("browsers get the not found page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
		req.Header.Set(echo.HeaderAccept, "text/html,application/xhtml+xml")
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML))
		assert.Contains(t, rec.Body.String(), `id="not-found"`)
	})

	t.Run("other clients get json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
	})
}

func TestLiveReloadModuleMounted(t *testing.T) {
	cfg := testConfig()
	cfg.LiveReload = true
	s := newTestServer(t, cfg)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), `data-live-reload="/ws/reload"`)
}

func TestRunStopsOnCancel(t *testing.T) {
	s, err := New(Dependencies{
		Config:  testConfig(),
		Content: content.NewStore(content.Default()),
		PubSub:  pubsub.NewWatermillBridge(),
	})
	require.NoError(t, err)
	s.RegisterRoutes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
