//go:build integration

package integration

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/plazasales/storefront/internal/adapters/clients"
	"github.com/plazasales/storefront/internal/adapters/clients/acl"
	"github.com/plazasales/storefront/internal/adapters/flags"
	storefronthttp "github.com/plazasales/storefront/internal/adapters/http"
	"github.com/plazasales/storefront/internal/adapters/http/handlers"
	"github.com/plazasales/storefront/internal/adapters/recaptcha"
	"github.com/plazasales/storefront/internal/adapters/specsheet"
	"github.com/plazasales/storefront/internal/adapters/storage"
	"github.com/plazasales/storefront/internal/adapters/visitor"
	"github.com/plazasales/storefront/internal/app"
	"github.com/plazasales/storefront/internal/platform/config"
	"github.com/plazasales/storefront/internal/platform/telemetry"
	"github.com/plazasales/storefront/internal/ports"
)

// fakeBackend serves canned JSON by exact path and records what it was asked.
type fakeBackend struct {
	mu        sync.Mutex
	routes    map[string]fakeRoute
	requests  []*http.Request
	bodies    []string
	fallback  int
	callsByTo map[string]int
}

type fakeRoute struct {
	status int
	body   string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		routes:    make(map[string]fakeRoute),
		fallback:  http.StatusNotFound,
		callsByTo: make(map[string]int),
	}
}

func (f *fakeBackend) handle(method, path string, status int, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, ok := body.(string)
	if !ok {
		b, _ := json.Marshal(body)
		raw = string(b)
	}

	f.routes[method+" "+path] = fakeRoute{status: status, body: raw}
}

func (f *fakeBackend) calls(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.callsByTo[method+" "+path]
}

func (f *fakeBackend) lastRequest() (*http.Request, string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.requests) == 0 {
		return nil, ""
	}

	return f.requests[len(f.requests)-1], f.bodies[len(f.bodies)-1]
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.Path

	f.mu.Lock()
	f.requests = append(f.requests, r.Clone(r.Context()))
	f.bodies = append(f.bodies, string(body))
	f.callsByTo[key]++
	route, ok := f.routes[key]
	fallback := f.fallback
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if !ok {
		w.WriteHeader(fallback)
		_, _ = io.WriteString(w, `{"status":"error","message":"not found"}`)
		return
	}

	w.WriteHeader(route.status)
	_, _ = io.WriteString(w, route.body)
}

// stack is the storefront API wired as in production, against a fake
// backend, an in-memory visitor store and no attachment storage.
type stack struct {
	backend *fakeBackend
	server  *httptest.Server
	client  *http.Client
	health  *ports.DefaultHealthRegistry
}

func testClientConfig(baseURL string) *clients.Config {
	return &clients.Config{
		ServiceName: "backend-api",
		BaseURL:     baseURL,
		Timeout:     2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       100 * time.Millisecond,
			HalfOpenLimit: 1,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     time.Minute,
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newStack(t *testing.T, mutate ...func(*clients.Config)) *stack {
	t.Helper()

	gin.SetMode(gin.TestMode)

	backend := newFakeBackend()
	backendServer := httptest.NewServer(backend)
	t.Cleanup(backendServer.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	clientCfg := testClientConfig(backendServer.URL)
	for _, m := range mutate {
		m(clientCfg)
	}

	client, err := clients.New(clientCfg)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	api := acl.NewBackend(client, logger)

	captcha, err := recaptcha.New(config.RecaptchaConfig{}, nil, logger)
	if err != nil {
		t.Fatalf("creating captcha verifier: %v", err)
	}

	metrics, err := telemetry.NewStorefrontMetrics(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("registering metrics: %v", err)
	}

	health := ports.NewHealthRegistry(time.Second)
	if err := health.Register(api); err != nil {
		t.Fatalf("registering health check: %v", err)
	}

	svcCfg := &app.ServiceConfig{Logger: logger, Metrics: metrics, SiteURL: "https://plazasales.test"}
	featureFlags := flags.NewStatic(map[string]bool{ports.FlagProductsPageAds: true, ports.FlagNewsletterPrompt: true})
	visitors := visitor.NewMemoryStore()

	tokens, err := visitor.NewTokens("integration-visitor-secret", 24*time.Hour)
	if err != nil {
		t.Fatalf("creating tokens: %v", err)
	}

	engine := gin.New()
	storefronthttp.SetupRouter(engine, storefronthttp.RouterConfig{
		Logger:         logger,
		AppConfig:      &config.AppConfig{Name: "storefront-integration"},
		HealthHandler:  handlers.NewHealthHandler(health, handlers.NewBuildInfo("test", "none", "now")),
		Timeout:        5 * time.Second,
		UploadTimeout:  10 * time.Second,
		MaxBodySize:    1 << 20,
		UploadBodySize: 11 << 20,
		VisitorTokens:  tokens,
		VisitorConfig:  config.VisitorConfig{CookieName: "sc_visitor"},
		Catalog: handlers.NewCatalogHandler(app.NewCatalogService(app.CatalogDeps{
			Catalog: api, Brands: api, Blogs: api, Ads: api, SEO: api,
			Flags:  featureFlags,
			Sheets: specsheet.New(),
		}, svcCfg)),
		Brands: handlers.NewBrandHandler(app.NewBrandService(api, svcCfg)),
		Blogs:  handlers.NewBlogHandler(app.NewBlogService(api, api, svcCfg)),
		Careers: handlers.NewCareerHandler(app.NewCareerService(app.CareerDeps{
			Careers:   api,
			Visitors:  visitors,
			Captcha:   captcha,
			Files:     storage.Disabled{},
			ObjectKey: storage.ApplicationKey,
		}, app.UploadPolicy{MaxSizeMB: 5, AllowedExtensions: []string{".pdf"}, PresignTTL: time.Hour}, svcCfg)),
		Submission: handlers.NewSubmissionHandler(app.NewSubmissionService(app.SubmissionDeps{
			Submissions: api,
			Captcha:     captcha,
			Visitors:    visitors,
			Flags:       featureFlags,
		}, time.Second, svcCfg)),
		Ads: handlers.NewAdHandler(app.NewAdService(api, captcha, svcCfg)),
		SEO: handlers.NewSEOHandler(app.NewSEOService(api, svcCfg)),
	})

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return &stack{
		backend: backend,
		server:  server,
		client:  newCookieClient(),
		health:  health,
	}
}

func newCookieClient() *http.Client {
	jar, _ := cookiejar.New(nil)

	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

func (s *stack) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()

	return s.do(t, http.MethodGet, path, "")
}

func (s *stack) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, s.server.URL+path, r)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}

	return resp, b
}
