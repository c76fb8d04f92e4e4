package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/example/go-lexprep/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// --- New & builder methods ---

func TestNew_ShutdownTimeoutFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.ShutdownTimeout = 7

	s := New(cfg)
	if s == nil {
		t.Fatal("New() returned nil")
	}

	if s.shutdownTimeout != 7*time.Second {
		t.Errorf("shutdownTimeout = %v; want 7s", s.shutdownTimeout)
	}
}

func TestWithShutdownTimeout_Chaining(t *testing.T) {
	s := New(config.DefaultConfig())

	returned := s.WithShutdownTimeout(5 * time.Second)
	if returned != s {
		t.Error("WithShutdownTimeout should return the same *Server")
	}

	if s.shutdownTimeout != 5*time.Second {
		t.Errorf("shutdownTimeout = %v; want 5s", s.shutdownTimeout)
	}
}

// --- worker slots ---

func TestAcquire_TimesOutWhenSlotsBusy(t *testing.T) {
	h := newHandler(WithWorkers(1), WithRequestTimeout(20*time.Millisecond))
	h.sem <- struct{}{} // occupy the only slot
	mux := h.routes()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/preprocess", strings.NewReader(`{"text":"Hi."}`))

	start := time.Now()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d", rec.Code)
	}

	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("returned after %v; want to wait for the request timeout", elapsed)
	}

	if got := testutil.ToFloat64(h.metrics.requests.WithLabelValues(routePreprocess, "503")); got != 1 {
		t.Errorf("requests{503} = %v; want 1", got)
	}
}

func TestAcquire_ClientCancelledWhileWaiting(t *testing.T) {
	h := newHandler(WithWorkers(1), WithRequestTimeout(time.Minute))
	h.sem <- struct{}{}
	mux := h.routes()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/preprocess", strings.NewReader(`{"text":"Hi."}`)).WithContext(ctx)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d", rec.Code)
	}
}

func TestAcquire_ReleasesSlot(t *testing.T) {
	h := newHandler(WithWorkers(1))
	mux := h.routes()

	for i := range 3 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/preprocess", strings.NewReader(`{"text":"Hi."}`))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: want 200, got %d", i, rec.Code)
		}
	}

	if n := len(h.sem); n != 0 {
		t.Errorf("%d slots still held after requests finished", n)
	}
}

// --- result cache ---

func TestPreprocess_CacheHit(t *testing.T) {
	h := newHandler(WithCacheSize(2))

	first, hit := h.preprocess("The cat sat.")
	if hit {
		t.Error("first lookup reported a cache hit")
	}

	second, hit := h.preprocess("The cat sat.")
	if !hit {
		t.Error("second lookup missed the cache")
	}

	if len(first.Tokens) != len(second.Tokens) || len(second.Tokens) != 4 {
		t.Errorf("cached result differs: %v vs %v", first.Tokens, second.Tokens)
	}

	if got := testutil.ToFloat64(h.metrics.cacheHits); got != 1 {
		t.Errorf("cache hits = %v; want 1", got)
	}

	if got := testutil.CollectAndCount(h.metrics.duration); got != 1 {
		t.Errorf("duration series = %d; want 1", got)
	}
}

func TestPreprocess_CacheEvictsLeastRecentlyUsed(t *testing.T) {
	h := newHandler(WithCacheSize(1))

	h.preprocess("a")
	h.preprocess("b")

	if _, hit := h.preprocess("a"); hit {
		t.Error("evicted entry reported a cache hit")
	}

	if _, hit := h.preprocess("a"); !hit {
		t.Error("re-added entry missed the cache")
	}
}

func TestPreprocess_CacheDisabled(t *testing.T) {
	h := newHandler(WithCacheSize(0))
	if h.cache != nil {
		t.Fatal("cache should be nil when size is 0")
	}

	h.preprocess("a")
	if _, hit := h.preprocess("a"); hit {
		t.Error("disabled cache reported a hit")
	}
}

// --- metrics registration ---

func TestNewHandler_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	a := newHandler(WithRegisterer(reg))
	b := newHandler(WithRegisterer(reg))

	a.preprocess("one")
	b.preprocess("two")

	if a.metrics.duration != b.metrics.duration {
		t.Error("handlers on one registry should share collectors")
	}

	got, err := testutil.GatherAndCount(reg, "lexprep_tokens_per_document")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	if got != 1 {
		t.Errorf("tokens histogram series = %d; want 1", got)
	}
}

// --- ProbeHTTP ---

func TestProbeHTTP_Success(t *testing.T) {
	srv := httptest.NewServer(NewHandler())
	defer srv.Close()

	// ProbeHTTP adds the scheme itself.
	addr := srv.Listener.Addr().String()

	if err := ProbeHTTP(addr); err != nil {
		t.Errorf("ProbeHTTP(%q) = %v; want nil", addr, err)
	}
}

func TestProbeHTTP_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if err := ProbeHTTP(srv.Listener.Addr().String()); err == nil {
		t.Error("ProbeHTTP() = nil; want error for non-200 response")
	}
}

func TestProbeHTTP_ConnectionRefused(t *testing.T) {
	if err := ProbeHTTP("127.0.0.1:1"); err == nil {
		t.Error("ProbeHTTP() = nil; want error for unreachable host")
	}
}

// --- Start: invalid lexicon ---

func TestStart_MissingLexiconFails(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Lexicon.Path = "/nonexistent/lexicon.yaml"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := New(cfg).WithRegisterer(prometheus.NewRegistry()).Start(ctx); err == nil {
		t.Error("Start() = nil; want error for missing lexicon")
	}
}

// --- Functional options ---

func TestOptions(t *testing.T) {
	opts := defaultOptions()
	WithMaxTextBytes(1024)(&opts)
	WithWorkers(8)(&opts)
	WithRequestTimeout(90 * time.Second)(&opts)
	WithCacheSize(16)(&opts)

	if opts.maxTextBytes != 1024 {
		t.Errorf("maxTextBytes = %d; want 1024", opts.maxTextBytes)
	}

	if opts.workers != 8 {
		t.Errorf("workers = %d; want 8", opts.workers)
	}

	if opts.requestTimeout != 90*time.Second {
		t.Errorf("requestTimeout = %v; want 90s", opts.requestTimeout)
	}

	if opts.cacheSize != 16 {
		t.Errorf("cacheSize = %d; want 16", opts.cacheSize)
	}
}

func TestDefaultOptions_MatchConfigDefaults(t *testing.T) {
	opts := defaultOptions()
	cfg := config.DefaultConfig().Server

	if opts.maxTextBytes != cfg.MaxTextBytes {
		t.Errorf("maxTextBytes = %d; config default %d", opts.maxTextBytes, cfg.MaxTextBytes)
	}

	if opts.workers != cfg.Workers {
		t.Errorf("workers = %d; config default %d", opts.workers, cfg.Workers)
	}

	if opts.requestTimeout != time.Duration(cfg.RequestTimeout)*time.Second {
		t.Errorf("requestTimeout = %v; config default %ds", opts.requestTimeout, cfg.RequestTimeout)
	}

	if opts.cacheSize != cfg.CacheSize {
		t.Errorf("cacheSize = %d; config default %d", opts.cacheSize, cfg.CacheSize)
	}
}
