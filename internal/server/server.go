package server

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/example/go-lexprep/internal/config"
	"github.com/example/go-lexprep/internal/lexicon"
	"github.com/example/go-lexprep/internal/text"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

const (
	routePreprocess = "/preprocess"
	routeClassify   = "/classify"
)

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxTextBytes   int
	workers        int
	requestTimeout time.Duration
	logger         *slog.Logger
	cacheSize      int
	registerer     prometheus.Registerer
	lexicon        *lexicon.Lexicon
}

func defaultOptions() options {
	return options{
		maxTextBytes:   1 << 20,
		workers:        4,
		requestTimeout: 30 * time.Second,
		logger:         slog.Default(),
		cacheSize:      128,
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes sets the maximum allowed text length in bytes.
func WithMaxTextBytes(n int) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithWorkers sets the maximum number of requests preprocessed at once.
// Zero or less disables throttling.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithRequestTimeout bounds how long a request may wait for a worker slot.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCacheSize sets the number of results kept in the LRU cache.
// Zero disables caching.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithRegisterer sets where metrics are registered. When reg is also a
// prometheus.Gatherer, /metrics serves from it; otherwise /metrics serves
// the default gatherer. Without this option each handler gets a private
// registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithLexicon enables POST /classify.
func WithLexicon(lx *lexicon.Lexicon) Option {
	return func(o *options) { o.lexicon = lx }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

type handler struct {
	opts    options
	sem     chan struct{} // semaphore for worker pool
	cache   *lru.Cache[[sha256.Size]byte, text.Result]
	metrics *metrics
	log     *slog.Logger
}

// NewHandler returns an http.Handler that serves /health, /metrics,
// POST /preprocess and POST /classify.
func NewHandler(optFns ...Option) http.Handler {
	return newHandler(optFns...).routes()
}

func newHandler(optFns ...Option) *handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.registerer == nil {
		opts.registerer = prometheus.NewRegistry()
	}

	h := &handler{
		opts:    opts,
		metrics: newMetrics(opts.registerer),
		log:     opts.logger,
	}
	if opts.workers > 0 {
		h.sem = make(chan struct{}, opts.workers)
	}
	if opts.cacheSize > 0 {
		// lru.New only fails for non-positive sizes.
		h.cache, _ = lru.New[[sha256.Size]byte, text.Result](opts.cacheSize)
	}
	return h
}

func (h *handler) routes() http.Handler {
	metricsHandler := promhttp.Handler()
	if g, ok := h.opts.registerer.(prometheus.Gatherer); ok {
		metricsHandler = promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.Handle("/metrics", metricsHandler)
	mux.HandleFunc(routePreprocess, h.handlePreprocess)
	mux.HandleFunc(routeClassify, h.handleClassify)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

type textRequest interface {
	sourceText() string
}

type preprocessRequest struct {
	Text          string `json:"text"`
	MaxChunkChars int    `json:"max_chunk_chars"`
}

func (r *preprocessRequest) sourceText() string { return r.Text }

type preprocessResponse struct {
	Tokens      []string `json:"tokens"`
	UniqueWords []string `json:"unique_words"`
	Sentences   []string `json:"sentences"`
	Chunks      []string `json:"chunks,omitempty"`
}

func (h *handler) handlePreprocess(w http.ResponseWriter, r *http.Request) {
	var req preprocessRequest
	if !h.decode(w, r, routePreprocess, &req) {
		return
	}
	if req.MaxChunkChars < 0 {
		h.fail(w, routePreprocess, http.StatusBadRequest, "max_chunk_chars must not be negative")
		return
	}

	release, ok := h.acquire(w, r, routePreprocess)
	if !ok {
		return
	}
	defer release()

	start := time.Now()
	res, hit := h.preprocess(req.Text)

	resp := preprocessResponse{
		Tokens:      text.Surfaces(res.Tokens),
		UniqueWords: res.UniqueWords,
		Sentences:   res.Sentences,
	}
	if req.MaxChunkChars > 0 {
		resp.Chunks = text.ChunkSentences(res.Sentences, req.MaxChunkChars)
	}

	h.logDone(r, routePreprocess, req.Text, res, hit, start)
	h.respond(w, routePreprocess, http.StatusOK, resp)
}

type classifyRequest struct {
	Text string `json:"text"`
}

func (r *classifyRequest) sourceText() string { return r.Text }

type classifiedToken struct {
	Token string `json:"token"`
	POS   string `json:"pos,omitempty"`
	Base  string `json:"base,omitempty"`
}

func (h *handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	if h.opts.lexicon == nil {
		if r.Method != http.MethodPost {
			h.fail(w, routeClassify, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.fail(w, routeClassify, http.StatusServiceUnavailable, "no lexicon configured")
		return
	}

	var req classifyRequest
	if !h.decode(w, r, routeClassify, &req) {
		return
	}

	release, ok := h.acquire(w, r, routeClassify)
	if !ok {
		return
	}
	defer release()

	start := time.Now()
	res, hit := h.preprocess(req.Text)

	classified := lexicon.Classify(h.opts.lexicon, res.Tokens)
	out := make([]classifiedToken, len(classified))
	for i, c := range classified {
		out[i].Token = c.Token.Text
		if c.Known() {
			out[i].POS = c.Category.PartOfSpeech().String()
			out[i].Base = c.Category.Base()
		}
	}

	h.logDone(r, routeClassify, req.Text, res, hit, start)
	h.respond(w, routeClassify, http.StatusOK, out)
}

// decode validates method and body and reports whether the handler should
// continue. It writes the error response itself.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, route string, dst textRequest) bool {
	if r.Method != http.MethodPost {
		h.fail(w, route, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}

	if r.Body == nil {
		h.fail(w, route, http.StatusBadRequest, "request body is required")
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.fail(w, route, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}

	if len(dst.sourceText()) > h.opts.maxTextBytes {
		h.fail(w, route, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
		return false
	}
	return true
}

// acquire takes a worker slot, giving up after the request timeout or when
// the client goes away.
func (h *handler) acquire(w http.ResponseWriter, r *http.Request, route string) (func(), bool) {
	if h.sem == nil {
		return func() {}, true
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.requestTimeout)
	defer cancel()

	select {
	case h.sem <- struct{}{}:
		return func() { <-h.sem }, true
	case <-ctx.Done():
		h.log.WarnContext(r.Context(), "no worker slot",
			slog.String("route", route),
			slog.String("error", ctx.Err().Error()),
		)
		h.fail(w, route, http.StatusServiceUnavailable, "request cancelled while waiting for worker")
		return nil, false
	}
}

// preprocess returns the result for src, from the cache when possible.
// Cached results are shared between requests and must not be mutated.
func (h *handler) preprocess(src string) (text.Result, bool) {
	key := sha256.Sum256([]byte(src))
	if h.cache != nil {
		if res, ok := h.cache.Get(key); ok {
			h.metrics.cacheHits.Inc()
			return res, true
		}
	}

	start := time.Now()
	res := text.Build(src)
	h.metrics.duration.Observe(time.Since(start).Seconds())
	h.metrics.tokens.Observe(float64(len(res.Tokens)))

	if h.cache != nil {
		h.cache.Add(key, res)
	}
	return res, false
}

func (h *handler) logDone(r *http.Request, route, src string, res text.Result, hit bool, start time.Time) {
	h.log.InfoContext(r.Context(), "request complete",
		slog.String("route", route),
		slog.Int("text_len", len(src)),
		slog.Int("tokens", len(res.Tokens)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		slog.Bool("cache_hit", hit),
	)
}

func (h *handler) respond(w http.ResponseWriter, route string, status int, v any) {
	h.metrics.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	writeJSON(w, status, v)
}

func (h *handler) fail(w http.ResponseWriter, route string, status int, msg string) {
	h.metrics.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	writeError(w, status, msg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server wires handler into net/http.Server with graceful shutdown
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server with graceful shutdown.
type Server struct {
	cfg             config.Config
	lexicon         *lexicon.Lexicon
	registerer      prometheus.Registerer
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New returns a Server for cfg. A lexicon is loaded from cfg.Lexicon.Path
// at Start unless one is supplied with WithLexicon.
func New(cfg config.Config) *Server {
	return &Server{
		cfg:             cfg,
		registerer:      prometheus.DefaultRegisterer,
		logger:          slog.Default(),
		shutdownTimeout: time.Duration(cfg.Server.ShutdownTimeout) * time.Second,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

// WithLexicon sets the lexicon served by /classify.
func (s *Server) WithLexicon(lx *lexicon.Lexicon) *Server {
	s.lexicon = lx
	return s
}

// WithRegisterer overrides the default Prometheus registerer.
func (s *Server) WithRegisterer(reg prometheus.Registerer) *Server {
	s.registerer = reg
	return s
}

// WithLogger sets the request logger.
func (s *Server) WithLogger(l *slog.Logger) *Server {
	s.logger = l
	return s
}

func (s *Server) Start(ctx context.Context) error {
	lx := s.lexicon
	if lx == nil && s.cfg.Lexicon.Path != "" {
		var err error
		lx, err = lexicon.LoadFile(s.cfg.Lexicon.Path)
		if err != nil {
			return err
		}
		s.logger.Info("lexicon loaded",
			slog.String("path", s.cfg.Lexicon.Path),
			slog.Int("entries", lx.Len()),
		)
	}

	h := NewHandler(
		WithWorkers(s.cfg.Server.Workers),
		WithMaxTextBytes(s.cfg.Server.MaxTextBytes),
		WithRequestTimeout(time.Duration(s.cfg.Server.RequestTimeout)*time.Second),
		WithCacheSize(s.cfg.Server.CacheSize),
		WithRegisterer(s.registerer),
		WithLogger(s.logger),
		WithLexicon(lx),
	)

	httpServer := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	s.logger.Info("listening", slog.String("addr", s.cfg.Server.ListenAddr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}

func ProbeHTTP(addr string) error {
	resp, err := http.Get("http://" + addr + "/health") //nolint:noctx
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status: %s", resp.Status)
	}
	return nil
}
