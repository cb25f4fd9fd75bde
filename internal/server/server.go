// Package server exposes the headless renderers over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/gridfit/internal/config"
	"github.com/san-kum/gridfit/internal/curve"
	"github.com/san-kum/gridfit/internal/export"
	"github.com/san-kum/gridfit/internal/metrics"
	"github.com/san-kum/gridfit/internal/waves"
)

const (
	defaultTicks  = 60
	defaultWidth  = 800
	defaultHeight = 400
)

// Server serves health, metrics and preview renders.
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewServer creates a server with /healthz, /metrics, /waves.png and
// /board.svg routes. gatherer backs /metrics.
func NewServer(cfg *config.Config, gatherer prometheus.Gatherer, m *metrics.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		cfg:     cfg,
		metrics: m,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /waves.png", s.handleWaves)
	mux.HandleFunc("GET /board.svg", s.handleBoard)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleWaves(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()
	lim := s.cfg.Server

	ticks, err := intParam(q.Get("ticks"), defaultTicks, 1, lim.MaxTicks)
	if err != nil {
		s.badRequest(w, "waves", "ticks", err)
		return
	}
	width, err := intParam(q.Get("w"), min(defaultWidth, lim.MaxWidth), 1, lim.MaxWidth)
	if err != nil {
		s.badRequest(w, "waves", "w", err)
		return
	}
	height, err := intParam(q.Get("h"), min(defaultHeight, lim.MaxHeight), 1, lim.MaxHeight)
	if err != nil {
		s.badRequest(w, "waves", "h", err)
		return
	}

	var buf bytes.Buffer
	err = waves.RenderPNG(&buf, width, height, ticks,
		waves.WithBands(s.cfg.Waves.BandSet()),
		waves.WithStep(s.cfg.Waves.Step),
		waves.WithGrid(s.cfg.Waves.GridSpacing, waves.DefaultGridColor),
		waves.WithBackground(waves.DefaultBackground),
		waves.WithLogger(s.logger),
	)
	if err != nil {
		s.logger.Error("render waves", "error", err)
		s.observe("waves", "error", start)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "render failed"})
		return
	}
	s.observe("waves", "ok", start)
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes()) //nolint:errcheck // client may have gone away
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	areal, err := curve.ParseKind(q.Get("areal"))
	if err != nil {
		s.badRequest(w, "board", "areal", err)
		return
	}
	var grid []curve.Kind
	if v := q.Get("grid"); v != "" {
		grid, err = curve.ParseKinds(v)
		if err != nil {
			s.badRequest(w, "board", "grid", err)
			return
		}
	}
	snap, err := export.Board(areal, grid)
	if err != nil {
		s.badRequest(w, "board", "grid", err)
		return
	}

	s.observe("board", "ok", start)
	w.Header().Set("Content-Type", "image/svg+xml")
	fmt.Fprint(w, export.BoardSVG(snap, export.DefaultTileOptions()))
}

func (s *Server) badRequest(w http.ResponseWriter, kind, param string, err error) {
	s.logger.Debug("bad render request", "kind", kind, "param", param, "error", err)
	if s.metrics != nil {
		s.metrics.Renders.WithLabelValues(kind, "bad_request").Inc()
	}
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": err.Error(),
		"param": param,
	})
}

func (s *Server) observe(kind, outcome string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.Renders.WithLabelValues(kind, outcome).Inc()
	s.metrics.RenderDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// intParam parses raw, returning def when raw is empty.
func intParam(raw string, def, lo, hi int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%d out of range %d..%d", v, lo, hi)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
