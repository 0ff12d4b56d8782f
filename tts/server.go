package tts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/murmurhq/voicedsp/dsp/speed"
	"github.com/murmurhq/voicedsp/voice"
)

const shutdownGrace = 5 * time.Second

// ServerOptions configures the HTTP API server.
type ServerOptions struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server exposes the synthesis service over HTTP.
type Server struct {
	http    *http.Server
	svc     *Service
	logger  *slog.Logger
	metrics *Metrics
}

// NewServer creates the HTTP API server around svc.
func NewServer(opts ServerOptions, svc *Service, logger *slog.Logger, metrics *Metrics) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		svc:     svc,
		logger:  logger,
		metrics: metrics,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/generate", s.withMetrics("/generate", s.handleGenerate))
	mux.HandleFunc("/voices", s.withMetrics("/voices", s.handleVoices))
	mux.HandleFunc("/health", s.withMetrics("/health", s.handleHealth))
	mux.Handle("/metrics", promhttp.Handler())

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler:      mux,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("tts: shutdown failed: %w", err)
	}
	return <-errCh
}

// statusRecorder captures the response code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withMetrics(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next(rec, r)
		if s.metrics != nil {
			s.metrics.HTTPRequests.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
			s.metrics.HTTPDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		}
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.svc.Generate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyText), errors.Is(err, speed.ErrInvalidFactor):
			s.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotReady):
			s.writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			s.logger.Error("generation failed", slog.String("error", err.Error()))
			s.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// voiceEntry is a catalog row in the /voices response.
type voiceEntry struct {
	voice.Voice
	HasSample bool `json:"has_sample"`
}

func (s *Server) handleVoices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	lib := s.svc.Library()
	voices := make([]voiceEntry, 0, lib.Len())
	for _, v := range lib.List() {
		voices = append(voices, voiceEntry{
			Voice:     v,
			HasSample: lib.HasSample(v.ID),
		})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"voices":           voices,
		"supports_cloning": true,
	})
}

type healthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	SampleRate  int    `json:"sample_rate"`
	VoicesCount int    `json:"voices_count"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ready := s.svc.Ready()
	status := "ok"
	if !ready {
		status = "model_not_loaded"
	}

	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:      status,
		ModelLoaded: ready,
		SampleRate:  s.svc.SampleRate(),
		VoicesCount: s.svc.Library().Len(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, map[string]string{"detail": detail})
}
