// Package server exposes the analysis pipeline over HTTP.
//
// The model is strict request/response: one text blob in, one immutable
// JSON report out. Requests are independent and share no state, so the
// handler is safe to run concurrently.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"intervista/pkg/config"
	"intervista/pkg/enrich"
	"intervista/pkg/output"
	"intervista/pkg/parser"
	"intervista/pkg/pipeline"
)

// maxBodySize caps the request body at 4MB.
const maxBodySize = 4 << 20

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// Server serves analysis requests.
type Server struct {
	cfg  *config.Config
	log  *zap.Logger
	pipe *pipeline.Pipeline
}

// New creates a Server from configuration.
func New(cfg *config.Config, log *zap.Logger) *Server {
	return &Server{
		cfg: cfg,
		log: log,
		pipe: pipeline.New(
			pipeline.WithFormat(cfg.ParserFormat()),
			pipeline.WithEnrichOptions(
				enrich.WithDateLayout(cfg.DateLayout),
				enrich.WithSlotThresholds(cfg.SlotThresholds()),
			),
		),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/analyze", s.handleAnalyze)

	return r
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleAnalyze runs one pipeline pass over the request body.
// The optional as_of query parameter (YYYY-MM-DD) fixes the reference date;
// it defaults to the current wall-clock date.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "reading request body failed")
		return
	}

	asOf := time.Now()
	if v := r.URL.Query().Get("as_of"); v != "" {
		asOf, err = time.Parse(s.cfg.DateLayout, v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid as_of date")
			return
		}
	}

	result, err := s.pipe.Run(string(body), asOf)
	if err != nil {
		status := http.StatusInternalServerError
		if isInputError(err) {
			status = http.StatusUnprocessableEntity
		}
		s.log.Warn("analysis rejected",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
		s.writeError(w, status, err.Error())
		return
	}

	report := output.NewReport(result, "request")

	s.log.Info("analysis complete",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("run_id", result.Metadata.RunID),
		zap.Int("records", report.Summary.TotalRecords))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	formatter := output.NewJSONFormatter(output.FormatOptions{})
	if err := formatter.Format(r.Context(), report, w); err != nil {
		s.log.Error("writing response failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// isInputError reports whether err stems from the caller's input rather
// than the server.
func isInputError(err error) bool {
	var missing *parser.MissingFieldError
	var badDate *enrich.InvalidDateError
	var badTime *enrich.InvalidTimeError

	return errors.Is(err, parser.ErrNoRecords) ||
		errors.As(err, &missing) ||
		errors.As(err, &badDate) ||
		errors.As(err, &badTime)
}
