package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/collatz/pkg/domain"
	"github.com/aretw0/collatz/pkg/ports"
	"github.com/aretw0/collatz/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

const (
	// MaxBatchInputs caps the size of a POST /batch request.
	MaxBatchInputs = 10000

	maxBodyBytes = 1 << 20
)

// Server implements the generated ServerInterface.
type Server struct {
	Evaluator ports.Evaluator
	Store     ports.ResultStore
	Gatherer  prometheus.Gatherer
	Logger    *slog.Logger

	onResult func(context.Context, domain.Result)
}

var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithStore enables the result cache for every request.
func WithStore(store ports.ResultStore) Option {
	return func(s *Server) {
		s.Store = store
	}
}

// WithGatherer exposes the given registry on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithResultHook observes every result served.
func WithResultHook(fn func(context.Context, domain.Result)) Option {
	return func(s *Server) {
		s.onResult = fn
	}
}

// NewHandler creates a new HTTP handler for the evaluator.
func NewHandler(eval ports.Evaluator, opts ...Option) http.Handler {
	s := &Server{
		Evaluator: eval,
		Gatherer:  prometheus.DefaultGatherer,
		Logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.Logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	handler := HandlerFromMux(s, r)
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Collatz API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

func (s *Server) newRunner(reporter runner.Reporter) *runner.Runner {
	opts := []runner.Option{
		runner.WithReporter(reporter),
		runner.WithLogger(s.Logger),
		runner.WithStore(s.Store),
	}
	if s.onResult != nil {
		opts = append(opts, runner.WithResultHook(s.onResult))
	}
	return runner.NewRunner(opts...)
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		MaxSteps: s.Evaluator.MaxSteps(),
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}).ServeHTTP(w, r)
}

// GetTrajectory handles GET /trajectory/{n}.
func (s *Server) GetTrajectory(w http.ResponseWriter, r *http.Request, raw string, params GetTrajectoryParams) {
	n, err := domain.ParseInput(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		s.Logger.Warn("GetTrajectory: input rejected", "error", err)
		return
	}
	steps := params.Steps != nil && *params.Steps

	result := s.newRunner(runner.Discard).Process(r.Context(), s.Evaluator, n)
	if s.onResult != nil {
		s.onResult(r.Context(), result)
	}

	status := http.StatusOK
	switch result.Outcome() {
	case domain.OutcomeIndivisible, domain.OutcomeDepthExceeded:
		status = http.StatusUnprocessableEntity
	case domain.OutcomeFailed:
		status = http.StatusUnprocessableEntity
		if errors.Is(result.Err, context.Canceled) || errors.Is(result.Err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
	}
	writeJSON(w, status, newTrajectoryResult(result, steps))
}

// Batch handles POST /batch.
func (s *Server) Batch(w http.ResponseWriter, r *http.Request) {
	var body BatchJSONRequestBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Batch: Invalid request body", "error", err)
		return
	}
	if len(body.Inputs) > MaxBatchInputs {
		http.Error(w, fmt.Sprintf("Too many inputs: %d (max %d)", len(body.Inputs), MaxBatchInputs), http.StatusRequestEntityTooLarge)
		return
	}
	steps := body.Steps != nil && *body.Steps

	resp := BatchResponse{Results: make([]TrajectoryResult, 0, len(body.Inputs))}
	collect := runner.ReporterFunc(func(_ context.Context, res domain.Result) error {
		resp.Results = append(resp.Results, newTrajectoryResult(res, steps))
		return nil
	})

	summary, err := s.newRunner(collect).Run(r.Context(), s.Evaluator, body.Inputs)
	if err != nil {
		http.Error(w, fmt.Sprintf("Batch error: %v", err), http.StatusServiceUnavailable)
		s.Logger.Error("Batch failed", "error", err)
		return
	}
	resp.Summary = newRunSummary(summary)
	writeJSON(w, http.StatusOK, resp)
}

func newTrajectoryResult(result domain.Result, withSteps bool) TrajectoryResult {
	rec := runner.NewJSONRecord(result, withSteps)
	out := TrajectoryResult{
		Input:       rec.Input,
		Outcome:     Outcome(rec.Outcome),
		Terminal:    rec.Terminal,
		Transitions: rec.Transitions,
		Peak:        rec.Peak,
	}
	if len(rec.Log) > 0 {
		out.Log = &rec.Log
	}
	if rec.Error != "" {
		out.Error = &rec.Error
	}
	if rec.Cached {
		out.Cached = &rec.Cached
	}
	return out
}

func newRunSummary(sum *runner.Summary) RunSummary {
	out := RunSummary{
		RunId:         sum.RunID,
		Evaluated:     sum.Evaluated,
		Succeeded:     sum.Succeeded,
		Indivisible:   sum.Indivisible,
		DepthExceeded: sum.DepthExceeded,
		Failed:        sum.Failed,
		CacheHits:     sum.CacheHits,
		DurationNs:    sum.Duration.Nanoseconds(),
	}
	if sum.Succeeded > 0 {
		out.LongestInput = &sum.LongestInput
		out.LongestTransitions = &sum.LongestTransitions
		out.PeakInput = &sum.PeakInput
		out.PeakValue = &sum.PeakValue
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
