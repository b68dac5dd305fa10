package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/collatz"
	"github.com/aretw0/collatz/pkg/domain"
	"github.com/aretw0/collatz/pkg/ports"
	"github.com/aretw0/collatz/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// EvaluateResponse is the structured output of the evaluate_trajectory tool.
type EvaluateResponse struct {
	Input       uint64         `json:"input" jsonschema_description:"The evaluated integer"`
	Outcome     domain.Outcome `json:"outcome" jsonschema_description:"success, indivisible, depth_exceeded or failed"`
	Terminal    uint64         `json:"terminal,omitempty" jsonschema_description:"Final number reached (always 1 on success)"`
	Transitions int            `json:"transitions,omitempty" jsonschema_description:"Number of Collatz steps taken"`
	Peak        uint64         `json:"peak,omitempty" jsonschema_description:"Highest value reached"`
	Log         []string       `json:"log,omitempty" jsonschema_description:"Human-readable trajectory entries"`
	Error       string         `json:"error,omitempty" jsonschema_description:"Diagnostic when the evaluation did not succeed"`
	Cached      bool           `json:"cached,omitempty" jsonschema_description:"Served from the result store"`
}

// Server wraps an Evaluator and exposes it as an MCP Server.
type Server struct {
	evaluator ports.Evaluator
	runner    *runner.Runner
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*serverConfig)

type serverConfig struct {
	store  ports.ResultStore
	logger *slog.Logger
}

// WithStore enables the result cache for tool calls.
func WithStore(store ports.ResultStore) Option {
	return func(c *serverConfig) {
		c.store = store
	}
}

// WithLogger sets the logger used while serving.
func WithLogger(logger *slog.Logger) Option {
	return func(c *serverConfig) {
		c.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(eval ports.Evaluator, opts ...Option) *Server {
	cfg := &serverConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Server{
		evaluator: eval,
		runner: runner.NewRunner(
			runner.WithReporter(runner.Discard),
			runner.WithStore(cfg.store),
			runner.WithLogger(cfg.logger),
		),
		mcpServer: server.NewMCPServer("collatz-mcp", strings.TrimSpace(collatz.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on addr using SSE until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	baseURL := "http://" + addr
	if strings.HasPrefix(addr, ":") {
		baseURL = "http://localhost" + addr
	}

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: evaluate_trajectory
	evaluateTool := mcp.NewTool("evaluate_trajectory",
		mcp.WithDescription("Follow the Collatz trajectory of a positive integer down to 1."),
		mcp.WithString("n", mcp.Required(), mcp.Description("Non-negative integer, as decimal text")),
		mcp.WithBoolean("include_steps", mcp.Description("Include every trajectory entry in the response")),
		mcp.WithOutputSchema[EvaluateResponse](),
	)
	s.mcpServer.AddTool(evaluateTool, mcp.NewStructuredToolHandler(s.handleEvaluate))
}

func (s *Server) registerResources() {
	// EXPOSE: collatz://config
	s.mcpServer.AddResource(mcp.NewResource("collatz://config", "Evaluator Configuration",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(map[string]any{
			"max_steps": s.evaluator.MaxSteps(),
			"version":   strings.TrimSpace(collatz.Version),
		})
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "collatz://config",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EvaluateResponse, error) {
	raw, err := stringArg(args, "n")
	if err != nil {
		return EvaluateResponse{}, err
	}
	n, err := domain.ParseInput(raw)
	if err != nil {
		return EvaluateResponse{}, err
	}
	includeSteps, _ := args["include_steps"].(bool)

	result := s.runner.Process(ctx, s.evaluator, n)
	resp := EvaluateResponse{
		Input:   n,
		Outcome: result.Outcome(),
		Cached:  result.Cached,
	}
	if result.Err != nil {
		resp.Error = result.Err.Error()
	}
	if traj := result.Trajectory; traj != nil {
		resp.Terminal = traj.Terminal
		resp.Transitions = traj.Transitions()
		resp.Peak = traj.Peak
		if includeSteps {
			resp.Log = traj.Log()
		}
	}
	return resp, nil
}

// stringArg accepts both text and JSON numbers, since some clients send n unquoted.
func stringArg(args map[string]interface{}, key string) (string, error) {
	switch v := args[key].(type) {
	case string:
		return v, nil
	case float64:
		if v < 0 || v != float64(uint64(v)) {
			return "", &domain.InvalidInputError{Value: fmt.Sprint(v), Reason: "not an integer"}
		}
		return fmt.Sprintf("%d", uint64(v)), nil
	case nil:
		return "", errors.New("missing required argument: " + key)
	default:
		return "", fmt.Errorf("argument %s must be a string, got %T", key, v)
	}
}
