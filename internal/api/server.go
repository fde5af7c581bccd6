package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bioatlas/internal/config"
	"bioatlas/internal/engine"
	"bioatlas/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	tclient "go.temporal.io/sdk/client"
	"go.temporal.io/sdk/converter"
)

// WorkflowClient is the part of the Temporal client the report routes use.
type WorkflowClient interface {
	ExecuteWorkflow(ctx context.Context, options tclient.StartWorkflowOptions, workflow interface{}, args ...interface{}) (tclient.WorkflowRun, error)
	QueryWorkflow(ctx context.Context, workflowID string, runID string, queryType string, args ...interface{}) (converter.EncodedValue, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the optional collaborators of the server. A nil Temporal client
// disables the report routes; a nil Pinger makes /healthz unconditional.
type Deps struct {
	Temporal WorkflowClient
	Health   Pinger
	Logger   *slog.Logger
}

type Server struct {
	cfg      config.Config
	engine   *engine.Engine
	temporal WorkflowClient
	health   Pinger
	logger   *slog.Logger
}

var validate = validator.New()

const requestIDHeader = "X-Request-ID"

func NewServer(cfg config.Config, eng *engine.Engine, deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:      cfg,
		engine:   eng,
		temporal: deps.Temporal,
		health:   deps.Health,
		logger:   logger,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/search", s.handleSearch)
	mux.HandleFunc("/search/keywords", s.handleKeywordSearch)
	mux.HandleFunc("/filter", s.handleFilter)
	mux.HandleFunc("/articles/", s.handleArticlesScoped)
	mux.HandleFunc("/graph/", s.handleGraphScoped)
	mux.HandleFunc("/analytics/", s.handleAnalyticsScoped)
	mux.HandleFunc("/ask", s.handleAsk)
	mux.HandleFunc("/reports", s.handleReports)
	mux.HandleFunc("/reports/", s.handleReportsScoped)
	return s.withRequestContext(withCORS(mux))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.Ping(r.Context()); err != nil {
			s.logger.Warn("health check failed", "error", err)
			writeErr(w, http.StatusServiceUnavailable, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// fail logs the underlying error and writes its user-safe form.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= 500 {
		s.logger.Error("request failed", "request_id", requestID(r.Context()), "path", r.URL.Path, "error", err)
	}
	writeErr(w, status, err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, util.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, util.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, util.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return false
	}
	return true
}

// decode reads a JSON body into v and runs struct validation on it.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid json: %w", util.ErrInvalidArgument, err)
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", util.ErrInvalidArgument, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %w", util.ErrInvalidArgument, err)
	}
	return nil
}

// intParam reads an optional integer query parameter.
func intParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", util.ErrInvalidArgument, name)
	}
	return n, nil
}

// listParam splits a comma separated query parameter, dropping blanks.
func listParam(r *http.Request, name string) []string {
	var out []string
	for _, p := range strings.Split(r.URL.Query().Get(name), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func scopedParts(r *http.Request, prefix string) []string {
	return strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/"), "/")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	apiErr := toAPIError(code, err)
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"code":    apiErr.Code,
			"message": apiErr.Message,
		},
	})
}

type apiError struct {
	Code    string
	Message string
}

// toAPIError maps a status to a stable code and a message that never carries
// store text. Only argument validation errors are echoed.
func toAPIError(status int, err error) apiError {
	switch {
	case status == http.StatusBadRequest:
		msg := "Invalid request. Check inputs and retry."
		if err != nil && errors.Is(err, util.ErrInvalidArgument) {
			msg = "Invalid request: " + strings.TrimPrefix(err.Error(), util.ErrInvalidArgument.Error()+": ")
		}
		return apiError{Code: "BA-API-4001", Message: msg}
	case status == http.StatusNotFound:
		return apiError{Code: "BA-API-4004", Message: "Requested resource was not found."}
	case status == http.StatusMethodNotAllowed:
		return apiError{Code: "BA-API-4005", Message: "This endpoint does not support the requested method."}
	case status == http.StatusConflict:
		return apiError{Code: "BA-API-4009", Message: "Operation conflicts with current state. Retry after checking status."}
	case status == http.StatusServiceUnavailable && errors.Is(err, errWorkflowsDisabled):
		return apiError{Code: "BA-WF-5003", Message: "Report workflows are not configured on this server."}
	case status == http.StatusServiceUnavailable:
		return apiError{Code: "BA-DB-5002", Message: "Publication store is unavailable. Check local services and retry."}
	case status == http.StatusGatewayTimeout:
		return apiError{Code: "BA-API-5040", Message: "Request timed out. Narrow the query or retry."}
	case status == http.StatusBadGateway:
		return apiError{Code: "BA-WF-5020", Message: "Workflow service unavailable. Retry shortly."}
	case status >= 500:
		return apiError{Code: "BA-API-5000", Message: "Internal server error. Please retry or check service logs."}
	default:
		return apiError{Code: "BA-API-4000", Message: "Request failed."}
	}
}

type ctxKey struct{}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestContext tags the request with an id, bounds it with the
// configured timeout and writes one access log line.
func (s *Server) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := context.WithValue(r.Context(), ctxKey{}, id)
		if s.cfg.RequestTimeoutSecs > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.RequestTimeoutSecs)*time.Second)
			defer cancel()
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))
		s.logger.Info("http request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
