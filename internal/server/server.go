// Package server exposes matrix inversion over HTTP/JSON.
//
// Routes:
//
//	POST /api/v1/invert  invert the posted matrix
//	GET  /healthz        liveness probe
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/matinv/gaussjordan"
	"github.com/katalvlaran/matinv/internal/diag"
	"github.com/katalvlaran/matinv/matrix"
)

// DefaultMaxOrder bounds the order of a posted matrix.
const DefaultMaxOrder = 512

// bytesPerEntry over-estimates one JSON-encoded float64 plus separator.
const bytesPerEntry = 32

// Server holds the HTTP handlers and their limits.
type Server struct {
	maxOrder int
	alloc    matrix.Allocator
	logger   *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithMaxOrder caps the accepted order; larger requests get 413.
// Panics when n <= 0.
func WithMaxOrder(n int) Option {
	if n <= 0 {
		panic("server: WithMaxOrder: n must be > 0")
	}

	return func(s *Server) { s.maxOrder = n }
}

// WithAllocator routes every inversion's scratch memory through a.
// A shared matrix.BudgetAllocator caps the memory of concurrent requests;
// a request that does not fit gets 503.
func WithAllocator(a matrix.Allocator) Option {
	return func(s *Server) { s.alloc = a }
}

// WithLogger sets the request logger (default: stderr with standard flags).
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New builds a Server.
func New(opts ...Option) *Server {
	s := &Server{
		maxOrder: DefaultMaxOrder,
		alloc:    matrix.HeapAllocator,
		logger:   log.New(os.Stderr, "", log.LstdFlags),
	}
	for _, o := range opts {
		o(s)
	}

	return s
}

// Router returns the routed handler with request logging applied.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.logRequests)

	router.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/invert", s.handleInvert).Methods("POST")

	return router
}

// InvertRequest is the POST /api/v1/invert body.
type InvertRequest struct {
	Matrix    [][]float64 `json:"matrix"`
	Tolerance *float64    `json:"tolerance,omitempty"`
	Strict    bool        `json:"strict,omitempty"`
}

// InvertResponse is the POST /api/v1/invert reply.
type InvertResponse struct {
	Inverse      [][]float64 `json:"inverse"`
	Order        int         `json:"order"`
	Swaps        int         `json:"swaps"`
	Degenerate   bool        `json:"degenerate"`
	DampedPivots []int       `json:"dampedPivots"`
	Residual     *float64    `json:"residual,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleInvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.maxOrder)*int64(s.maxOrder)*bytesPerEntry+4096)

	var req InvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Matrix) > s.maxOrder {
		http.Error(w, fmt.Sprintf("order %d exceeds limit %d", len(req.Matrix), s.maxOrder), http.StatusRequestEntityTooLarge)
		return
	}

	// JSON has no encoding for ±Inf/NaN.
	opts := []gaussjordan.Option{gaussjordan.WithAllocator(s.alloc), gaussjordan.WithFiniteResult()}
	if req.Tolerance != nil {
		tol := *req.Tolerance
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
			http.Error(w, "tolerance must be finite and > 0", http.StatusBadRequest)
			return
		}
		opts = append(opts, gaussjordan.WithPivotTolerance(tol))
	}
	if req.Strict {
		opts = append(opts, gaussjordan.WithStrictSingular())
	}

	a, err := matrix.FromRows(req.Matrix)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	inv, res, err := gaussjordan.Inverse(a, opts...)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	resp := InvertResponse{
		Inverse:      inv.ToRows(),
		Order:        res.Order,
		Swaps:        len(res.Swaps),
		Degenerate:   res.Degenerate(),
		DampedPivots: res.Damped,
	}
	if resp.DampedPivots == nil {
		resp.DampedPivots = []int{}
	}
	if resid, err := diag.Residual(a, inv); err == nil && !math.IsNaN(resid) && !math.IsInf(resid, 0) {
		resp.Residual = &resid
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// statusFor maps inversion errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, gaussjordan.ErrSingular),
		errors.Is(err, gaussjordan.ErrNonFiniteResult):
		return http.StatusUnprocessableEntity
	case errors.Is(err, matrix.ErrOutOfMemory):
		return http.StatusServiceUnavailable
	case errors.Is(err, matrix.ErrInvalidDimensions),
		errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, matrix.ErrNaNInf):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
