// Package v1 implements the version 1 API routes.
package v1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mathforge/primes"
	"github.com/mathforge/primes/api/middleware"
)

// maxSpan caps the width of a single request's range so one call cannot
// hold a response of hundreds of millions of primes in memory.
const maxSpan = 1 << 28

// PrimesRouter handles prime query endpoints.
type PrimesRouter struct {
	logger *slog.Logger
	opts   []primes.Option
}

// NewPrimesRouter creates a PrimesRouter with the given engine options.
func NewPrimesRouter(logger *slog.Logger, opts ...primes.Option) *PrimesRouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &PrimesRouter{logger: logger, opts: opts}
}

// Routes returns the chi router for prime endpoints.
func (p *PrimesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", p.List)
	router.Get("/count", p.Count)

	return router
}

// listResponse is the body of GET /api/v1/primes.
type listResponse struct {
	Lower  uint64   `json:"lower"`
	Upper  uint64   `json:"upper"`
	Count  int      `json:"count"`
	Primes []uint64 `json:"primes"`
}

// countResponse is the body of GET /api/v1/primes/count.
type countResponse struct {
	Lower uint64 `json:"lower"`
	Upper uint64 `json:"upper"`
	Count int    `json:"count"`
}

// List handles GET /api/v1/primes. Query parameters: upper (required),
// lower (optional, default 2), parallel (optional bool).
func (p *PrimesRouter) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		middleware.WriteError(w, r, err, p.logger)
		return
	}

	seq, err := primes.PrimeRange(r.Context(), q.lower, q.upper, q.policy, p.opts...)
	if err != nil {
		middleware.WriteError(w, r, err, p.logger)
		return
	}

	if seq == nil {
		seq = []uint64{}
	}
	middleware.WriteJSON(w, http.StatusOK, listResponse{
		Lower:  q.lower,
		Upper:  q.upper,
		Count:  len(seq),
		Primes: seq,
	})
}

// Count handles GET /api/v1/primes/count with the same query parameters
// as List.
func (p *PrimesRouter) Count(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		middleware.WriteError(w, r, err, p.logger)
		return
	}

	seq, err := primes.PrimeRange(r.Context(), q.lower, q.upper, q.policy, p.opts...)
	if err != nil {
		middleware.WriteError(w, r, err, p.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, countResponse{
		Lower: q.lower,
		Upper: q.upper,
		Count: len(seq),
	})
}

type primeQuery struct {
	lower  uint64
	upper  uint64
	policy primes.Policy
}

func parseQuery(r *http.Request) (primeQuery, error) {
	values := r.URL.Query()

	rawUpper := values.Get("upper")
	if rawUpper == "" {
		return primeQuery{}, middleware.NewAPIError(http.StatusBadRequest, "missing required query parameter: upper", nil)
	}
	upper, err := strconv.ParseUint(rawUpper, 10, 64)
	if err != nil {
		return primeQuery{}, middleware.NewAPIError(http.StatusBadRequest, "invalid upper bound", err)
	}

	var lower uint64 = 2
	if rawLower := values.Get("lower"); rawLower != "" {
		lower, err = strconv.ParseUint(rawLower, 10, 64)
		if err != nil {
			return primeQuery{}, middleware.NewAPIError(http.StatusBadRequest, "invalid lower bound", err)
		}
	}

	if upper >= lower && upper-lower > maxSpan {
		return primeQuery{}, middleware.NewAPIError(http.StatusBadRequest, "range too wide", nil)
	}

	policy := primes.Sequential
	if rawParallel := values.Get("parallel"); rawParallel != "" {
		parallel, err := strconv.ParseBool(rawParallel)
		if err != nil {
			return primeQuery{}, middleware.NewAPIError(http.StatusBadRequest, "invalid parallel flag", err)
		}
		if parallel {
			policy = primes.Parallel
		}
	}

	return primeQuery{lower: lower, upper: upper, policy: policy}, nil
}
