package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mathforge/primes"
)

// APIError carries an HTTP status code alongside a client-safe message.
type APIError struct {
	code    int
	message string
	cause   error
}

// NewAPIError creates an APIError with an optional cause.
func NewAPIError(code int, message string, cause error) *APIError {
	return &APIError{code: code, message: message, cause: cause}
}

// Code returns the HTTP status code.
func (e *APIError) Code() int { return e.code }

// Message returns the client-safe message.
func (e *APIError) Message() string { return e.message }

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("api error %d: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("api error %d: %s", e.code, e.message)
}

// Unwrap returns the cause.
func (e *APIError) Unwrap() error { return e.cause }

// errorResponse is the JSON body written for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError maps an error onto an HTTP status and writes a JSON error
// body. Invalid ranges are client errors, overflow is an unprocessable
// request, and anything unrecognized is an internal error whose detail is
// logged but not leaked.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		WriteJSON(w, apiErr.Code(), errorResponse{Error: apiErr.Message()})
	case errors.Is(err, primes.ErrInvalidRange):
		WriteJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, primes.ErrOverflow):
		WriteJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
