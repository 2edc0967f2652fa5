package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewPrimesRouter(nil).Routes()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListPrimes(t *testing.T) {
	rec := doRequest(t, "/?upper=30")
	require.Equal(t, http.StatusOK, rec.Code)

	var body listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint64(2), body.Lower)
	assert.Equal(t, uint64(30), body.Upper)
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, body.Primes)
	assert.Equal(t, 10, body.Count)
}

func TestListPrimesWithLowerBound(t *testing.T) {
	rec := doRequest(t, "/?lower=10&upper=30")
	require.Equal(t, http.StatusOK, rec.Code)

	var body listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []uint64{11, 13, 17, 19, 23, 29}, body.Primes)
}

func TestListPrimesParallel(t *testing.T) {
	rec := doRequest(t, "/?upper=100000&parallel=true")
	require.Equal(t, http.StatusOK, rec.Code)

	var body listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 9592, body.Count)
}

func TestListPrimesEmptyRange(t *testing.T) {
	rec := doRequest(t, "/?lower=24&upper=28")
	require.Equal(t, http.StatusOK, rec.Code)

	var body listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Count)
	assert.NotNil(t, body.Primes)
}

func TestCountPrimes(t *testing.T) {
	rec := doRequest(t, "/count?upper=1000000")
	require.Equal(t, http.StatusOK, rec.Code)

	var body countResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 78498, body.Count)
}

func TestListPrimesBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{"missing upper", "/", http.StatusBadRequest},
		{"non-numeric upper", "/?upper=abc", http.StatusBadRequest},
		{"negative upper", "/?upper=-5", http.StatusBadRequest},
		{"non-numeric lower", "/?lower=x&upper=100", http.StatusBadRequest},
		{"bad parallel flag", "/?upper=100&parallel=maybe", http.StatusBadRequest},
		{"inverted range", "/?lower=100&upper=10", http.StatusBadRequest},
		{"range too wide", "/?lower=2&upper=18446744073709551615", http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, tc.target)
			assert.Equal(t, tc.status, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
