package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobradar/internal/extraction"
	"github.com/jonathan/jobradar/internal/server/ratelimit"
	"github.com/jonathan/jobradar/internal/types"
)

// newTestServer builds a server without a database connection; only routes
// that never touch storage are exercised here.
func newTestServer() *Server {
	return &Server{
		engine:      extraction.New(extraction.Options{}),
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
	}
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.withRateLimit(s.withLogging(s.withCORS(s.routes()))).ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(), "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestAdhocExtract(t *testing.T) {
	rec := doJSON(t, newTestServer(), "POST", "/extract", ExtractRequest{
		Title:  "Backend Engineer",
		JDText: "Must have 5+ years of Python and AWS experience. Docker is a plus.",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.ExtractionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, types.MethodRuleBased, result.Method)
	assert.True(t, result.HasTerm("Python"))
	assert.Contains(t, result.MustHave, "Python")
	assert.Contains(t, result.NiceToHave, "Docker")
}

func TestAdhocExtract_HTMLBody(t *testing.T) {
	rec := doJSON(t, newTestServer(), "POST", "/extract", ExtractRequest{
		Title:  "Platform Engineer",
		JDText: "<html><body><main><p>Kubernetes required.</p></main></body></html>",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.ExtractionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.HasTerm("Kubernetes"))
}

func TestAdhocExtract_MissingText(t *testing.T) {
	rec := doJSON(t, newTestServer(), "POST", "/extract", map[string]string{"title": "Engineer"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdhocExtract_MalformedBody(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest("POST", "/extract", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCaptureJob_ValidationErrors(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name string
		body CaptureJobRequest
	}{
		{"missing title", CaptureJobRequest{JDText: "Python required."}},
		{"missing jd_text", CaptureJobRequest{Title: "Engineer"}},
		{"bad url", CaptureJobRequest{Title: "Engineer", JDText: "Python.", URL: "not-a-url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, s, "POST", "/jobs", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestInvalidJobID(t *testing.T) {
	s := newTestServer()

	for _, path := range []string{"/jobs/not-a-uuid", "/jobs/not-a-uuid/extraction"} {
		rec := doJSON(t, s, "GET", path, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest("OPTIONS", "/jobs", nil)
	rec := httptest.NewRecorder()
	s.withCORS(s.routes()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitHeaders(t *testing.T) {
	s := newTestServer()
	s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Minute,
	})
	defer s.rateLimiter.Stop()

	rec := doJSON(t, s, "GET", "/health", nil)
	// Health is exempt from rate limiting.
	assert.Equal(t, http.StatusOK, rec.Code)
}
