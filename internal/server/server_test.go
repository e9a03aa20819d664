package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/algolens/algolens/api/schemas"
	"github.com/algolens/algolens/internal/config"
	"github.com/algolens/algolens/internal/engine"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T, mutate func(*config.ServerConfig)) *Server {
	t.Helper()
	cfg := config.NewDefaultConfig()
	if mutate != nil {
		mutate(&cfg.ServerCfg)
	}
	analyzer := engine.New(cfg.Analysis(), zap.NewNop())
	return New(cfg.Server(), analyzer, zap.NewNop())
}

func postAnalyze(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(t, nil).Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "algolens", body["service"])
}

func TestAnalyzeEndpoint_BinarySearch(t *testing.T) {
	router := newTestServer(t, nil).Router()

	rec := postAnalyze(t, router, schemas.AnalyzeRequest{
		Code: "arr = [1, 3, 5, 7, 9, 11]\ntarget = 7\nwhile left <= right:\n    mid = (left + right) // 2",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp schemas.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Binary Search", resp.Algorithm)
	assert.Greater(t, resp.Confidence, 0.3)
	assert.Equal(t, []int{1, 3, 5, 7, 9, 11}, resp.Instance.Array())
	assert.Equal(t, 7, resp.Instance.Target)
	require.NotEmpty(t, resp.Steps)
	assert.Equal(t, len(resp.Steps), resp.Metadata.TotalSteps)
	assert.Equal(t, "binary_search", resp.Metadata.Pattern)
}

func TestAnalyzeEndpoint_MissingCode(t *testing.T) {
	router := newTestServer(t, nil).Router()

	rec := postAnalyze(t, router, map[string]any{"customTarget": 7})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Code")
}

func TestAnalyzeEndpoint_MalformedJSON(t *testing.T) {
	router := newTestServer(t, nil).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "malformed request body", body["error"])
}

func TestPatternsEndpoint(t *testing.T) {
	router := newTestServer(t, nil).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/patterns", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Patterns []schemas.PatternInfo `json:"patterns"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Patterns, 6)
	assert.Equal(t, schemas.PatternBinarySearch, body.Patterns[0].Label)
	assert.True(t, body.Patterns[0].Simulated)
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestServer(t, nil).Router()

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("echoed when supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "test-id-42")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, "test-id-42", rec.Header().Get("X-Request-ID"))
	})
}

func TestCORSPreflight(t *testing.T) {
	router := newTestServer(t, nil).Router()

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORSOriginList(t *testing.T) {
	router := newTestServer(t, func(sc *config.ServerConfig) {
		sc.CORSAllowOrigins = []string{"http://allowed.example"}
	}).Router()

	t.Run("allowed origin is reflected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://allowed.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, "http://allowed.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origins get no allow header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://other.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimit(t *testing.T) {
	router := newTestServer(t, func(sc *config.ServerConfig) {
		sc.RateLimitRPS = 1
		sc.RateLimitBurst = 2
	}).Router()

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Contains(t, codes[2:], http.StatusTooManyRequests)
}
