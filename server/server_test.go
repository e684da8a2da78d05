package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etnz/inflation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testSources = inflation.Sources{
	InflationFile: "../testdata/inflation.csv",
	RatesFile:     "../testdata/rates.csv",
}

func setupGinTestMode() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, src inflation.Sources, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	setupGinTestMode()
	router := New(src, inflation.DefaultPair, zaptest.NewLogger(t)).Routes()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNew(t *testing.T) {
	s := New(testSources, inflation.DefaultPair, nil)
	assert.NotNil(t, s.logger, "a nil logger should be replaced")
	assert.Equal(t, testSources, s.sources)
}

func TestSetupRoutes(t *testing.T) {
	setupGinTestMode()
	routes := New(testSources, inflation.DefaultPair, nil).Routes().Routes()

	found := map[string]bool{}
	for _, r := range routes {
		if r.Method == http.MethodGet {
			found[r.Path] = true
		}
	}
	for _, path := range []string{"/", "/api/analysis", "/api/merged", "/health"} {
		assert.True(t, found[path], "route %s should be registered", path)
	}
}

func TestHealthCheck(t *testing.T) {
	w := serve(t, testSources, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, ServiceName, body["service"])
	assert.Equal(t, ServiceVersion, body["version"])
}

func TestAnalysis(t *testing.T) {
	w := serve(t, testSources, "/api/analysis", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body struct {
		Rows []struct {
			Year         int     `json:"year"`
			ExchangeRate float64 `json:"exchangeRate"`
		} `json:"rows"`
		Projection struct {
			InitialRate float64 `json:"initialRate"`
		} `json:"projection"`
		Correlation struct {
			Values [3][3]float64 `json:"values"`
		} `json:"correlation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Rows, 5)
	assert.Equal(t, 2000, body.Rows[0].Year)
	assert.Equal(t, 44.94, body.Projection.InitialRate)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, body.Correlation.Values[i][i])
	}
}

func TestAnalysis_Independent(t *testing.T) {
	first := serve(t, testSources, "/api/analysis", nil)
	second := serve(t, testSources, "/api/analysis", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestMerged(t *testing.T) {
	w := serve(t, testSources, "/api/merged", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 5)
	assert.Equal(t, map[string]float64{
		"year":           2000,
		"exchangeRate":   44.94,
		"inflationQuote": 4.01,
		"inflationBase":  3.38,
	}, rows[0])
}

func TestReport(t *testing.T) {
	w := serve(t, testSources, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeHTML, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `id="chart-ppp"`)
}

func TestDataNotLoaded(t *testing.T) {
	missing := inflation.Sources{InflationFile: "../testdata/missing.csv", RatesFile: testSources.RatesFile}

	tests := []struct {
		name string
		path string
	}{
		{name: "analysis", path: "/api/analysis"},
		{name: "merged", path: "/api/merged"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, missing, tt.path, nil)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "data not loaded", body["error"])
			assert.Equal(t, "load", body["stage"])
			assert.Contains(t, body["detail"], "missing.csv")
			assert.NotEmpty(t, body["request_id"])
		})
	}

	t.Run("report", func(t *testing.T) {
		w := serve(t, missing, "/", nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, contentTypeHTML, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "data not loaded")
		assert.Contains(t, w.Body.String(), "Stage: load")
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generated", func(t *testing.T) {
		w := serve(t, testSources, "/health", nil)
		_, err := uuid.Parse(w.Header().Get(RequestIDHeaderKey))
		assert.NoError(t, err, "generated request id should be a uuid")
	})
	t.Run("propagated", func(t *testing.T) {
		w := serve(t, testSources, "/health", http.Header{RequestIDHeaderKey: {"abc-123"}})
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeaderKey))
	})
	t.Run("any header case", func(t *testing.T) {
		w := serve(t, testSources, "/health", http.Header{"x-request-id": {"abc-456"}})
		assert.Equal(t, "abc-456", w.Header().Get(RequestIDHeaderKey))
	})
	t.Run("in error body", func(t *testing.T) {
		w := serve(t, inflation.Sources{}, "/api/analysis", http.Header{RequestIDHeaderKey: {"abc-123"}})
		assert.True(t, strings.Contains(w.Body.String(), `"request_id":"abc-123"`))
	})
}
