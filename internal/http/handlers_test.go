package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/ttyfind"
	"github.com/GriffinCanCode/ttyfind/internal/logging"
	"github.com/GriffinCanCode/ttyfind/internal/monitoring"
	"github.com/GriffinCanCode/ttyfind/internal/testutil"
	"github.com/GriffinCanCode/ttyfind/internal/tracing"
)

const ptsThree = 136<<8 | 3

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fs := testutil.NewMemFS()
	fs.AddStat("/proc", 42, testutil.StatLine(42, "bash", ptsThree))
	fs.AddRegistry("/proc", testutil.StandardRegistry())
	fs.AddDevice("/dev/pts/3", ptsThree)

	resolver := ttyfind.New(ttyfind.Config{FS: fs})
	metrics := monitoring.NewMetricsWithRegistry(prometheus.NewRegistry())
	logger := &logging.Logger{Logger: zap.NewNop()}
	tracer := tracing.New("ttyfind-test", zap.NewNop())

	handlers := NewHandlers(resolver, metrics, tracer, logger, "/proc")

	router := gin.New()
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/tty/:pid", handlers.ResolveTTY)
	router.GET("/drivers", handlers.ListDrivers)
	router.GET("/metrics/json", handlers.MetricsJSON)
	return router
}

func doRequest(router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRoot(t *testing.T) {
	router := setupRouter(t)

	w, body := doRequest(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ttyfind", body["service"])
	assert.Equal(t, Version, body["version"])
	assert.NotEmpty(t, body["instance"])
}

func TestHealth(t *testing.T) {
	router := setupRouter(t)

	w, body := doRequest(router, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "/proc", body["proc_root"])
	assert.Equal(t, float64(7), body["drivers"])
}

func TestResolveTTY(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantTTY    string
	}{
		{
			name:       "resolvable pid",
			path:       "/tty/42",
			wantStatus: http.StatusOK,
			wantTTY:    "/dev/pts/3",
		},
		{
			name:       "unknown pid",
			path:       "/tty/41",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "sentinel pid",
			path:       "/tty/-1",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-numeric pid",
			path:       "/tty/bash",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doRequest(router, tt.path)

			assert.Equal(t, tt.wantStatus, w.Code)
			switch tt.wantStatus {
			case http.StatusOK:
				assert.Equal(t, tt.wantTTY, body["tty"])
				assert.Equal(t, true, body["resolved"])
			case http.StatusNotFound:
				assert.Equal(t, false, body["resolved"])
			case http.StatusBadRequest:
				assert.Equal(t, "invalid pid", body["error"])
			}
		})
	}
}

func TestListDrivers(t *testing.T) {
	router := setupRouter(t)

	w, body := doRequest(router, "/drivers")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(7), body["count"])

	drivers, ok := body["drivers"].([]interface{})
	require.True(t, ok)
	require.Len(t, drivers, 7)

	first, ok := drivers[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "/dev/tty", first["name"])
	assert.Equal(t, float64(5), first["major"])
}

func TestMetricsJSON(t *testing.T) {
	router := setupRouter(t)

	// Drive one resolved and one unresolved lookup first.
	doRequest(router, "/tty/42")
	doRequest(router, "/tty/41")

	w, body := doRequest(router, "/metrics/json")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["resolved"])
	assert.Equal(t, float64(1), body["unresolved"])
}

func TestParsePID(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"42", 42, true},
		{"-1", -1, true},
		{" 7 ", 7, true},
		{"bash", 0, false},
		{"", 0, false},
		{"4.2", 0, false},
	}

	for _, tt := range tests {
		got, err := parsePID(tt.input)
		if tt.ok {
			require.NoError(t, err, tt.input)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err, tt.input)
		}
	}
}
