package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicegst/internal/metrics"
	"voicegst/internal/middleware"
)

func TestMetrics_RecordsByRouteTemplate(t *testing.T) {
	m := metrics.New()

	r := gin.New()
	r.Use(middleware.Metrics(m))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/items/1", "/items/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	count, err := testutil.GatherAndCount(m.Registry(), "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per route template and status")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/items/:id",status="200"} 2`)
	assert.Contains(t, string(body), `route="unknown",status="404"`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Metrics(nil))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
