package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"voicegst/internal/handler"
)

func TestHealthHandler(t *testing.T) {
	h := handler.NewHealthHandler()

	c, w := newContext(http.MethodGet, "/healthz", "")
	h.Liveness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/readyz", "")
	h.Readiness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	h.Drain()

	c, w = newContext(http.MethodGet, "/readyz", "")
	h.Readiness(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "shutting down")

	c, w = newContext(http.MethodGet, "/healthz", "")
	h.Liveness(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
