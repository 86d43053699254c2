package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMiddleware(t *testing.T) {
	// fresh registry per test to avoid duplicate registration panics
	reg := prometheus.NewRegistry()
	promMiddleware, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(promMiddleware.Handler())

	app.Get("/files/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad request")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/files/1", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest("GET", "/files/2", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// both hits collapse onto the route pattern label
	count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/files/:id", "200"))
	assert.Equal(t, float64(2), count)

	app.Test(httptest.NewRequest("GET", "/error", nil))
	count = testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/error", "400"))
	assert.Equal(t, float64(1), count)
}

func TestPrometheusMiddleware_SkipsMetricsPath(t *testing.T) {
	reg := prometheus.NewRegistry()
	promMiddleware, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Test(httptest.NewRequest("GET", "/metrics", nil))

	count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/metrics", "200"))
	assert.Equal(t, float64(0), count)
}
