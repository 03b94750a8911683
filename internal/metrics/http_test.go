package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	t.Run("records requests with the route pattern", func(t *testing.T) {
		provider, err := NewProvider("inventory")
		require.NoError(t, err)

		router := gin.New()
		router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "inventory"))
		router.GET("/v1/secrets/:id/reveal", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/secrets/abc/reveal", nil))
		require.Equal(t, http.StatusOK, recorder.Code)

		output := scrapeMetrics(t, provider)
		assertMetricLine(t, output, "inventory_http_requests_total", `path="/v1/secrets/:id/reveal"`, "1")
		assertMetricLine(t, output, "inventory_http_requests_total", `status_code="200"`, "1")
	})

	t.Run("unmatched routes are labeled unknown", func(t *testing.T) {
		provider, err := NewProvider("inventory")
		require.NoError(t, err)

		router := gin.New()
		router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "inventory"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/missing", nil))
		require.Equal(t, http.StatusNotFound, recorder.Code)

		output := scrapeMetrics(t, provider)
		assertMetricLine(t, output, "inventory_http_requests_total", `path="unknown"`, "1")
	})
}
