package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine checks that the Prometheus output contains a metric line
// matching the given name, partial label pattern, and value. Uses regex to
// handle extra OTel scope labels injected by the Prometheus exporter.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrapeMetrics(t *testing.T, provider *Provider) string {
	t.Helper()

	recorder := httptest.NewRecorder()
	provider.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("inventory")
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "inventory")

	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestBusinessMetrics_RecordOperation(t *testing.T) {
	provider, err := NewProvider("inventory")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "inventory")
	require.NoError(t, err)

	bm.RecordOperation(context.Background(), "secrets", "secret_create", "success")
	bm.RecordOperation(context.Background(), "secrets", "secret_create", "success")
	bm.RecordOperation(context.Background(), "secrets", "secret_reveal", "error")

	output := scrapeMetrics(t, provider)
	assertMetricLine(t, output, "inventory_operations_total", `operation="secret_create"`, "2")
	assertMetricLine(t, output, "inventory_operations_total", `operation="secret_reveal"`, "1")
	assertMetricLine(t, output, "inventory_operations_total", `status="error"`, "1")
}

func TestBusinessMetrics_RecordDuration(t *testing.T) {
	provider, err := NewProvider("inventory")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "inventory")
	require.NoError(t, err)

	bm.RecordDuration(context.Background(), "secrets", "secret_create", 150*time.Millisecond, "success")

	output := scrapeMetrics(t, provider)
	assertMetricLine(t, output, "inventory_operation_duration_seconds_count", `operation="secret_create"`, "1")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	bm := NewNoOpBusinessMetrics()

	// Must be safe without any provider
	bm.RecordOperation(context.Background(), "secrets", "secret_create", "success")
	bm.RecordDuration(context.Background(), "secrets", "secret_create", time.Second, "error")
}
