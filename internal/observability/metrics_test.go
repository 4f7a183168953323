package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

func TestMetricsHandlerExposesCollectors(t *testing.T) {
	metrics := NewMetrics()
	metrics.ObserveImportRow("folio", crud.OutcomeImported)
	metrics.ObserveDocument("iepf-cover", "rendered")
	require.NoError(t, metrics.Jobs().Track("document:render").End(nil))

	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	for _, name := range []string{
		"registry_import_rows_total",
		"registry_documents_rendered_total",
		"registry_jobs_total",
		"go_goroutines",
	} {
		assert.Contains(t, body, name)
	}
}

func TestMetricsMiddlewareRecordsRoutePattern(t *testing.T) {
	metrics := NewMetrics()
	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Get("/folio/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/folio/12", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/folio/13", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requestsTotal.WithLabelValues("/folio/{id}", http.MethodGet, "418")))
}

func TestImportObserverCounts(t *testing.T) {
	metrics := NewMetrics()
	var observer crud.ImportObserver = metrics
	observer.ObserveImportRow("company-master", crud.OutcomeFailed)
	observer.ObserveImportRow("company-master", crud.OutcomeFailed)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.importRows.WithLabelValues("company-master", crud.OutcomeFailed)))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveImportRow("x", "y")
	m.ObserveDocument("x", "y")
	assert.Nil(t, m.Jobs())
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
