package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/stores/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/api/stores/1", "/api/stores/2", "/nowhere"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestTotal.WithLabelValues(http.MethodGet, "/api/stores/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.requestInFlight))
}

func TestObserveExtractionSplitsItems(t *testing.T) {
	m := New()
	m.ObserveExtraction(true, time.Second, 5, 2)
	m.ObserveExtraction(false, time.Second, 3, 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.extractFilesTotal.WithLabelValues("succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.extractFilesTotal.WithLabelValues("failed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.extractedItems.WithLabelValues("pending_review")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.extractedItems.WithLabelValues("auto_approved")))
}

func TestApprovalAndReloadOutcomes(t *testing.T) {
	m := New()
	m.ObserveApproval(nil)
	m.ObserveApproval(errors.New("x"))
	m.ObserveStoreReload(nil)
	m.ObserveBatch(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.approvalsTotal.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeReloadsTotal.WithLabelValues("succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.batchesTotal))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.ObserveBatch(1)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shelf_extract_batches_total 1")
}
