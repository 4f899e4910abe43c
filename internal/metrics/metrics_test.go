package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsolatedRegistries(t *testing.T) {
	a, b := New(), New()
	a.Tickets.WithLabelValues("ok").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Tickets.WithLabelValues("ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Tickets.WithLabelValues("ok")))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.QRCodes.WithLabelValues("ok").Inc()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `catalog_qr_encoded_total{result="ok"} 1`)
}
