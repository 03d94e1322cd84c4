package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.OrderCreated(3)
	m.OrderCreated(2)
	m.TicketAdded()
	m.TicketReleased(2)
	m.OrderRejected(ReasonDuplicateSeat)
	m.OrderRejected(ReasonDuplicateSeat)
	m.OrderRejected(ReasonOutOfRange)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersCreated))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.ticketsSold))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ticketsReleased))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.orderRejections.WithLabelValues(ReasonDuplicateSeat)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.orderRejections.WithLabelValues(ReasonOutOfRange)))
}

func TestHandlerExposesRequestHistogram(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveRequest(http.MethodPost, "/api/orders", http.StatusCreated, 25*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `cinema_http_request_duration_seconds_count{method="POST",route="/api/orders",status="201"} 1`), body)
}
