// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveUpstream("search", time.Now(), nil)
		m.AddNormalized(3)
		m.IncStale()
		m.IncCache("hit")
		m.IncHTTP("/api/search", "200")
	})
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCounters(t *testing.T) {
	m := New()

	m.ObserveUpstream("search", time.Now(), nil)
	m.ObserveUpstream("search", time.Now(), errors.New("boom"))
	m.ObserveUpstream("title", time.Now(), nil)
	m.AddNormalized(4)
	m.AddNormalized(0)
	m.IncStale()
	m.IncCache("miss")
	m.IncCache("miss")
	m.IncHTTP("/api/search", "200")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("search", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("search", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("title", OutcomeOK)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.normalizedDocs))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.staleResponses))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/search", "200")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.AddNormalized(2)

	ts := httptest.NewServer(m.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "spaceper_normalized_documents_total 2")
	assert.Contains(t, string(body), "go_goroutines")
}
