package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devproc/internal/dnscache"
)

var _ dnscache.Observer = (*Collector)(nil)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector("")
	c.ObserveLookup(true)
	c.ObserveLookup(true)
	c.ObserveLookup(false)
	c.ObserveAdd()
	c.SetConfiguredProcesses(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.lookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.lookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.adds))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.configured))
}

func TestCollectorWiredIntoCache(t *testing.T) {
	c := NewCollector("test")
	cache := dnscache.New(nil, dnscache.WithObserver(c))
	cache.Add("web", 9000)
	cache.Lookup("web")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.adds))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.lookups.WithLabelValues("hit")))
}

func TestHandlerServesMetrics(t *testing.T) {
	c := NewCollector("devproc")
	c.ObserveAdd()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "devproc_name_adds_total 1"))
}
