// ABOUTME: Tests for the Prometheus recorder.
// ABOUTME: Reads counters back through testutil and scrapes the handler.
package telemetry

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCounters(t *testing.T) {
	p := NewPrometheus()

	p.ObserveCycle("coach", 20*time.Millisecond)
	p.ObserveCycle("coach", 30*time.Millisecond)
	p.ObserveCycle("athlete", time.Millisecond)
	p.ObserveLoadFailure("sleep")
	p.ObserveWidget("coach", "line")
	p.ObserveWidget("coach", "line")

	assert.Equal(t, 2.0, testutil.ToFloat64(p.cycles.WithLabelValues("coach")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.cycles.WithLabelValues("athlete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.loadFailures.WithLabelValues("sleep")))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.widgets.WithLabelValues("coach", "line")))
	assert.Equal(t, 2, testutil.CollectAndCount(p.duration))
}

func TestRecordersAreIndependent(t *testing.T) {
	a := NewPrometheus()
	b := NewPrometheus()

	a.ObserveLoadFailure("ecg")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.loadFailures.WithLabelValues("ecg")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.loadFailures.WithLabelValues("ecg")))
}

func TestHandlerExposition(t *testing.T) {
	p := NewPrometheus()
	p.ObserveCycle("trainer", time.Millisecond)

	srv := httptest.NewServer(p.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `galaxydash_render_cycles_total{role="trainer"} 1`)
	assert.Contains(t, string(body), "galaxydash_render_duration_seconds_bucket")
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	r.ObserveCycle("athlete", time.Second)
	r.ObserveLoadFailure("bp")
	r.ObserveWidget("athlete", "metric")
}
