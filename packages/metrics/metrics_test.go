package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	rec := NewRecorder()

	rec.Record("getUser", 10*time.Millisecond, nil)
	rec.Record("getUser", 20*time.Millisecond, errors.New("boom"))
	rec.Record("", 5*time.Millisecond, nil)

	summary := rec.Summary()
	assert.Equal(t, int64(3), summary.Total)
	assert.Equal(t, int64(2), summary.Success)
	assert.Equal(t, int64(1), summary.Failed)
	assert.GreaterOrEqual(t, summary.Max, 15*time.Millisecond)
}

func TestRecorder_PerRoute(t *testing.T) {
	rec := NewRecorder()

	rec.Record("getUser", 10*time.Millisecond, nil)
	rec.Record("createUser", 30*time.Millisecond, nil)
	rec.Record("", time.Millisecond, nil)

	assert.Equal(t, []string{"createUser", "getUser"}, rec.RouteNames())

	summary, ok := rec.RouteSummary("getUser")
	require.True(t, ok)
	assert.Equal(t, int64(1), summary.Total)
	assert.Equal(t, int64(1), summary.Success)

	_, ok = rec.RouteSummary("missing")
	assert.False(t, ok)
}

func TestRecorder_Quantiles(t *testing.T) {
	rec := NewRecorder()
	for i := 0; i < 100; i++ {
		rec.Record("r", 10*time.Millisecond, nil)
	}

	summary := rec.Summary()
	assert.InDelta(t, float64(10*time.Millisecond), float64(summary.P50), float64(time.Millisecond))
	assert.InDelta(t, float64(10*time.Millisecond), float64(summary.P99), float64(time.Millisecond))
}

func TestRecorder_ClampsTinyDurations(t *testing.T) {
	rec := NewRecorder()
	rec.Record("r", 0, nil)

	summary := rec.Summary()
	assert.Equal(t, int64(1), summary.Total)
	assert.GreaterOrEqual(t, summary.Max, time.Microsecond)
}
