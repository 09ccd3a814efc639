// Package metrics collects per-route latency and outcome counters for
// dispatched requests.
package metrics

import (
	"sort"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Recorder aggregates request outcomes. Latencies are recorded in
// microseconds for precision, clamped to the histogram range.
type Recorder struct {
	mu sync.Mutex

	total   int64
	success int64
	failed  int64

	histogram *hdrhistogram.Histogram
	perRoute  map[string]*routeMetrics
}

type routeMetrics struct {
	total     int64
	success   int64
	failed    int64
	histogram *hdrhistogram.Histogram
}

// Summary is a point-in-time view of recorded outcomes.
type Summary struct {
	Total   int64
	Success int64
	Failed  int64
	Mean    time.Duration
	P50     time.Duration
	P95     time.Duration
	P99     time.Duration
	Max     time.Duration
}

func newHistogram() *hdrhistogram.Histogram {
	// 1us to 60s range, 3 significant digits
	return hdrhistogram.New(1, 60_000_000, 3)
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		histogram: newHistogram(),
		perRoute:  make(map[string]*routeMetrics),
	}
}

// Record notes one request outcome. name may be empty for ad-hoc calls;
// named routes additionally feed a per-route histogram.
func (r *Recorder) Record(name string, duration time.Duration, err error) {
	latencyUs := duration.Microseconds()
	if latencyUs < 1 {
		latencyUs = 1
	}
	if latencyUs > 60_000_000 {
		latencyUs = 60_000_000
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.total++
	if err != nil {
		r.failed++
	} else {
		r.success++
	}
	_ = r.histogram.RecordValue(latencyUs)

	if name == "" {
		return
	}

	rm, ok := r.perRoute[name]
	if !ok {
		rm = &routeMetrics{histogram: newHistogram()}
		r.perRoute[name] = rm
	}
	rm.total++
	if err != nil {
		rm.failed++
	} else {
		rm.success++
	}
	_ = rm.histogram.RecordValue(latencyUs)
}

// Summary returns aggregate numbers across all recorded requests.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Summary{
		Total:   r.total,
		Success: r.success,
		Failed:  r.failed,
		Mean:    time.Duration(r.histogram.Mean()) * time.Microsecond,
		P50:     time.Duration(r.histogram.ValueAtQuantile(50)) * time.Microsecond,
		P95:     time.Duration(r.histogram.ValueAtQuantile(95)) * time.Microsecond,
		P99:     time.Duration(r.histogram.ValueAtQuantile(99)) * time.Microsecond,
		Max:     time.Duration(r.histogram.Max()) * time.Microsecond,
	}
}

// RouteSummary returns aggregate numbers for one named route.
func (r *Recorder) RouteSummary(name string) (Summary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm, ok := r.perRoute[name]
	if !ok {
		return Summary{}, false
	}
	return Summary{
		Total:   rm.total,
		Success: rm.success,
		Failed:  rm.failed,
		Mean:    time.Duration(rm.histogram.Mean()) * time.Microsecond,
		P50:     time.Duration(rm.histogram.ValueAtQuantile(50)) * time.Microsecond,
		P95:     time.Duration(rm.histogram.ValueAtQuantile(95)) * time.Microsecond,
		P99:     time.Duration(rm.histogram.ValueAtQuantile(99)) * time.Microsecond,
		Max:     time.Duration(rm.histogram.Max()) * time.Microsecond,
	}, true
}

// RouteNames returns the recorded route names, sorted.
func (r *Recorder) RouteNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.perRoute))
	for name := range r.perRoute {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
