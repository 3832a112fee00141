// Package metrics exposes a collector's behavior as Prometheus series. It
// implements gc.Hook and reads *gc.GC's exported counters; internal/gc
// never imports it, so wiring it in never costs internal/gc an import.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lumen-lang/lumengc/internal/gc"
)

// Collector implements gc.Hook and registers a handful of gauges plus a
// counter/histogram pair describing collection cycles.
type Collector struct {
	live          prometheus.GaugeFunc
	heapPages     prometheus.GaugeFunc
	freeHeapPages prometheus.GaugeFunc
	collections   prometheus.Counter
	duration      prometheus.Histogram

	start time.Time
}

// NewCollector builds a Collector bound to g and registers its series
// with reg. Callers typically call g.SetHook on the result immediately
// after.
func NewCollector(reg prometheus.Registerer, g *gc.GC) *Collector {
	c := &Collector{
		live: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "lumengc",
			Name:      "live_objects",
			Help:      "Number of slots currently tagged as live objects.",
		}, func() float64 { return float64(g.Live()) }),
		heapPages: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "lumengc",
			Name:      "heap_pages",
			Help:      "Number of pages currently owned by the heap.",
		}, func() float64 { return float64(g.HeapPages()) }),
		freeHeapPages: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "lumengc",
			Name:      "free_heap_pages",
			Help:      "Number of heap pages with at least one free slot.",
		}, func() float64 { return float64(g.FreeHeapPages()) }),
		collections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lumengc",
			Name:      "collections_total",
			Help:      "Total number of completed mark-and-sweep cycles.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lumengc",
			Name:      "collection_seconds",
			Help:      "Wall-clock duration of a single collection cycle.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.live, c.heapPages, c.freeHeapPages, c.collections, c.duration)
	return c
}

// BeforeCollect implements gc.Hook.
func (c *Collector) BeforeCollect(g *gc.GC) {
	c.start = time.Now()
}

// AfterCollect implements gc.Hook.
func (c *Collector) AfterCollect(g *gc.GC) {
	c.collections.Inc()
	c.duration.Observe(time.Since(c.start).Seconds())
}
