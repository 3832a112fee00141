package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumengc/internal/gc"
)

func gaugeValue(t *testing.T, g prometheus.Metric) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestCollectorTracksLiveObjects(t *testing.T) {
	heap := gc.New(gc.Config{PageSize: 8, ArenaSize: 8})
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, heap)
	heap.SetHook(c)

	heap.NewString(nil, []byte("x"))

	require.Equal(t, float64(1), gaugeValue(t, c.live))
	require.Equal(t, float64(1), gaugeValue(t, c.heapPages))
}

func TestCollectorCountsCollections(t *testing.T) {
	heap := gc.New(gc.Config{PageSize: 8, ArenaSize: 8})
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, heap)
	heap.SetHook(c)

	heap.Collect()
	heap.Collect()

	var m dto.Metric
	require.NoError(t, c.collections.Write(&m))
	require.Equal(t, float64(2), m.GetCounter().GetValue())
}
