package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gathered(t *testing.T, reg *prometheus.Registry, name string) map[string]float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	out := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			key := ""
			for _, lp := range m.GetLabel() {
				key += lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			}
		}
	}
	return out
}

func TestPrometheusCounter_Inc(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheusCounter(reg, "test_total", "test", []string{"kind"})

	c.Inc("a")
	c.Inc("a")
	c.Inc("b")

	got := gathered(t, reg, "test_total")
	assert.Equal(t, 2.0, got["a"])
	assert.Equal(t, 1.0, got["b"])
}

func TestPrometheusGauge_Set(t *testing.T) {
	reg := prometheus.NewRegistry()
	g := NewPrometheusGauge(reg, "test_gauge", "test", nil)

	g.Set(42.5)
	g.Set(17)

	assert.Equal(t, 17.0, gathered(t, reg, "test_gauge")[""])
}

func TestNewTestCounters_Isolated(t *testing.T) {
	assert.NotPanics(t, func() {
		NewTestCounters()
		NewTestCounters()
		NewTestGauges()
		NewTestGauges()
	})
}
