package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Gauge interface {
	Set(value float64, labels ...string)
}

type Counters struct {
	LogsReceived      Counter
	AnomaliesDetected Counter
	ApiRequests       Counter
	CacheRequests     Counter
	PipelineRuns      Counter
}

type Gauges struct {
	HostMemory Gauge
	HostDisk   Gauge
	HostCPU    Gauge
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

type PrometheusGauge struct {
	gauge *prometheus.GaugeVec
}

func NewPrometheusGauge(reg prometheus.Registerer, name, help string, labels []string) *PrometheusGauge {
	g := &PrometheusGauge{
		gauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	reg.MustRegister(g.gauge)
	return g
}

func (p *PrometheusGauge) Set(value float64, labels ...string) {
	p.gauge.WithLabelValues(labels...).Set(value)
}

func newCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		LogsReceived: NewPrometheusCounter(reg,
			"logs_received_total",
			"Number of log entries accepted by the ingestion API",
			[]string{"log_type"},
		),
		AnomaliesDetected: NewPrometheusCounter(reg,
			"anomalies_detected_total",
			"Number of anomalies stored during ingestion",
			[]string{"severity"},
		),
		ApiRequests: NewPrometheusCounter(reg,
			"ingest_api_requests_total",
			"Number of ingestion API requests",
			[]string{"endpoint", "status"},
		),
		CacheRequests: NewPrometheusCounter(reg,
			"cache_requests_total",
			"Number of aggregation cache lookups",
			[]string{"key", "result"},
		),
		PipelineRuns: NewPrometheusCounter(reg,
			"pipeline_runs_total",
			"Number of finished pipeline runs",
			[]string{"status"},
		),
	}
}

func New() *Counters {
	return newCounters(prometheus.DefaultRegisterer)
}

// NewLocal returns counters on a private registry, for one-shot commands without /metrics.
func NewLocal() *Counters {
	return newCounters(prometheus.NewRegistry())
}

func NewTestCounters() *Counters {
	return NewLocal()
}

func newGauges(reg prometheus.Registerer) *Gauges {
	return &Gauges{
		HostMemory: NewPrometheusGauge(reg,
			"host_memory_used_percent",
			"Host memory usage in percent",
			nil,
		),
		HostDisk: NewPrometheusGauge(reg,
			"host_disk_used_percent",
			"Host root disk usage in percent",
			nil,
		),
		HostCPU: NewPrometheusGauge(reg,
			"host_cpu_used_percent",
			"Host CPU usage in percent",
			nil,
		),
	}
}

func NewGauges() *Gauges {
	return newGauges(prometheus.DefaultRegisterer)
}

func NewTestGauges() *Gauges {
	return newGauges(prometheus.NewRegistry())
}
