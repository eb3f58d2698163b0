package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus is a Recorder backed by four registered collectors:
//
//   - oxidius_table_unique (gauge)
//   - oxidius_table_overflow_total (counter)
//   - oxidius_transform_calls_total (counter)
//   - oxidius_transform_novel_total (counter)
type Prometheus struct {
	tableUnique    prometheus.Gauge
	tableOverflow  prometheus.Counter
	transformCalls prometheus.Counter
	transformNovel prometheus.Counter
}

// NewPrometheus builds a Prometheus recorder and registers its
// collectors against reg. Passing prometheus.DefaultRegisterer is the
// common case.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		tableUnique: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "oxidius_table_unique",
			Help: "Occupied slots in the dedup table for the in-flight transform call.",
		}),
		tableOverflow: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oxidius_table_overflow_total",
			Help: "Bucket overflows encountered while pushing into the dedup table.",
		}),
		transformCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oxidius_transform_calls_total",
			Help: "Invocations of the transform search.",
		}),
		transformNovel: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oxidius_transform_novel_total",
			Help: "Newly discovered expressions across all transform calls.",
		}),
	}
	reg.MustRegister(p.tableUnique, p.tableOverflow, p.transformCalls, p.transformNovel)
	return p
}

func (p *Prometheus) SetTableUnique(n int)    { p.tableUnique.Set(float64(n)) }
func (p *Prometheus) IncTableOverflow()       { p.tableOverflow.Inc() }
func (p *Prometheus) IncTransformCalls()      { p.transformCalls.Inc() }
func (p *Prometheus) AddTransformNovel(n int) { p.transformNovel.Add(float64(n)) }

var _ Recorder = (*Prometheus)(nil)
