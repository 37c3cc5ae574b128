package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	balanceReports        *prometheus.CounterVec
	balanceReportDuration prometheus.Histogram
	churchBalance         *prometheus.GaugeVec
	movementsRecorded     *prometheus.CounterVec
	exchangesRecorded     *prometheus.CounterVec
	movementsCancelled    prometheus.Counter
	schedulerRuns         *prometheus.CounterVec
	auditLogsPurged       prometheus.Counter
}

// NewPrometheusMetrics registers the service metrics on reg, or on the
// default registry when reg is nil.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		balanceReports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "balance_reports_total",
				Help: "Total number of balance reports built",
			},
			[]string{"status"},
		),
		balanceReportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "balance_report_duration_milliseconds",
				Help:    "Balance report build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		churchBalance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "church_balance",
				Help: "Current balance of a church per currency",
			},
			[]string{"church", "currency"},
		),
		movementsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "movements_recorded_total",
				Help: "Total number of movements recorded",
			},
			[]string{"kind", "currency"},
		),
		exchangesRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchanges_recorded_total",
				Help: "Total number of currency exchanges recorded",
			},
			[]string{"from", "to"},
		),
		movementsCancelled: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "movement_cancellations_total",
				Help: "Total number of movement cancellations",
			},
		),
		schedulerRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduler_job_runs_total",
				Help: "Total number of scheduled job runs",
			},
			[]string{"job", "status"},
		),
		auditLogsPurged: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "audit_logs_purged_total",
				Help: "Total number of audit entries removed by retention",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "balance_report_generated":
		m.balanceReports.WithLabelValues("success").Inc()
	case "balance_report_failed":
		m.balanceReports.WithLabelValues("failed").Inc()
	case "movement_recorded":
		m.movementsRecorded.WithLabelValues(tags["kind"], tags["currency"]).Inc()
	case "exchange_recorded":
		m.exchangesRecorded.WithLabelValues(tags["from"], tags["to"]).Inc()
	case "movement_cancelled":
		m.movementsCancelled.Inc()
	case "scheduler_job":
		if job := tags["job"]; job != "" {
			m.schedulerRuns.WithLabelValues(job, tags["status"]).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "balance_report":
		m.balanceReportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "church_balance":
		m.churchBalance.WithLabelValues(tags["church"], tags["currency"]).Set(value)
	case "audit_logs_purged":
		m.auditLogsPurged.Add(value)
	}
}
