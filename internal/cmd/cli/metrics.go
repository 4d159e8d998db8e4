package cli

import (
	"context"
	"github.com/clambin/tcc-thermostat/internal/thermostat"
	"github.com/clambin/tcc-thermostat/internal/workflow"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"log/slog"
)

const pushJobName = "tcc"

var (
	temperatureDesc = prometheus.NewDesc(
		prometheus.BuildFQName("tcc", "zone", "temperature_celsius"),
		"Measured temperature of the zone",
		[]string{"zone", "phase"},
		nil,
	)
	setpointDesc = prometheus.NewDesc(
		prometheus.BuildFQName("tcc", "zone", "setpoint_celsius"),
		"Heat setpoint of the zone",
		[]string{"zone", "phase"},
		nil,
	)
	targetDesc = prometheus.NewDesc(
		prometheus.BuildFQName("tcc", "zone", "target_celsius"),
		"Requested heat setpoint of the zone",
		[]string{"zone"},
		nil,
	)
	mismatchDesc = prometheus.NewDesc(
		prometheus.BuildFQName("tcc", "zone", "setpoint_mismatch"),
		"1 if the setpoint after the change doesn't match the requested setpoint",
		[]string{"zone"},
		nil,
	)
)

// reportCollector exposes the outcome of a run as metrics.
type reportCollector struct {
	report workflow.Report
}

var _ prometheus.Collector = reportCollector{}

func (r reportCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- temperatureDesc
	ch <- setpointDesc
	ch <- targetDesc
	ch <- mismatchDesc
}

func (r reportCollector) Collect(ch chan<- prometheus.Metric) {
	zone := r.report.Location.ZoneID.String()
	if zone == "" {
		return
	}
	for phase, state := range map[string]*thermostat.ZoneState{"before": r.report.Before, "after": r.report.After} {
		if state == nil {
			continue
		}
		ch <- prometheus.MustNewConstMetric(temperatureDesc, prometheus.GaugeValue, state.Temperature, zone, phase)
		ch <- prometheus.MustNewConstMetric(setpointDesc, prometheus.GaugeValue, state.Setpoint, zone, phase)
	}
	ch <- prometheus.MustNewConstMetric(targetDesc, prometheus.GaugeValue, r.report.Target, zone)
	var mismatch float64
	if r.report.Mismatch {
		mismatch = 1
	}
	ch <- prometheus.MustNewConstMetric(mismatchDesc, prometheus.GaugeValue, mismatch, zone)
}

// pushMetrics pushes the request metrics and the outcome of the run to a Prometheus Pushgateway.
// Failures are logged, but don't affect the outcome of the run.
func pushMetrics(ctx context.Context, url string, registry *prometheus.Registry, report workflow.Report, logger *slog.Logger) {
	if err := registry.Register(reportCollector{report: report}); err != nil {
		logger.Error("failed to register metrics", "err", err)
		return
	}
	if err := push.New(url, pushJobName).Gatherer(registry).PushContext(ctx); err != nil {
		logger.Error("failed to push metrics", "err", err)
		return
	}
	logger.Debug("metrics pushed", "url", url)
}
