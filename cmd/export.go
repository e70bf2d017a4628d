package cmd

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	sim "github.com/rink-sim/rink-sim/sim"
)

// runMetrics holds the gauges and histograms describing one finished run.
// Every series carries the run id as a constant label.
type runMetrics struct {
	served           prometheus.Gauge
	rejected         prometheus.Gauge
	generated        prometheus.Gauge
	utilization      prometheus.Gauge
	badIcePercentage prometheus.Gauge
	resurfacings     prometheus.Gauge
	waitMinutes      prometheus.Gauge
	queueTime        prometheus.Histogram
	resurfacingWait  prometheus.Histogram
}

// minuteBuckets covers waits from a few seconds to a full shift.
var minuteBuckets = []float64{1, 5, 10, 20, 30, 60, 120, 240}

// newRunMetrics registers the run collectors on reg.
func newRunMetrics(reg prometheus.Registerer, runID string) (*runMetrics, error) {
	labels := prometheus.Labels{"run_id": runID}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rink", Name: name, Help: help, ConstLabels: labels,
		})
	}
	m := &runMetrics{
		served:           gauge("served_groups", "Groups that finished their game before the horizon"),
		rejected:         gauge("rejected_groups", "Groups turned away by a full waiting area"),
		generated:        gauge("groups_generated", "Groups that arrived before the horizon"),
		utilization:      gauge("utilization_percent", "Share of the horizon the rink was booked"),
		badIcePercentage: gauge("bad_ice_percent", "Share of the horizon played on bad ice"),
		resurfacings:     gauge("resurfacings", "Completed resurfacing operations"),
		waitMinutes:      gauge("wait_minutes_total", "Total minutes groups spent in the waiting area"),
		queueTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rink", Name: "queue_time_minutes", Help: "Simulation minute at which a group entered the waiting area",
			ConstLabels: labels, Buckets: prometheus.LinearBuckets(0, 60, 10),
		}),
		resurfacingWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rink", Name: "resurfacing_wait_minutes", Help: "Delay between a resurfacing falling due and starting",
			ConstLabels: labels, Buckets: minuteBuckets,
		}),
	}
	for _, c := range []prometheus.Collector{
		m.served, m.rejected, m.generated, m.utilization, m.badIcePercentage,
		m.resurfacings, m.waitMinutes, m.queueTime, m.resurfacingWait,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering run metrics: %w", err)
		}
	}
	return m, nil
}

// observe copies finalized statistics into the collectors.
func (m *runMetrics) observe(stats *sim.Statistics) {
	m.served.Set(float64(stats.ServedGroups))
	m.rejected.Set(float64(stats.RejectedGroups))
	m.generated.Set(float64(stats.GroupsGenerated))
	m.utilization.Set(stats.Utilization)
	m.badIcePercentage.Set(stats.BadIcePercentage)
	m.resurfacings.Set(float64(stats.IceResurfacingCount))
	m.waitMinutes.Set(stats.TotalWaitTime)
	for _, t := range stats.QueueTimes {
		m.queueTime.Observe(t)
	}
	for _, w := range stats.IceResurfacingWaitTimes {
		m.resurfacingWait.Observe(w)
	}
}

// exportMetrics writes the run in the Prometheus text exposition format to
// path, for pickup by a node exporter textfile collector.
func exportMetrics(path, runID string, stats *sim.Statistics) error {
	reg := prometheus.NewRegistry()
	m, err := newRunMetrics(reg, runID)
	if err != nil {
		return err
	}
	m.observe(stats)
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
