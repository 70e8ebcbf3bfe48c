package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/firthlabs/deferlog/core"
	"github.com/firthlabs/deferlog/logger"
)

var (
	processedDesc = prometheus.NewDesc(
		"deferlog_records_processed_total",
		"Records drained and emitted to the sink.",
		nil, nil,
	)
	droppedDesc = prometheus.NewDesc(
		"deferlog_records_dropped_total",
		"Records dropped on the producer path, by level.",
		[]string{"level"}, nil,
	)
	arenaOccupiedDesc = prometheus.NewDesc(
		"deferlog_arena_occupied_bytes",
		"Arena bytes between tail and head.",
		nil, nil,
	)
	arenaCapacityDesc = prometheus.NewDesc(
		"deferlog_arena_capacity_bytes",
		"Arena capacity.",
		nil, nil,
	)
	queueLengthDesc = prometheus.NewDesc(
		"deferlog_queue_length",
		"Records enqueued and not yet drained.",
		nil, nil,
	)
	queueCapacityDesc = prometheus.NewDesc(
		"deferlog_queue_capacity",
		"Record queue capacity in slots.",
		nil, nil,
	)
)

// Collector implements prometheus.Collector over the logger's counters.
type Collector struct{}

// NewCollector creates a collector. The logger must be initialized
// before the first scrape.
func NewCollector() *Collector { return &Collector{} }

// Describe sends the metric descriptors.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- processedDesc
	ch <- droppedDesc
	ch <- arenaOccupiedDesc
	ch <- arenaCapacityDesc
	ch <- queueLengthDesc
	ch <- queueCapacityDesc
}

// Collect reads the counters and usage gauges.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := logger.GetStats()
	ch <- prometheus.MustNewConstMetric(processedDesc, prometheus.CounterValue, float64(snap.Processed))
	for _, level := range []core.Level{
		core.TraceLevel, core.DebugLevel, core.InfoLevel, core.WarnLevel, core.ErrorLevel,
	} {
		ch <- prometheus.MustNewConstMetric(droppedDesc, prometheus.CounterValue,
			float64(snap.Dropped[level]), level.String())
	}

	occupied, capacity := logger.ArenaUsage()
	ch <- prometheus.MustNewConstMetric(arenaOccupiedDesc, prometheus.GaugeValue, float64(occupied))
	ch <- prometheus.MustNewConstMetric(arenaCapacityDesc, prometheus.GaugeValue, float64(capacity))

	length, slots := logger.QueueUsage()
	ch <- prometheus.MustNewConstMetric(queueLengthDesc, prometheus.GaugeValue, float64(length))
	ch <- prometheus.MustNewConstMetric(queueCapacityDesc, prometheus.GaugeValue, float64(slots))
}
