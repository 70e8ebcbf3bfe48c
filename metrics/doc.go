// Package metrics exposes the logger's counters to Prometheus.
//
// The Collector reads the process-wide drop and processed counters plus
// arena and queue usage on every scrape; nothing here touches the
// producer hot path. Registration is the caller's choice:
//
//	prometheus.MustRegister(metrics.NewCollector())
//
// The package is optional — the logger never imports it.
package metrics
