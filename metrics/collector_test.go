package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/firthlabs/deferlog/logger"
	"github.com/firthlabs/deferlog/sink"
)

func TestCollector(t *testing.T) {
	if err := logger.Init(
		logger.WithArenaCapacity(1024),
		logger.WithQueueCapacity(16),
		logger.WithFlushInto(sink.NewNull()),
	); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	logger.Info("one")
	logger.Info("two")
	if err := logger.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	reg := prometheus.NewRegistry()
	if err := reg.Register(NewCollector()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	byName := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() != nil {
				byName[mf.GetName()] += m.GetCounter().GetValue()
			}
			if m.GetGauge() != nil {
				byName[mf.GetName()] += m.GetGauge().GetValue()
			}
		}
	}

	if got := byName["deferlog_records_processed_total"]; got != 2 {
		t.Errorf("processed metric = %v, want 2", got)
	}
	if _, ok := byName["deferlog_arena_capacity_bytes"]; !ok {
		t.Error("arena capacity gauge missing")
	}
	if got := byName["deferlog_arena_capacity_bytes"]; got != 1024 {
		t.Errorf("arena capacity gauge = %v, want 1024", got)
	}
	if got := byName["deferlog_queue_capacity"]; got != 16 {
		t.Errorf("queue capacity gauge = %v, want 16", got)
	}
}
