package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/firthlabs/deferlog/core"
	"github.com/firthlabs/deferlog/logger"
	"github.com/firthlabs/deferlog/sink"
)

// Order is the demo aggregate: three fields opt into selective
// serialization, the bookkeeping field stays out of the log entirely.
type Order struct {
	ID       uint64   `log:"serialize"`
	Price    *float64 `log:"serialize"`
	Size     float64  `log:"serialize"`
	Metadata string
}

func main() {
	var (
		sinkName string
		count    int
		level    string
	)

	rootCmd := &cobra.Command{
		Use:   "deferlog-demo",
		Short: "deferlog latency demo",
		Long:  "Logs a stream of orders through the deferred pipeline and reports per-call cost.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(sinkName, count, level)
		},
	}
	rootCmd.Flags().StringVar(&sinkName, "sink", "null", "output sink: stdout, file, null")
	rootCmd.Flags().IntVar(&count, "count", 100_000, "number of log calls")
	rootCmd.Flags().StringVar(&level, "level", "info", "minimum level")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(sinkName string, count int, level string) error {
	var out sink.Sink
	switch sinkName {
	case "stdout":
		out = sink.NewStdout()
	case "file":
		fs, err := sink.NewFile("deferlog-demo.log")
		if err != nil {
			return err
		}
		out = fs
	case "null":
		out = sink.NewNull()
	default:
		return fmt.Errorf("unknown sink %q", sinkName)
	}

	clock := core.NewCoarseClock(100 * time.Microsecond)
	defer clock.Stop()

	if err := logger.Init(
		logger.WithFlushInto(out),
		logger.WithLevel(core.ParseLevel(level)),
		logger.WithClock(clock),
	); err != nil {
		return err
	}

	runID := uuid.NewString()
	logger.Info("demo run {} starting", logger.Str(runID))

	price := 100.5
	order := Order{ID: 42, Price: &price, Size: 10.0, Metadata: "internal"}

	start := time.Now()
	var dropped int
	for i := 0; i < count; i++ {
		order.ID = uint64(i)
		if err := logger.Info("order created: {}", logger.SerStruct(&order)); err != nil {
			// Arena or queue exhausted; drain and keep going.
			dropped++
			if err := logger.Flush(); err != nil {
				return err
			}
		}
	}
	hot := time.Since(start)

	if err := logger.Flush(); err != nil {
		return err
	}
	if err := logger.Close(); err != nil {
		return err
	}

	snap := logger.GetStats()
	fmt.Printf("logged %d records in %v (%.0f ns/call), %d drain-triggering drops, %d emitted\n",
		count, hot, float64(hot.Nanoseconds())/float64(count), dropped, snap.Processed)
	return nil
}
