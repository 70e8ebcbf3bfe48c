package logger

import (
	"github.com/spf13/viper"

	"github.com/firthlabs/deferlog/core"
	"github.com/firthlabs/deferlog/sink"
)

const (
	// DefaultArenaCapacity is the arena size in bytes when neither an
	// option nor the environment overrides it.
	DefaultArenaCapacity = 1_000_000

	// DefaultQueueCapacity is the record queue size in slots when
	// neither an option nor the environment overrides it.
	DefaultQueueCapacity = 1_000_000
)

// config collects everything Init needs to build the process-wide state.
type config struct {
	arenaCapacity int
	queueCapacity int
	level         core.Level
	clock         core.Clock
	sink          sink.Sink
	filePath      string
	strict        bool
}

// configFromEnv loads the defaults, letting DEFERLOG_ARENA_CAPACITY,
// DEFERLOG_QUEUE_CAPACITY and DEFERLOG_LEVEL override them. Explicit
// Init options win over the environment.
func configFromEnv() config {
	v := viper.New()
	v.SetEnvPrefix("DEFERLOG")
	v.AutomaticEnv()
	v.SetDefault("arena_capacity", DefaultArenaCapacity)
	v.SetDefault("queue_capacity", DefaultQueueCapacity)
	v.SetDefault("level", core.InfoLevel.String())

	return config{
		arenaCapacity: v.GetInt("arena_capacity"),
		queueCapacity: v.GetInt("queue_capacity"),
		level:         core.ParseLevel(v.GetString("level")),
		clock:         core.WallClock{},
	}
}

// Option customizes Init.
type Option func(*config)

// WithArenaCapacity sets the arena size in bytes.
func WithArenaCapacity(n int) Option {
	return func(c *config) { c.arenaCapacity = n }
}

// WithQueueCapacity sets the record queue size in slots.
func WithQueueCapacity(n int) Option {
	return func(c *config) { c.queueCapacity = n }
}

// WithLevel sets the minimum level; callsites below it do no work.
func WithLevel(level core.Level) Option {
	return func(c *config) { c.level = level }
}

// WithClock sets the timestamp source. Default is core.WallClock.
func WithClock(clock core.Clock) Option {
	return func(c *config) { c.clock = clock }
}

// WithFlushInto sets the sink that Flush drains into. Default is stdout.
func WithFlushInto(s sink.Sink) Option {
	return func(c *config) { c.sink = s }
}

// WithFlushIntoFile makes Flush drain into the file at path, opened with
// append semantics during Init.
func WithFlushIntoFile(path string) Option {
	return func(c *config) { c.filePath = path }
}

// WithStrict makes arena capacity violations panic instead of returning
// an error, surfacing miscalibrated buffer sizes during development.
func WithStrict() Option {
	return func(c *config) { c.strict = true }
}
