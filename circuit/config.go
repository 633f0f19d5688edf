// File: config.go
// Role: circuit.Config and its functional options, covering the four
//       knobs §6 "Configuration" names: workers, iteration_cap,
//       strict_input_validation, trace_compaction_interval. Mirrors the
//       GraphOption/FlowOptions pattern this project's ambient stack is
//       built on.

package circuit

// Config holds circuit-wide tunables resolved from functional options
// at NewBuilder time. The zero Config is not valid; use DefaultConfig
// or NewBuilder(opts...), which seeds a Config with the defaults below
// before applying opts.
//
// The resolved Config is recorded in the Circuit, but no code in this
// module reads it back: each consumer of these settings takes its own
// explicit argument instead (AddExchange's workers, nested.New's
// iterationCap, changemgr.New's strict, trace.NewBatcher's
// compactionInterval).
type Config struct {
	// Workers is the data-parallel worker count (§5); default 1. This
	// package executes one circuit instance per call and spawns no
	// goroutines; AddExchange takes its fan-out as its own argument.
	Workers int

	// IterationCap is the nested-circuit iteration cap (§4.6, §6);
	// default 10_000. nested.New takes its cap as its own argument.
	IterationCap int

	// StrictInputValidation is the strict-mode flag for the change
	// manager (§4.8); default false. changemgr.New takes its strict flag
	// as its own argument, and this package's Tick performs no content
	// validation.
	StrictInputValidation bool

	// TraceCompactionInterval is the compaction interval for retained
	// traces; default 16. trace.NewBatcher takes its interval as its own
	// argument, and AddJoin keeps its running traces as plain
	// trace.Trace values merged via trace.Add, with no Batcher.
	TraceCompactionInterval int
}

// Option configures a Config before a Builder is created.
type Option func(*Config)

// DefaultConfig returns the §6-specified defaults:
// {workers: 1, iteration_cap: 10_000, strict_input_validation: false,
// trace_compaction_interval: 16}.
func DefaultConfig() Config {
	return Config{
		Workers:                 1,
		IterationCap:            10_000,
		StrictInputValidation:   false,
		TraceCompactionInterval: 16,
	}
}

// WithWorkers sets the data-parallel worker count.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithIterationCap overrides the nested-circuit iteration cap.
func WithIterationCap(n int) Option {
	return func(c *Config) { c.IterationCap = n }
}

// WithStrictInputValidation sets Config.StrictInputValidation.
func WithStrictInputValidation(strict bool) Option {
	return func(c *Config) { c.StrictInputValidation = strict }
}

// WithCompactionInterval sets Config.TraceCompactionInterval.
func WithCompactionInterval(ticks int) Option {
	return func(c *Config) { c.TraceCompactionInterval = ticks }
}

// resolveConfig applies opts over DefaultConfig, mirroring
// builder.newBuilderConfig in this project's ancestry.
func resolveConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
