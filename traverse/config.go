package traverse

// Config configures the behavior of a Traverser.
type Config struct {
	// MinLoopLength is the loop-pruning threshold: a chain is pruned as a
	// loop when two of its records revisit the same (state, accepted
	// count) pair more than MinLoopLength steps apart.
	//
	// Default: 0, which prunes any revisit. Raising it keeps longer
	// insertion cycles alive and is only useful for debugging the pruner;
	// the enumeration is minimal with the default.
	MinLoopLength int

	// MaxGenerations bounds the number of traversal generations before
	// Execute gives up with ErrGenerationLimit.
	//
	// Default: 0, unbounded. The loop pruner already guarantees
	// termination for any finite DFA and input; this is a safety valve
	// for callers feeding adversarial automata where the full enumeration
	// would be too large to wait for.
	MaxGenerations int
}

// DefaultConfig returns a configuration with sensible defaults: prune every
// insertion loop, never stop early.
func DefaultConfig() Config {
	return Config{
		MinLoopLength:  0,
		MaxGenerations: 0,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MinLoopLength < 0 {
		return &Error{Kind: InvalidConfig, Message: "MinLoopLength must be >= 0"}
	}
	if c.MaxGenerations < 0 {
		return &Error{Kind: InvalidConfig, Message: "MaxGenerations must be >= 0"}
	}
	return nil
}
