package cluster

// Config is the keyword-option configuration surface of the clustering
// core (spec.md §3). There are no environment variables and no file or
// network access anywhere in this package (spec.md §6) — every option
// reaches the core as a field on this struct, populated by the caller
// (typically cmd/coassembly-cluster, from CLI flags).
type Config struct {
	// MaxCoassemblySamples is the upper bound on |samples| per
	// coassembly. Default 2.
	MaxCoassemblySamples int
	// MinCoassemblySamples is the lower bound on |samples| per
	// coassembly. Default 2.
	MinCoassemblySamples int
	// MaxRecoverySamples is the upper bound on |recover_samples|.
	// Default 20.
	MaxRecoverySamples int
	// MaxCoassemblySize, if non-nil, discards coassemblies whose
	// total_size exceeds it, before selection. Unset (nil) means no
	// limit.
	MaxCoassemblySize *int64
}

// DefaultConfig returns the Config with every option at its spec.md §3
// default.
func DefaultConfig() Config {
	return Config{
		MaxCoassemblySamples: 2,
		MinCoassemblySamples: 2,
		MaxRecoverySamples:   20,
		MaxCoassemblySize:    nil,
	}
}

// Validate checks the invariants of spec.md §3: MinCoassemblySamples <=
// MaxCoassemblySamples, and MaxRecoverySamples >= MaxCoassemblySamples.
// A violation is a programmer error (spec.md §4.7, §7) and is reported
// as an *InvalidConfigError identifying the offending option.
func (c Config) Validate() error {
	if c.MinCoassemblySamples < 1 {
		return &InvalidConfigError{
			Option: "MIN_COASSEMBLY_SAMPLES",
			Reason: "must be >= 1",
		}
	}
	if c.MinCoassemblySamples > c.MaxCoassemblySamples {
		return &InvalidConfigError{
			Option: "MIN_COASSEMBLY_SAMPLES",
			Reason: "must be <= MAX_COASSEMBLY_SAMPLES",
		}
	}
	if c.MaxRecoverySamples < c.MaxCoassemblySamples {
		return &InvalidConfigError{
			Option: "MAX_RECOVERY_SAMPLES",
			Reason: "must be >= MAX_COASSEMBLY_SAMPLES",
		}
	}
	if c.MaxCoassemblySize != nil && *c.MaxCoassemblySize < 0 {
		return &InvalidConfigError{
			Option: "MAX_COASSEMBLY_SIZE",
			Reason: "must be >= 0 when set",
		}
	}
	return nil
}
