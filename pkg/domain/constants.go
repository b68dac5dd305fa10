package domain

// Defaults for a batch run. The sample itself is fixed; only the step budget is tunable.
const (
	// DefaultSeed seeds the sample generator so runs are reproducible.
	DefaultSeed int64 = 1234

	// DefaultSampleCount is the number of integers evaluated by a batch run.
	DefaultSampleCount = 1000

	// DefaultSampleLow is the inclusive lower bound of sampled integers.
	DefaultSampleLow uint64 = 0

	// DefaultSampleHigh is the exclusive upper bound of sampled integers.
	DefaultSampleHigh uint64 = 1000

	// DefaultMaxSteps bounds the number of transitions a single evaluation may take.
	// The longest trajectory below 1000 (871) needs 178.
	DefaultMaxSteps = 100_000
)
