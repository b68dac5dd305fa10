/*
Package runner implements the batch loop and result reporting for the collatz engine.

It acts as the bridge between the evaluator and the outside world. The runner feeds
inputs to an Evaluator, consults an optional ResultStore cache, recovers per-input
failures (step budget exhausted, overflow, panics) and hands every result to a
pluggable Reporter.

# Key Components

  - Runner: The orchestrator; Run for batches, Process for a single input.
  - Reporter: Decouples presentation from evaluation.
  - TextReporter: Human-readable lines with independent step/result toggles.
  - JSONReporter: One NDJSON record per input.

# Usage

	eng := collatz.New()
	inputs, _ := sample.New(domain.DefaultSeed).Generate(1000, 0, 1000)

	r := runner.NewRunner(
		runner.WithReporter(runner.NewTextReporter(os.Stdout)),
	)

	summary, err := r.Run(ctx, eng, inputs)
*/
package runner
