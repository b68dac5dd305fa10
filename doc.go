/*
Package collatz computes Collatz trajectories: halve if even, triple-plus-one if odd, stop at 1.

The module is laid out as a small hexagonal system. The core evaluator is pure and
iterative, bounded by an explicit step budget instead of recursion depth. The host
(CLI, HTTP server or MCP server) drives it through the runner, which feeds inputs,
recovers per-input failures and hands results to a pluggable reporter.

# Key Features

  - Deterministic Samples: batch inputs come from a fixed-seed generator.
  - Bounded Evaluation: runaway trajectories fail with domain.ErrDepthExceeded.
  - Pluggable Reporting: text (human) or NDJSON output, with independent step/result toggles.
  - Result Caching: optional memory, file or Redis stores.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/collatz"
	)

	func main() {
		eng := collatz.New(collatz.WithMaxSteps(1000))

		traj, err := eng.Evaluate(context.Background(), 27)
		if err != nil {
			log.Fatal(err)
		}

		for _, line := range traj.Log() {
			fmt.Println(line)
		}
	}
*/
package collatz
