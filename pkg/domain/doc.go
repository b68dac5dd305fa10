/*
Package domain contains the core domain models for the Collatz trajectory engine.

It defines the entities produced and consumed by the evaluator, the runner and the
persistence adapters. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Step: A single Collatz transition (halve or triple) or the terminal entry.
  - Trajectory: The ordered log of steps taken from an input down to 1.
  - Result: The outcome of one batch item (trajectory, indivisible zero, or failure).
  - LifecycleHooks: Observability callbacks fired by the evaluator.
*/
package domain
