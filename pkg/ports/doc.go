/*
Package ports defines the driven ports (interfaces) for the collatz engine.

These interfaces decouple the core logic from external implementations, allowing
the runner and the servers to work with various storage backends.

# Key Interfaces

  - Evaluator: Computes a single trajectory (implemented by collatz.Engine).
  - ResultStore: Persists and loads evaluated trajectories (memory, file, Redis).
*/
package ports
