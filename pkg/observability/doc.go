/*
Package observability provides tools for monitoring the collatz engine.

It turns evaluator lifecycle hooks into Prometheus metrics (evaluation outcomes,
trajectory lengths and peaks) that the HTTP server exposes on /metrics.
*/
package observability
