/*
Package observability turns the engine's lifecycle hooks into Prometheus
metrics.

Hooks are the engine's only observation surface: they run synchronously on
the decode path and never influence outcomes, so metrics here are counters,
not anything that blocks.
*/
package observability
