// Package event provides building blocks for single worker multi threaded
// applications: actions, event queues, planners and schedulers, along with a
// scheduler-aware condition primitive (Cond). Some applications are multi
// threaded by design, but having a sequential execution brings many benefits
// such as deterministic testing, easier debugging, sequential tracing, and
// sometimes even increased performance.
package event
