// Package telemetry groups the observability helpers shared by the
// packet path.
//
// # Components
//
//   - metrics: Prometheus collector naming and registration for filters
//   - logging: occurrence sampling for high-frequency packet-path warnings
//
// Filters own their collectors and loggers; this tree only standardizes
// how they are named, registered, and rate-limited. Exposing the
// metrics over HTTP and initializing the process logger are left to the
// embedding proxy.
package telemetry
