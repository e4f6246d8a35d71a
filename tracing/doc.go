// Package tracing wraps OpenTelemetry so the shell can record one span per
// dispatched command. Tracing stays disabled unless Init receives a
// destination.
package tracing
