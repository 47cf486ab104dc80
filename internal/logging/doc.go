// Package logging assembles the structured slog loggers used across
// scenesync.
//
// It owns the console/JSON handler selection, centralizes level and output
// plumbing, and exposes attribute helpers so pipeline stages tag log lines
// with consistent field names. A no-op logger is provided for tests and
// wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
