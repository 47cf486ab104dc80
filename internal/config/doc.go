// Package config loads, normalizes, and validates scenesync configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and validates every numeric policy before
// any scene is processed. The Config type centralizes each knob the
// pipeline stages need and converts into the per-stage option structs, so
// one value parameterizes the whole run.
//
// Always obtain settings through this package so stage code receives
// sanitized paths, consistent defaults, and clear validation errors.
package config
