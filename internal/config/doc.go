// Package config loads, normalizes, and validates gradsift configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and keeps every tunable of the extraction
// and quality models in one place so scoring weights are calibration data
// rather than literals scattered through the code.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
