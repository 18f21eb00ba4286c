// Package config loads, normalizes, and validates relparse configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, and applies RELPARSE_* environment overrides. Commands
// obtain parser bounds, index location, scan settings, and the HTTP bind
// address through the Config type so every entry point sees the same
// sanitized values.
package config
