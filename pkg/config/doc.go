// Package config loads xf settings from layered sources: embedded
// defaults, then a user file (the --config path or xf/config.toml or
// xf/config.yaml in the XDG config directories), then XF_* environment
// variables, then command-line overrides.
//
// Environment variables use a double underscore between sections:
// XF_LISTING__HIDDEN_POSITION sets listing.hidden_position.
package config
