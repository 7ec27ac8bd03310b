// Package config holds the runtime configuration for sonarpdf.
//
// The three values the tool cannot run without (server URL, auth token,
// project key) come exclusively from environment variables and have no
// defaults. Everything else (output path, report format, metric keys,
// timeouts) has a sensible default, may be set in an optional YAML options
// file, and may be overridden by CLI flags.
package config
