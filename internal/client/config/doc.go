// Package config loads runtime configuration for the KOACH CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string     base URL of the KOACH server
//	-t duration   per-request timeout (e.g. 5s)
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so the timeout can be either a string
// like "5s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:4000",
//	  "request_timeout": "10s"
//	}
//
// Invalid files or flags make LoadConfig panic; the CLI cannot do anything
// useful without a configuration.
package config
