// Package config loads runtime configuration for the FitLens CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-d string   path to the local credentials database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://api.fittlens.com",
//	  "request_timeout": "15s",
//	  "database_dsn": "fittlens.db"
//	}
//
// Note: this package does not read environment variables; use the JSON file
// or flags to configure values.
package config
