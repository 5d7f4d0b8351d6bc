// Package config loads runtime configuration for the GophDrop CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-k string   access token
//	-w int      per-request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "access_token": "eyJ...",
//	  "request_timeout": "10s"
//	}
//
// This package does not read environment variables; use the JSON file or
// flags.
package config
