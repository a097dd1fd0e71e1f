// Package config loads runtime configuration for the portal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the portal gRPC endpoint
//	-t int      request timeout (seconds)
//	-n int      explorer page size
//	-tui        start the terminal UI
//	-l string   log backend (slog|zap)
//	-v string   log level
//	-o string   log file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "15s",
//	  "page_size": 20,
//	  "tui": true
//	}
package config
