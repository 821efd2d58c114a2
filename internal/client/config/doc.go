// Package config loads runtime configuration for the zkpauth client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c/--config.
//  3. Command-line flags registered by RegisterFlags, which override
//     earlier values only when set explicitly.
//
// Supported flags
//
//	-a, --addr string        address:port of the server gRPC endpoint
//	-k, --vault string       local SQLite vault of sealed secrets
//	-t, --timeout duration   per-request timeout
//	    --log-level string   client log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "5s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "vault_path": "zkpauth.db",
//	  "request_timeout": "5s",
//	  "log_level": "warn"
//	}
package config
