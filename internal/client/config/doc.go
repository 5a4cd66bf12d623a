// Package config loads runtime configuration for the UserManage client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the record service
//	-n int      notification visibility (seconds)
//
// # JSON schema
//
// Durations accept either strings like "6s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8080",
//	  "notification_ttl": "6s"
//	}
package config
