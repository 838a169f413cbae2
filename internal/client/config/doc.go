// Package config loads runtime configuration for the diarykeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config; JSON, or YAML when
//     the name ends in .yaml/.yml.
//  3. Environment variables prefixed DIARY_, with a .env file loaded first.
//  4. Command-line flags, which override everything else.
//
// # File schema
//
// Durations are strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "database_path": "/var/lib/diarykeeper/client.db",
//	  "geocoder_key": "...",
//	  "latitude": 30.27,
//	  "longitude": 120.15,
//	  "legacy_silent_failure": false
//	}
//
// Environment variables mirror the file keys in upper case:
// DIARY_SERVER_ADDR, DIARY_DATABASE_PATH, DIARY_GEOCODER_KEY and so on.
package config
