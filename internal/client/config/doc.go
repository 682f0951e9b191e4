// Package config loads runtime configuration for the gophauth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base address of the authentication API
//	-b string   OAuth callback address
//	-d string   data directory
//	-l string   log level
//
// Environment
//
//	GOPHAUTH_API_URL, GOPHAUTH_CALLBACK_URL, GOPHAUTH_DATA_DIR,
//	GOPHAUTH_LOG_LEVEL, GOPHAUTH_MAX_AVATAR_BYTES
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:3000",
//	  "callback_url": "http://localhost:5173",
//	  "data_dir": ".gophauth",
//	  "log_level": "info",
//	  "max_avatar_bytes": 5242880
//	}
package config
