// Package config loads pushgen configuration with Viper.
//
// LoadConfig looks for cmd/<service>/config.yml (and a few fallbacks), then
// a matching .env file loaded through godotenv, and finally binds environment
// variables onto nested keys:
//
//	var cfg Config
//	err := config.LoadConfig("pushgen", &cfg, config.WithEnvPrefix("PUSHGEN"))
//
// With the PUSHGEN prefix, PUSHGEN_WORKLOAD_SIZE=500 overrides workload.size.
// ServiceConfig carries the shared name, environment, logging and
// observability sections.
package config
