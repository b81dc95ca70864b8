// Package config loads CLI configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: an
// optional .env file is read first, then the environment is parsed into a Go
// struct based on `env` field tags. Only the command-line layer uses this
// package; the validation core consumes no environment variables.
//
// # Usage
//
//	type Config struct {
//	    LogLevel  string `env:"NUP_LOG_LEVEL" envDefault:"warn"`
//	    LogFormat string `env:"NUP_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics on failure for configuration the process cannot start
// without.
package config
