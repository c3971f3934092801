// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/caarlos0/env/v11` for struct-tag parsing and
// `github.com/joho/godotenv` for optional `.env` files. Each configuration
// type (and prefix) is parsed once and cached for the lifetime of the process,
// guarded by a `sync.Once` per key.
//
// # Usage
//
//	type RulesConfig struct {
//	    Path string `env:"RULESET_PATH,required"`
//	}
//
//	var cfg RulesConfig
//	if err := config.Load(&cfg); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// LoadWithPrefix reads the same struct from prefixed variables, LoadEnv reads
// extra `.env` files, and MustLoad panics on failure for configuration that
// is required at startup. ResetCache clears cached values between tests.
package config
