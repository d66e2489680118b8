// Package config loads application configuration from environment variables
// into typed structs, with optional .env file support.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file (when present) is loaded once per process, then structs
// annotated with `env` tags are parsed and cached by type so each
// configuration is resolved exactly once for the process lifetime.
//
// # Usage
//
//	type SMTPConfig struct {
//	    Host string `env:"SMTP_HOST,required"`
//	    Port int    `env:"SMTP_PORT" envDefault:"587"`
//	}
//
//	var cfg SMTPConfig
//	if err := config.Load(&cfg); err != nil {
//	    // required variable missing or malformed value
//	}
//
// Use MustLoad for configuration the process cannot start without, and
// ResetCache/Reload in tests that mutate the environment.
package config
