package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with GOPHAUTH_* environment variables. A .env file
// in the working directory is loaded first if it exists; variables already
// set in the process environment win over it. Unset variables leave the
// current value alone. Panics on malformed values.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
