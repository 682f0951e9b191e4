package config

// Config holds runtime settings for the gophauth CLI.
//
// Fields:
//   - APIURL: base address of the authentication API.
//   - CallbackURL: address the API redirects to after an OAuth sign-in.
//   - DataDir: directory holding the session database.
//   - LogLevel: one of debug, info, warn, error.
//   - MaxAvatarBytes: size cap for staged profile pictures.
type Config struct {
	APIURL         string `env:"GOPHAUTH_API_URL"`
	CallbackURL    string `env:"GOPHAUTH_CALLBACK_URL"`
	DataDir        string `env:"GOPHAUTH_DATA_DIR"`
	LogLevel       string `env:"GOPHAUTH_LOG_LEVEL"`
	MaxAvatarBytes int64  `env:"GOPHAUTH_MAX_AVATAR_BYTES"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:3000"
	c.CallbackURL = "http://localhost:5173"
	c.DataDir = ".gophauth"
	c.LogLevel = "info"
	c.MaxAvatarBytes = 5 << 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
