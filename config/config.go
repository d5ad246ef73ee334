package config

import "github.com/joeshaw/envdecode"

// Config is the server's environment-derived configuration.
type Config struct {
	Addr string `env:"SCHEISSKOPF_ADDR,default=:8000"`
	Env  string `env:"SCHEISSKOPF_ENV,default=development"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Production() bool {
	return c.Env == "production"
}
