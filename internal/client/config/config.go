package config

import "time"

// Config holds runtime settings for the FitLens CLI.
//
// Fields:
//   - BaseURL: root URL of the backend API.
//   - RequestTimeout: bound on each auth request.
//   - DatabaseDSN: path of the local sqlite file holding persisted credentials.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://api.fittlens.com"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "fittlens.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
