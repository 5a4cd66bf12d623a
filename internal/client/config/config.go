package config

import "time"

// Config holds runtime settings for the UserManage client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the record service, e.g. "http://127.0.0.1:8080".
//   - NotificationTTL: how long an operation-outcome notification stays visible.
type Config struct {
	ServerEndpointAddr string
	NotificationTTL    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.NotificationTTL = 6 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file was given) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
