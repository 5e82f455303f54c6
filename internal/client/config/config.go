// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the practice client.
type Config struct {
	ServerEndpointAddr string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8080"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
