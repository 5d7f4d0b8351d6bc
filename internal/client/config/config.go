package config

import "time"

// Config holds runtime settings for the GophDrop CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - AccessToken: JWT sent with every authenticated call. When empty the
//     CLI prompts for it on commands that need one.
//   - RequestTimeout: deadline applied to each remote call.
type Config struct {
	ServerEndpointAddr string
	AccessToken        string
	RequestTimeout     time.Duration
}

// Flags lists every command-line flag this package consumes, including the
// JSON config selectors. The CLI strips them before parsing subcommands.
var Flags = []string{"-a", "-k", "-w", "-c", "-config"}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.AccessToken = ""
	c.RequestTimeout = 10 * time.Second
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
