package config

import "time"

// Config holds runtime settings for the portal client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the portal gRPC endpoint.
//   - RequestTimeout: deadline applied to every RPC and upload.
//   - PageSize: rows requested per explorer page.
//   - TUI: start the full-screen terminal UI instead of the line REPL.
//   - LogBackend / LogLevel / LogFile: see logging.New. Logs go to LogFile
//     so they do not interleave with the interactive UI; empty discards them.
//   - StateFile: SQLite file holding local preferences; empty keeps them in
//     memory only.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	PageSize           int
	TUI                bool
	LogBackend         string
	LogLevel           string
	LogFile            string
	StateFile          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 15 * time.Second
	c.PageSize = 20
	c.TUI = false
	c.LogBackend = "slog"
	c.LogLevel = "info"
	c.LogFile = ""
	c.StateFile = ""
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
