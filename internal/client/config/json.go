package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/oluccaa/qualidade-sub001/internal/flagx"
	"github.com/oluccaa/qualidade-sub001/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields keep the values already in Config.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	PageSize           int            `json:"page_size"`
	TUI                *bool          `json:"tui"`
	LogBackend         string         `json:"log_backend"`
	LogLevel           string         `json:"log_level"`
	LogFile            string         `json:"log_file"`
	StateFile          string         `json:"state_file"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.IsSet() {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.TUI != nil {
		cfg.TUI = *jc.TUI
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.StateFile != "" {
		cfg.StateFile = jc.StateFile
	}
}
