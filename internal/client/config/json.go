package config

import (
	"encoding/json"
	"os"

	"github.com/siddharthpandey07/UserManage/internal/flagx"
	"github.com/siddharthpandey07/UserManage/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be written either as strings like "6s" or
// as integer nanoseconds.
type jsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	NotificationTTL    timex.Duration `json:"notification_ttl"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flags. When no file is given the Config is left as is.
// Read or unmarshal failures panic; configuration is resolved once at startup
// and a broken file should stop the program.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFilePath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.NotificationTTL.Duration != 0 {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
}
