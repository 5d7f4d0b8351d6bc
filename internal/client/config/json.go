package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophdrop/internal/flagx"
	"github.com/dmitrijs2005/gophdrop/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	AccessToken        string         `json:"access_token"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Keys missing from the file keep their current value. Read or
// unmarshal errors panic.
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
	if jc.AccessToken != "" {
		cfg.AccessToken = jc.AccessToken
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
