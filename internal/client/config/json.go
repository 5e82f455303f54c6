package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/memorizer/internal/flagx"
)

// JsonConfig is the JSON DTO for the client configuration file.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flags, if present.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
}
