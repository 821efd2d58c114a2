package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string          `json:"server_endpoint_addr"`
	VaultPath          string          `json:"vault_path"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	LogLevel           string          `json:"log_level"`
}

// parseJson overlays cfg with the values present in the JSON file at path.
func parseJson(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.VaultPath != "" {
		cfg.VaultPath = jc.VaultPath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}

	return nil
}
