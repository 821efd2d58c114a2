package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Config holds runtime settings for the zkpauth client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the server gRPC endpoint.
//   - VaultPath: SQLite vault holding passphrase-sealed secrets.
//   - RequestTimeout: deadline applied to each RPC.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr string
	VaultPath          string
	RequestTimeout     time.Duration
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.VaultPath = "zkpauth.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config from defaults, then the JSON file named by
// the --config flag (if any), then the flags in fs that were set explicitly.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := parseJson(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := parseFlags(cfg, fs); err != nil {
		return nil, err
	}
	return cfg, nil
}
