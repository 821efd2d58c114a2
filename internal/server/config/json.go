package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
	"github.com/dmitrijs2005/zkpauth/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept strings such
// as "90s" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string          `json:"endpoint_addr_grpc"`
	SecretKey                    string          `json:"secret_key"`
	SessionTokenValidityDuration *timex.Duration `json:"session_token_validity_duration"`
	ChallengeTTL                 *timex.Duration `json:"challenge_ttl"`
	SweepInterval                *timex.Duration `json:"sweep_interval"`
	LogLevel                     string          `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c or -config.
// Fields absent from the file keep their current values. An unreadable or
// malformed file panics.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SessionTokenValidityDuration != nil {
		config.SessionTokenValidityDuration = c.SessionTokenValidityDuration.Duration
	}
	if c.ChallengeTTL != nil {
		config.ChallengeTTL = c.ChallengeTTL.Duration
	}
	if c.SweepInterval != nil {
		config.SweepInterval = c.SweepInterval.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
