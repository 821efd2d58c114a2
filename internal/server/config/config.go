// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the authentication server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use
//     the default outside development.
//   - SessionTokenValidityDuration: lifetime of issued session tokens.
//   - ChallengeTTL: how long an issued challenge may be answered; zero
//     disables expiry.
//   - SweepInterval: how often expired challenges are purged; zero disables
//     the sweeper.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC             string
	SecretKey                    string
	SessionTokenValidityDuration time.Duration
	ChallengeTTL                 time.Duration
	SweepInterval                time.Duration
	LogLevel                     string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = "secretKey"
	c.SessionTokenValidityDuration = 15 * time.Minute
	c.ChallengeTTL = 1 * time.Minute
	c.SweepInterval = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
