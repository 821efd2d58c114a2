package config

import (
	"github.com/spf13/pflag"
)

const (
	flagConfig   = "config"
	flagAddr     = "addr"
	flagVault    = "vault"
	flagTimeout  = "timeout"
	flagLogLevel = "log-level"
)

// RegisterFlags adds the client configuration flags to fs. Defaults shown
// in help come from LoadDefaults.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagConfig, "c", "", "path to JSON config file")
	fs.StringP(flagAddr, "a", d.ServerEndpointAddr, "address and port of the server")
	fs.StringP(flagVault, "k", d.VaultPath, "path of the local secret vault")
	fs.DurationP(flagTimeout, "t", d.RequestTimeout, "per-request timeout")
	fs.String(flagLogLevel, d.LogLevel, "log level")
}

// parseFlags copies explicitly set flags into cfg.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error

	if fs.Changed(flagAddr) {
		if cfg.ServerEndpointAddr, err = fs.GetString(flagAddr); err != nil {
			return err
		}
	}
	if fs.Changed(flagVault) {
		if cfg.VaultPath, err = fs.GetString(flagVault); err != nil {
			return err
		}
	}
	if fs.Changed(flagTimeout) {
		if cfg.RequestTimeout, err = fs.GetDuration(flagTimeout); err != nil {
			return err
		}
	}
	if fs.Changed(flagLogLevel) {
		if cfg.LogLevel, err = fs.GetString(flagLogLevel); err != nil {
			return err
		}
	}

	return nil
}
