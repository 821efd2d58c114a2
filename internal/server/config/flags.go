package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-s string   session token HMAC secret
//	-t int      session token validity, minutes
//	-e int      challenge TTL, seconds
//	-w int      expired challenge sweep interval, seconds
//	-l string   log level
//
// Unknown arguments are filtered out first so that the JSON config flags
// do not collide with these. Parse errors panic.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-e", "-w", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "session token secret key")
	tokenValidity := fs.Int("t", int(config.SessionTokenValidityDuration.Minutes()), "session token validity (in minutes)")
	challengeTTL := fs.Int("e", int(config.ChallengeTTL.Seconds()), "challenge TTL (in seconds)")
	sweepInterval := fs.Int("w", int(config.SweepInterval.Seconds()), "expired challenge sweep interval (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Durations from JSON may be finer than the flag units, so only
	// explicitly set flags overwrite them.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.SessionTokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
		case "e":
			config.ChallengeTTL = time.Duration(*challengeTTL) * time.Second
		case "w":
			config.SweepInterval = time.Duration(*sweepInterval) * time.Second
		}
	})
}
