package config

import (
	"flag"
	"os"
	"time"

	"github.com/avoronov/newshub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   storage DSN ("sqlite:<path>" or "postgres://...")
//	-s string   access token HMAC secret key
//	-t int      access token validity, minutes
//	-n string   news provider API key
//	-w string   weather provider API key
//	-f string   path of the legacy save-user JSON file
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config flags handled by
// the JSON overlay.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-n", "-w", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")

	fs.StringVar(&config.NewsAPIKey, "n", config.NewsAPIKey, "news provider API key")
	fs.StringVar(&config.WeatherAPIKey, "w", config.WeatherAPIKey, "weather provider API key")
	fs.StringVar(&config.UserSaveFile, "f", config.UserSaveFile, "legacy save-user JSON file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
