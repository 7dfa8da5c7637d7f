// Package config handles configuration for the NewsHub service,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the NewsHub server.
//
// Fields:
//   - ListenAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: storage DSN; "sqlite:<path>" or "postgres://...".
//   - SecretKey: HMAC secret for signing access tokens (HS256). Do not use
//     test defaults in prod.
//   - AccessTokenValidityDuration: access token lifetime.
//   - NewsAPIBaseURL / NewsAPIKey: newsdata-compatible feed provider.
//   - WeatherAPIBaseURL / WeatherAPIKey / DefaultCity: weather provider.
//   - UserSaveFile: path of the JSON file behind the legacy save-user endpoint.
type Config struct {
	ListenAddr                  string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	NewsAPIBaseURL              string
	NewsAPIKey                  string
	WeatherAPIBaseURL           string
	WeatherAPIKey               string
	DefaultCity                 string
	UserSaveFile                string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.DatabaseDSN = "sqlite:newshub.db"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 24 * time.Hour
	c.NewsAPIBaseURL = "https://newsdata.io/api/1/news"
	c.NewsAPIKey = ""
	c.WeatherAPIBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	c.WeatherAPIKey = ""
	c.DefaultCity = "Vijayawada"
	c.UserSaveFile = "data/userLoginData.json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
