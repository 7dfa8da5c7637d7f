package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avoronov/newshub/internal/flagx"
	"github.com/avoronov/newshub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "24h"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ListenAddr                  string         `json:"listen_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	NewsAPIBaseURL              string         `json:"news_api_base_url"`
	NewsAPIKey                  string         `json:"news_api_key"`
	WeatherAPIBaseURL           string         `json:"weather_api_base_url"`
	WeatherAPIKey               string         `json:"weather_api_key"`
	DefaultCity                 string         `json:"default_city"`
	UserSaveFile                string         `json:"user_save_file"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. Read or unmarshal errors panic,
// since the caller explicitly asked for a config file that cannot be used.
//
// Empty JSON fields leave the corresponding Config values untouched, so the
// file only needs to list the settings it overrides.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
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

	if c.ListenAddr != "" {
		config.ListenAddr = c.ListenAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	}
	if c.NewsAPIBaseURL != "" {
		config.NewsAPIBaseURL = c.NewsAPIBaseURL
	}
	if c.NewsAPIKey != "" {
		config.NewsAPIKey = c.NewsAPIKey
	}
	if c.WeatherAPIBaseURL != "" {
		config.WeatherAPIBaseURL = c.WeatherAPIBaseURL
	}
	if c.WeatherAPIKey != "" {
		config.WeatherAPIKey = c.WeatherAPIKey
	}
	if c.DefaultCity != "" {
		config.DefaultCity = c.DefaultCity
	}
	if c.UserSaveFile != "" {
		config.UserSaveFile = c.UserSaveFile
	}
}
