package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.ListenAddr, ":8080")
	assert.Equal(t, c.DatabaseDSN, "sqlite:newshub.db")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.AccessTokenValidityDuration, 24*time.Hour)
	assert.Equal(t, c.NewsAPIBaseURL, "https://newsdata.io/api/1/news")
	assert.Equal(t, c.WeatherAPIBaseURL, "https://api.openweathermap.org/data/2.5/weather")
	assert.Equal(t, c.DefaultCity, "Vijayawada")
	assert.Equal(t, c.UserSaveFile, "data/userLoginData.json")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"newshub"}
	defer func() { os.Args = oldArgs }()

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, c.ListenAddr, ":8080")
	assert.Equal(t, c.DatabaseDSN, "sqlite:newshub.db")
}

func TestParseFlags_OverridesDefaults(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"newshub", "-a", ":9090", "-d", "sqlite:other.db", "-t", "30"}
	defer func() { os.Args = oldArgs }()

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, c.ListenAddr, ":9090")
	assert.Equal(t, c.DatabaseDSN, "sqlite:other.db")
	assert.Equal(t, c.AccessTokenValidityDuration, 30*time.Minute)
}

func TestParseJson_OverlaysOnlyProvidedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	body := `{"listen_addr": ":7070", "access_token_validity_duration": "90m"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o660))

	oldArgs := os.Args
	os.Args = []string{"newshub", "-c", path}
	defer func() { os.Args = oldArgs }()

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.ListenAddr, ":7070")
	assert.Equal(t, c.AccessTokenValidityDuration, 90*time.Minute)
	// untouched fields keep the defaults
	assert.Equal(t, c.DatabaseDSN, "sqlite:newshub.db")
	assert.Equal(t, c.DefaultCity, "Vijayawada")
}
