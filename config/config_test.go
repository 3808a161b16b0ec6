package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, "cad", cfg.Currency)
	assert.Equal(t, 100, cfg.MaxRequestsPerMin)
}

func TestAllowedOrigins(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.CORSOrigins = "https://book.example.com, https://admin.example.com,,"
	assert.Equal(t, []string{"https://book.example.com", "https://admin.example.com"}, AllowedOrigins())
}
