// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a local .env file. It is built once at startup and treated as
// immutable afterwards; components receive it (or a sub-struct) explicitly
// rather than reading the environment themselves.
type Config struct {
	Server  ServerConfig
	Weather WeatherConfig
}

// ServerConfig holds transport settings for the MCP server.
type ServerConfig struct {
	// Transport selects how the server speaks MCP: "stdio" or "http".
	Transport string
	// Port is the TCP port used in http mode (e.g. "8080").
	Port string
}

// WeatherConfig holds everything needed to talk to WeatherAPI.com.
type WeatherConfig struct {
	// APIKey authenticates requests to the provider. May be empty, in which
	// case every tool call fails with a configuration error.
	APIKey string
	// BaseURL is the provider API root, e.g. "https://api.weatherapi.com/v1".
	BaseURL string
	// MaxForecastDays is the upper bound accepted for the forecast "days"
	// argument. The provider's paid plans allow up to 14.
	MaxForecastDays int
	// HTTPTimeout bounds each outbound provider request.
	HTTPTimeout time.Duration
}

// Load reads configuration with the usual precedence: built-in defaults,
// then a .env file if present, then environment variables.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("MCP_TRANSPORT", "stdio")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("WEATHER_API_BASE_URL", "https://api.weatherapi.com/v1")
	v.SetDefault("WEATHER_MAX_FORECAST_DAYS", 14)
	v.SetDefault("WEATHER_HTTP_TIMEOUT", "15s")

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore error if no .env

	v.AutomaticEnv()

	cfg := Config{
		Server: ServerConfig{
			Transport: v.GetString("MCP_TRANSPORT"),
			Port:      v.GetString("SERVER_PORT"),
		},
		Weather: WeatherConfig{
			APIKey:          v.GetString("WEATHER_API_KEY"),
			BaseURL:         v.GetString("WEATHER_API_BASE_URL"),
			MaxForecastDays: v.GetInt("WEATHER_MAX_FORECAST_DAYS"),
			HTTPTimeout:     v.GetDuration("WEATHER_HTTP_TIMEOUT"),
		},
	}

	if cfg.Server.Transport != "stdio" && cfg.Server.Transport != "http" {
		return Config{}, fmt.Errorf("invalid MCP_TRANSPORT %q: must be stdio or http", cfg.Server.Transport)
	}
	if cfg.Weather.MaxForecastDays < 1 {
		return Config{}, fmt.Errorf("invalid WEATHER_MAX_FORECAST_DAYS %d: must be at least 1", cfg.Weather.MaxForecastDays)
	}
	return cfg, nil
}
