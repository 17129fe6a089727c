// Command weather-mcp starts the WeatherAPI MCP server over stdio or HTTP.
package main

import (
	"context"
	"net/http"

	"weatherapi-mcp/internal/config"
	"weatherapi-mcp/internal/logger"
	"weatherapi-mcp/internal/server"
)

func main() {
	logger.Init()
	log := logger.L()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.Weather.APIKey == "" {
		log.Warn().Msg("WEATHER_API_KEY not set; every tool call will fail until configured")
	}

	srv := server.New(cfg)

	switch cfg.Server.Transport {
	case "http":
		log.Info().Str("port", cfg.Server.Port).Msg("starting MCP HTTP server")
		if err := http.ListenAndServe(":"+cfg.Server.Port, srv.Router()); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	default:
		log.Info().Msg("starting MCP stdio server")
		if err := srv.Run(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}
}
