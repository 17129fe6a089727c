// Package server wires the weather operations into an MCP server and exposes
// it over stdio or streamable HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"weatherapi-mcp/internal/config"
	"weatherapi-mcp/internal/weather"
	"weatherapi-mcp/internal/weatherapi"
)

const (
	serverName    = "weatherapi-mcp"
	serverVersion = "v1.0.0"
)

// Server holds the MCP server, the weather service behind it, and the chi
// router used in http mode.
type Server struct {
	cfg     config.Config
	weather *weather.Service
	mcp     *mcp.Server
	router  *chi.Mux
}

// New constructs a Server backed by the real WeatherAPI.com client.
func New(cfg config.Config) *Server {
	client := weatherapi.New(cfg.Weather.BaseURL, cfg.Weather.APIKey, &http.Client{
		Timeout: cfg.Weather.HTTPTimeout,
	})
	svc := weather.NewService(client, weather.Options{MaxForecastDays: cfg.Weather.MaxForecastDays})
	return NewWithService(cfg, svc)
}

// NewWithService constructs a Server over an existing weather service. Tests
// use it to substitute a stubbed fetcher.
func NewWithService(cfg config.Config, svc *weather.Service) *Server {
	s := &Server{
		cfg:     cfg,
		weather: svc,
		mcp:     mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil),
	}
	s.registerTools()

	s.router = chi.NewRouter()
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(RequestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/health", s.handleHealth)
	s.router.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil))

	return s
}

// MCP exposes the underlying MCP server.
func (s *Server) MCP() *mcp.Server { return s.mcp }

// Router exposes the root HTTP handler for http mode.
func (s *Server) Router() http.Handler { return s.router }

// Run serves MCP over stdio until the context is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
