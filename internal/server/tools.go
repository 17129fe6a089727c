package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type locationInput struct {
	Query string `json:"query" jsonschema:"location as city name, lat/lon coordinates, postcode, or IP address"`
}

type forecastInput struct {
	Query             string `json:"query" jsonschema:"location as city name, lat/lon coordinates, postcode, or IP address"`
	Days              int    `json:"days,omitempty" jsonschema:"number of forecast days, starting at 1 (default 1)"`
	IncludeAirQuality bool   `json:"include_air_quality,omitempty" jsonschema:"include air quality data"`
	IncludeAlerts     bool   `json:"include_alerts,omitempty" jsonschema:"include weather alerts"`
}

type dateInput struct {
	Query string `json:"query" jsonschema:"location as city name, lat/lon coordinates, postcode, or IP address"`
	Date  string `json:"date" jsonschema:"date in YYYY-MM-DD format"`
}

type historicalRangeInput struct {
	Query     string `json:"query" jsonschema:"location as city name, lat/lon coordinates, postcode, or IP address"`
	StartDate string `json:"start_date" jsonschema:"first day of the range, YYYY-MM-DD, at most 365 days in the past"`
	EndDate   string `json:"end_date" jsonschema:"last day of the range, YYYY-MM-DD, before today"`
}

type marineInput struct {
	Query    string `json:"query" jsonschema:"location as city name, lat/lon coordinates, postcode, or IP address"`
	WithTide bool   `json:"with_tide,omitempty" jsonschema:"include tide data"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_weather",
		Description: fmt.Sprintf("Get current weather and a forecast of up to %d days for a location", s.weather.MaxForecastDays()),
	}, s.getWeather)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_weather_history",
		Description: "Get recorded weather for a location on a past date",
	}, s.getWeatherHistory)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_weather_airquality",
		Description: "Get current weather with air quality data for a location",
	}, s.getWeatherAirQuality)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_astronomy_data",
		Description: "Get sunrise, sunset, and moon data for a location on a date",
	}, s.getAstronomyData)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_locations",
		Description: "Search for locations matching a name, postcode, or coordinates",
	}, s.searchLocations)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_timezone",
		Description: "Get time zone information for a location",
	}, s.getTimezone)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_sport_events",
		Description: "Get upcoming sport events near a location",
	}, s.getSportEvents)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_historical_weather",
		Description: "Get recorded weather for a location over a range of past dates",
	}, s.getHistoricalWeather)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_future_weather",
		Description: "Get the forecast for a location on a date 14 to 300 days ahead",
	}, s.getFutureWeather)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_marine_weather",
		Description: "Get marine weather for a coastal location, optionally with tide data",
	}, s.getMarineWeather)
}

func (s *Server) getWeather(ctx context.Context, _ *mcp.CallToolRequest, in forecastInput) (*mcp.CallToolResult, map[string]any, error) {
	days := in.Days
	if days == 0 {
		days = 1
	}
	data, err := s.weather.Forecast(ctx, in.Query, days, in.IncludeAirQuality, in.IncludeAlerts)
	return nil, data, err
}

func (s *Server) getWeatherHistory(ctx context.Context, _ *mcp.CallToolRequest, in dateInput) (*mcp.CallToolResult, map[string]any, error) {
	data, err := s.weather.History(ctx, in.Query, in.Date)
	return nil, data, err
}

func (s *Server) getWeatherAirQuality(ctx context.Context, _ *mcp.CallToolRequest, in locationInput) (*mcp.CallToolResult, map[string]any, error) {
	data, err := s.weather.AirQuality(ctx, in.Query)
	return nil, data, err
}

func (s *Server) getAstronomyData(ctx context.Context, _ *mcp.CallToolRequest, in dateInput) (*mcp.CallToolResult, map[string]any, error) {
	data, err := s.weather.Astronomy(ctx, in.Query, in.Date)
	return nil, data, err
}

func (s *Server) searchLocations(ctx context.Context, _ *mcp.CallToolRequest, in locationInput) (*mcp.CallToolResult, map[string]any, error) {
	data, err := s.weather.SearchLocations(ctx, in.Query)
	return nil, data, err
}

func (s *Server) getTimezone(ctx context.Context, _ *mcp.CallToolRequest, in locationInput) (*mcp.CallToolResult, map[string]any, error) {
	data, err := s.weather.Timezone(ctx, in.Query)
	return nil, data, err
}

func (s *Server) getSportEvents(ctx context.Context, _ *mcp.CallToolRequest, in locationInput) (*mcp.CallToolResult, map[string]any, error) {
	data, err := s.weather.SportEvents(ctx, in.Query)
	return nil, data, err
}

func (s *Server) getHistoricalWeather(ctx context.Context, _ *mcp.CallToolRequest, in historicalRangeInput) (*mcp.CallToolResult, map[string]any, error) {
	data, err := s.weather.HistoricalRange(ctx, in.Query, in.StartDate, in.EndDate)
	return nil, data, err
}

func (s *Server) getFutureWeather(ctx context.Context, _ *mcp.CallToolRequest, in dateInput) (*mcp.CallToolResult, map[string]any, error) {
	data, err := s.weather.FutureWeather(ctx, in.Query, in.Date)
	return nil, data, err
}

func (s *Server) getMarineWeather(ctx context.Context, _ *mcp.CallToolRequest, in marineInput) (*mcp.CallToolResult, map[string]any, error) {
	data, err := s.weather.Marine(ctx, in.Query, in.WithTide)
	return nil, data, err
}
