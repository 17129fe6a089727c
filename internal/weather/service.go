// Package weather implements the weather operations exposed as MCP tools:
// input validation, provider request construction, and the multi-day
// historical aggregation.
package weather

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// Fetcher performs one request against the weather provider and returns the
// decoded JSON body. Implemented by weatherapi.Client in production and by
// stubs in tests.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, params url.Values) (any, error)
}

// Options tunes a Service.
type Options struct {
	// MaxForecastDays bounds the forecast "days" argument (default 14).
	MaxForecastDays int
	// Now supplies the current time for date-range validation. Defaults to
	// time.Now; tests pin it.
	Now func() time.Time
}

// Service dispatches weather operations to the provider. It holds no mutable
// state; every invocation builds its own request and discards it.
type Service struct {
	fetcher         Fetcher
	maxForecastDays int
	now             func() time.Time
}

// NewService constructs a Service over the given Fetcher.
func NewService(f Fetcher, opts Options) *Service {
	if opts.MaxForecastDays == 0 {
		opts.MaxForecastDays = 14
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{fetcher: f, maxForecastDays: opts.MaxForecastDays, now: opts.Now}
}

// MaxForecastDays reports the configured forecast-day bound.
func (s *Service) MaxForecastDays() int { return s.maxForecastDays }

// CurrentWeather returns current conditions for the location, optionally with
// air quality data.
func (s *Service) CurrentWeather(ctx context.Context, query string, includeAirQuality bool) (map[string]any, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("aqi", yesNo(includeAirQuality))
	return s.fetchObject(ctx, "current.json", params)
}

// Forecast returns an N-day forecast for the location.
func (s *Service) Forecast(ctx context.Context, query string, days int, includeAirQuality, includeAlerts bool) (map[string]any, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	if err := s.validateForecastDays(days); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("days", strconv.Itoa(days))
	params.Set("aqi", yesNo(includeAirQuality))
	params.Set("alerts", yesNo(includeAlerts))
	return s.fetchObject(ctx, "forecast.json", params)
}

// History returns recorded weather for the location on a single past date.
func (s *Service) History(ctx context.Context, query, date string) (map[string]any, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	if _, err := parseDate("date", date); err != nil {
		return nil, err
	}
	return s.fetchObject(ctx, "history.json", dateParams(query, date))
}

// AirQuality returns current conditions with air quality always included.
func (s *Service) AirQuality(ctx context.Context, query string) (map[string]any, error) {
	return s.CurrentWeather(ctx, query, true)
}

// Astronomy returns sunrise/sunset/moon data for the location and date.
func (s *Service) Astronomy(ctx context.Context, query, date string) (map[string]any, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	if _, err := parseDate("date", date); err != nil {
		return nil, err
	}
	return s.fetchObject(ctx, "astronomy.json", dateParams(query, date))
}

// SearchLocations looks up locations matching the query. The provider returns
// a bare JSON array, so the result is wrapped under an "items" key.
func (s *Service) SearchLocations(ctx context.Context, query string) (map[string]any, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("q", query)
	body, err := s.fetcher.Fetch(ctx, "search.json", params)
	if err != nil {
		return nil, err
	}
	return map[string]any{"items": body}, nil
}

// Timezone returns time zone information for the location.
func (s *Service) Timezone(ctx context.Context, query string) (map[string]any, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("q", query)
	return s.fetchObject(ctx, "timezone.json", params)
}

// SportEvents returns upcoming sport events near the location.
func (s *Service) SportEvents(ctx context.Context, query string) (map[string]any, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("q", query)
	return s.fetchObject(ctx, "sports.json", params)
}

// Marine returns marine weather for the location. The tide parameter is only
// sent when requested; the provider treats its mere presence as opt-in, so it
// is never sent as "no".
func (s *Service) Marine(ctx context.Context, query string, withTide bool) (map[string]any, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("q", query)
	if withTide {
		params.Set("tide", "yes")
	}
	return s.fetchObject(ctx, "marine.json", params)
}

// FutureWeather returns the forecast for a single date 14-300 days ahead.
func (s *Service) FutureWeather(ctx context.Context, query, date string) (map[string]any, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	d, err := parseDate("date", date)
	if err != nil {
		return nil, err
	}
	if err := s.validateFutureDate(d); err != nil {
		return nil, err
	}
	return s.fetchObject(ctx, "future.json", dateParams(query, date))
}

func (s *Service) fetchObject(ctx context.Context, endpoint string, params url.Values) (map[string]any, error) {
	body, err := s.fetcher.Fetch(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	if m, ok := body.(map[string]any); ok {
		return m, nil
	}
	// Object endpoints always return JSON objects; pass anything else
	// through under a data key rather than dropping it.
	return map[string]any{"data": body}, nil
}

func dateParams(query, date string) url.Values {
	params := url.Values{}
	params.Set("q", query)
	params.Set("dt", date)
	return params
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
