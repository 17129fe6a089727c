package weather

import (
	"context"
	"time"

	"weatherapi-mcp/internal/logger"
)

// dayOutcome records the result of one per-day history request.
type dayOutcome struct {
	date string
	body any
	err  error
}

// HistoricalRange returns recorded weather for every day from startDate to
// endDate inclusive, merged into a single response.
//
// The provider only serves one day of history per request, so the range is
// fanned out into one request per day, issued in ascending date order. A
// failed day is skipped rather than aborting the rest; the operation fails
// only when no day at all produced data.
func (s *Service) HistoricalRange(ctx context.Context, query, startDate, endDate string) (map[string]any, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	start, err := parseDate("start_date", startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", endDate)
	if err != nil {
		return nil, err
	}
	if err := s.validateHistoryRange(start, end); err != nil {
		return nil, err
	}

	outcomes := s.gatherHistory(ctx, query, start, end)
	return mergeHistory(outcomes, startDate, endDate)
}

// gatherHistory issues one history request per day and collects every
// outcome, success or failure, in request order.
func (s *Service) gatherHistory(ctx context.Context, query string, start, end time.Time) []dayOutcome {
	var outcomes []dayOutcome
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		body, err := s.fetcher.Fetch(ctx, "history.json", dateParams(query, date))
		if err != nil {
			logger.L().Warn().Str("date", date).Err(err).Msg("skipping failed history day")
		}
		outcomes = append(outcomes, dayOutcome{date: date, body: body, err: err})
	}
	return outcomes
}

// mergeHistory folds the successful outcomes, in request order, into one
// response: location from the first success, forecastday entries concatenated
// across all successes. Bodies without the expected shape are skipped.
func mergeHistory(outcomes []dayOutcome, startDate, endDate string) (map[string]any, error) {
	var location any
	merged := false
	days := make([]any, 0, len(outcomes))
	for _, o := range outcomes {
		if o.err != nil {
			continue
		}
		body, ok := o.body.(map[string]any)
		if !ok {
			continue
		}
		if !merged {
			location = body["location"]
			merged = true
		}
		days = append(days, forecastDays(body)...)
	}
	if !merged {
		return nil, &NoDataError{Start: startDate, End: endDate}
	}
	return map[string]any{
		"location": location,
		"forecast": map[string]any{"forecastday": days},
	}, nil
}

// forecastDays extracts forecast.forecastday from one history response,
// returning nil when the shape is not there.
func forecastDays(body map[string]any) []any {
	forecast, ok := body["forecast"].(map[string]any)
	if !ok {
		return nil
	}
	entries, ok := forecast["forecastday"].([]any)
	if !ok {
		return nil
	}
	return entries
}
