package weather

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Bounds for how far ahead the provider's future endpoint can look.
const (
	futureMinDaysAhead = 14
	futureMaxDaysAhead = 300
)

// historyMaxAgeDays is how far back the history endpoint reaches.
const historyMaxAgeDays = 365

func validateQuery(query string) error {
	if query == "" {
		return &InvalidArgumentError{Field: "query", Reason: "a location is required"}
	}
	return nil
}

// parseDate accepts only zero-padded YYYY-MM-DD strings naming a real
// calendar date ("2024-02-30" is rejected, "2024-02-29" is not).
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &InvalidArgumentError{
			Field:  field,
			Reason: fmt.Sprintf("%q is not a valid YYYY-MM-DD date", value),
		}
	}
	return t, nil
}

func (s *Service) validateForecastDays(days int) error {
	if days < 1 || days > s.maxForecastDays {
		return &InvalidArgumentError{
			Field:  "days",
			Reason: fmt.Sprintf("must be between 1 and %d", s.maxForecastDays),
		}
	}
	return nil
}

// validateHistoryRange checks the parsed bounds of a historical-range query
// against each other and against the current date.
func (s *Service) validateHistoryRange(start, end time.Time) error {
	today := dateOnly(s.now())
	if start.After(end) {
		return &InvalidArgumentError{Field: "start_date", Reason: "must not be after end_date"}
	}
	if start.Before(today.AddDate(0, 0, -historyMaxAgeDays)) {
		return &InvalidArgumentError{
			Field:  "start_date",
			Reason: fmt.Sprintf("must be within the last %d days", historyMaxAgeDays),
		}
	}
	if !end.Before(today) {
		return &InvalidArgumentError{Field: "end_date", Reason: "must be before today"}
	}
	return nil
}

// validateFutureDate checks that the target date is far enough ahead for the
// future endpoint but not beyond its horizon. Both bounds are inclusive.
func (s *Service) validateFutureDate(date time.Time) error {
	today := dateOnly(s.now())
	ahead := int(date.Sub(today).Hours() / 24)
	if ahead < futureMinDaysAhead || ahead > futureMaxDaysAhead {
		return &InvalidArgumentError{
			Field: "date",
			Reason: fmt.Sprintf("must be between %d and %d days from today",
				futureMinDaysAhead, futureMaxDaysAhead),
		}
	}
	return nil
}

// dateOnly truncates a timestamp to midnight UTC so date arithmetic works at
// calendar-day granularity.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
