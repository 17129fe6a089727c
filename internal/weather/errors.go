package weather

import "fmt"

// InvalidArgumentError reports caller input that failed a validation rule.
// It is always returned before any network call is attempted.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NoDataError means every per-day request of a historical-range query failed,
// so there is nothing to aggregate.
type NoDataError struct {
	Start string
	End   string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no historical weather data found for %s to %s", e.Start, e.End)
}
