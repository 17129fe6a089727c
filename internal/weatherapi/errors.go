package weatherapi

import (
	"errors"
	"fmt"
)

// ErrAPIKeyMissing means no provider API key was configured. It is returned
// before any request is attempted.
var ErrAPIKeyMissing = errors.New("weather api key not set")

// ProviderError is a non-success response from WeatherAPI.com. Message carries
// the provider's own explanation when the error body could be parsed, else the
// raw response text.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("weatherapi error (status %d): %s", e.StatusCode, e.Message)
}

// TransportError is a network-level failure reaching the provider (DNS,
// connection, TLS, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
