package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed is returned when no provider in the chain produced a response.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled.
	ErrNoProvidersConfigured = errors.New("no providers configured")
)

// ProviderError ties a failure to the provider that produced it.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s (%d attempt(s)): %v", e.Provider, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
