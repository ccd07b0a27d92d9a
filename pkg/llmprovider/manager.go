package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-arch/pkg/log"
)

// Manager walks an ordered provider chain with per-provider retries.
// It is safe for concurrent use; the chain is fixed at construction.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config tunes the chain.
type Config struct {
	// FallbackEnabled moves on to the next provider after one is exhausted.
	FallbackEnabled bool
	// RetryAttempts per provider; values below 1 mean a single attempt.
	RetryAttempts int
	// RetryDelay grows linearly with the attempt number.
	RetryDelay time.Duration
	// MaxTotalTimeout bounds the whole chain. Zero means only ctx bounds it.
	MaxTotalTimeout time.Duration
}

// NewManager creates a Manager. providers are tried in the given order.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Configured reports whether at least one provider is available.
func (m *Manager) Configured() bool {
	return m != nil && len(m.providers) > 0
}

// Names lists the chain in order.
func (m *Manager) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.providers))
	for _, p := range m.providers {
		names = append(names, p.Name())
	}
	return names
}

// GenerateContent returns the first successful response of the chain.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if !m.Configured() {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var errs []error
	for i, p := range m.providers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("chain stopped before %s: %w", p.Name(), err))
			break
		}

		resp, err := m.try(ctx, p, req)
		if err == nil {
			if resp.ProviderName == "" {
				resp.ProviderName = p.Name()
			}
			m.logSuccess(ctx, p, resp)
			return resp, nil
		}

		m.logger.Warnf(ctx, "llmprovider.Manager: %s/%s failed: %v", p.Name(), p.Model(), err)
		errs = append(errs, err)

		if !m.config.FallbackEnabled {
			break
		}
		if i < len(m.providers)-1 {
			m.logger.Infof(ctx, "llmprovider.Manager: falling back to %s", m.providers[i+1].Name())
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(errs...))
}

// try runs one provider up to RetryAttempts times.
func (m *Manager) try(ctx context.Context, p Provider, req *Request) (*Response, error) {
	attempts := max(m.config.RetryAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			timer := time.NewTimer(time.Duration(attempt-1) * m.config.RetryDelay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, &ProviderError{Provider: p.Name(), Attempts: attempt - 1, Err: ctx.Err()}
			}
		}

		resp, err := p.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// Another attempt cannot help a cancelled caller.
		if ctx.Err() != nil {
			return nil, &ProviderError{Provider: p.Name(), Attempts: attempt, Err: err}
		}
	}
	return nil, &ProviderError{Provider: p.Name(), Attempts: attempts, Err: lastErr}
}

func (m *Manager) logSuccess(ctx context.Context, p Provider, resp *Response) {
	if resp.Usage == nil {
		m.logger.Infof(ctx, "llmprovider.Manager: %s/%s ok", p.Name(), p.Model())
		return
	}
	m.logger.Infof(ctx, "llmprovider.Manager: %s/%s ok, tokens in=%d out=%d",
		p.Name(), p.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
}
