package llmprovider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-arch/pkg/log"
)

// scriptedProvider fails its first failures calls, then answers text.
type scriptedProvider struct {
	name     string
	failures int
	text     string

	mu    sync.Mutex
	calls int
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls <= p.failures {
		return nil, errors.New(p.name + " unavailable")
	}
	return &Response{
		Content: Message{Role: "model", Parts: []Part{{Text: p.text}}},
		Usage:   &Usage{InputTokens: 3, OutputTokens: 5},
	}, nil
}

func (p *scriptedProvider) Name() string  { return p.name }
func (p *scriptedProvider) Model() string { return p.name + "-model" }

func (p *scriptedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// blockingProvider waits for ctx.
type blockingProvider struct{}

func (blockingProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
func (blockingProvider) Name() string  { return "slow" }
func (blockingProvider) Model() string { return "slow-model" }

func newManager(cfg Config, providers ...Provider) *Manager {
	return NewManager(providers, &cfg, log.NewNop())
}

func TestManager_PrimaryAnswers(t *testing.T) {
	primary := &scriptedProvider{name: "gemini", text: "idea"}
	backup := &scriptedProvider{name: "local", text: "unused"}
	m := newManager(Config{FallbackEnabled: true, RetryAttempts: 2}, primary, backup)

	resp, err := m.GenerateContent(context.Background(), NewTextRequest("hi", ""))
	require.NoError(t, err)
	assert.Equal(t, "idea", resp.Text())
	assert.Equal(t, "gemini", resp.ProviderName)
	assert.Equal(t, 1, primary.callCount())
	assert.Equal(t, 0, backup.callCount())
}

func TestManager_RetriesBeforeFallback(t *testing.T) {
	primary := &scriptedProvider{name: "gemini", failures: 1, text: "second try"}
	m := newManager(Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond}, primary)

	resp, err := m.GenerateContent(context.Background(), NewTextRequest("hi", ""))
	require.NoError(t, err)
	assert.Equal(t, "second try", resp.Text())
	assert.Equal(t, 2, primary.callCount())
}

func TestManager_FallsBack(t *testing.T) {
	primary := &scriptedProvider{name: "gemini", failures: 10}
	backup := &scriptedProvider{name: "local", text: "from backup"}
	m := newManager(Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}, primary, backup)

	resp, err := m.GenerateContent(context.Background(), NewTextRequest("hi", ""))
	require.NoError(t, err)
	assert.Equal(t, "from backup", resp.Text())
	assert.Equal(t, "local", resp.ProviderName)
	assert.Equal(t, 2, primary.callCount())
}

func TestManager_NoFallbackWhenDisabled(t *testing.T) {
	primary := &scriptedProvider{name: "gemini", failures: 10}
	backup := &scriptedProvider{name: "local", text: "never"}
	m := newManager(Config{RetryAttempts: 1}, primary, backup)

	_, err := m.GenerateContent(context.Background(), NewTextRequest("hi", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllProvidersFailed)
	assert.Equal(t, 0, backup.callCount())
}

func TestManager_AllFail(t *testing.T) {
	m := newManager(Config{FallbackEnabled: true},
		&scriptedProvider{name: "gemini", failures: 10},
		&scriptedProvider{name: "local", failures: 10},
	)

	_, err := m.GenerateContent(context.Background(), NewTextRequest("hi", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllProvidersFailed)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), "gemini unavailable")
	assert.Contains(t, err.Error(), "local unavailable")
}

func TestManager_TotalTimeout(t *testing.T) {
	backup := &scriptedProvider{name: "local", text: "late"}
	m := newManager(Config{FallbackEnabled: true, MaxTotalTimeout: 20 * time.Millisecond}, blockingProvider{}, backup)

	_, err := m.GenerateContent(context.Background(), NewTextRequest("hi", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, backup.callCount())
}

func TestManager_NotConfigured(t *testing.T) {
	var nilManager *Manager
	assert.False(t, nilManager.Configured())
	assert.Nil(t, nilManager.Names())

	m := newManager(Config{})
	assert.False(t, m.Configured())

	_, err := m.GenerateContent(context.Background(), NewTextRequest("hi", ""))
	assert.ErrorIs(t, err, ErrNoProvidersConfigured)
}

func TestManager_Names(t *testing.T) {
	m := newManager(Config{}, &scriptedProvider{name: "gemini"}, &scriptedProvider{name: "custom"})
	assert.Equal(t, []string{"gemini", "custom"}, m.Names())
}
