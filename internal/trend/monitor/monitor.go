// Package monitor runs periodic silent trend scans and alerts the configured
// chat about the top trend.
package monitor

import (
	"context"
	"sync"
	"time"

	"social-arch/internal/settings"
	"social-arch/internal/trend"
	pkgLog "social-arch/pkg/log"
	"social-arch/pkg/telegram"
)

// Monitor scans on a fixed interval while auto monitoring is enabled in settings.
type Monitor struct {
	l        pkgLog.Logger
	settings settings.UseCase
	trends   trend.UseCase
	bots     *telegram.Clients
	interval time.Duration

	mu sync.Mutex
}

func New(l pkgLog.Logger, settingsUC settings.UseCase, trends trend.UseCase, bots *telegram.Clients, interval time.Duration) *Monitor {
	return &Monitor{
		l:        l,
		settings: settingsUC,
		trends:   trends,
		bots:     bots,
		interval: interval,
	}
}

// Run ticks until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.l.Infof(ctx, "trend.monitor.Run: started, interval %s", m.interval)
	for {
		select {
		case <-ctx.Done():
			m.l.Infof(ctx, "trend.monitor.Run: stopped")
			return
		case <-ticker.C:
			m.Tick(ctx)
		}
	}
}

// Tick runs one monitoring pass. It reports false when another pass is in flight.
func (m *Monitor) Tick(ctx context.Context) (ran bool) {
	if !m.mu.TryLock() {
		m.l.Debugf(ctx, "trend.monitor.Tick: previous pass still running, skipped")
		return false
	}
	defer m.mu.Unlock()
	ran = true

	defer func() {
		if r := recover(); r != nil {
			m.l.Errorf(ctx, "trend.monitor.Tick: panic recovered: %v", r)
		}
	}()

	s, err := m.settings.Get(ctx)
	if err != nil {
		m.l.Errorf(ctx, "trend.monitor.Tick: settings: %v", err)
		return true
	}
	if !s.AutoMonitor {
		return true
	}

	snap, err := m.trends.Scan(ctx, s.TrendCategory)
	if err != nil {
		m.l.Warnf(ctx, "trend.monitor.Tick: scan: %v", err)
		return true
	}
	if len(snap.Items) == 0 {
		return true
	}
	if s.TelegramBotToken == "" || s.TelegramChatID == "" {
		m.l.Debugf(ctx, "trend.monitor.Tick: no telegram chat configured, alert not sent")
		return true
	}

	if err := m.bots.For(s.TelegramBotToken).SendMarkdown(ctx, s.TelegramChatID, RenderAlert(snap.Items[0])); err != nil {
		m.l.Warnf(ctx, "trend.monitor.Tick: send alert: %v", err)
	}
	return true
}
