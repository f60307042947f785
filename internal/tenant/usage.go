package tenant

import (
	"context"
	"time"

	"github.com/dataroomhq/dataroom-cli/internal/errors"
	"github.com/dataroomhq/dataroom-cli/internal/session"
)

// UsageRefreshInterval is how often an active admin session re-fetches
// usage counters
const UsageRefreshInterval = 5 * time.Minute

// RefreshUsage fetches current usage counters and limits. Restricted to
// tenant admins; the check happens before any network call.
func (m *Manager) RefreshUsage(ctx context.Context) error {
	if !m.session.IsAdmin() {
		return errors.NewPermissionError(session.CapViewAnalytics)
	}

	epoch := m.session.Epoch()

	usage, err := m.client.TenantUsage(ctx)
	if err != nil {
		return m.normalizeError(err)
	}

	if m.session.Epoch() != epoch {
		return nil
	}

	m.mu.Lock()
	m.usage = &usage.Usage
	m.limits = usage.Limits
	m.mu.Unlock()

	return nil
}

// StartUsageRefresher polls usage on a fixed interval while an admin
// session is active. The returned stop function tears the poller down;
// it also stops on its own when the context ends or the identity is no
// longer an admin, so a logout cannot leak repeated calls.
func (m *Manager) StartUsageRefresher(ctx context.Context, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = UsageRefreshInterval
	}

	ctx, cancel := context.WithCancel(ctx)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !m.session.IsAdmin() {
					m.logger.Debug("usage refresher stopping, identity is no longer admin")
					return
				}
				if err := m.RefreshUsage(ctx); err != nil {
					m.logger.WithError(err).Warn("usage refresh failed")
				}
			}
		}
	}()

	return cancel
}
