// Package tenant owns the active organization's profile, entitlements,
// usage snapshot, and branding. It depends on the session manager for
// identity and request authorization, never the reverse.
package tenant

import (
	"context"
	"sync"

	"github.com/dataroomhq/dataroom-cli/internal/errors"
	"github.com/dataroomhq/dataroom-cli/internal/log"
	"github.com/dataroomhq/dataroom-cli/internal/platform"
	"github.com/dataroomhq/dataroom-cli/internal/session"
	"github.com/dataroomhq/dataroom-cli/internal/theme"
)

// Manager loads and exposes the current tenant's state. Tenant state is
// never persisted across runs; it is always re-fetched from identity.
type Manager struct {
	session *session.Manager
	client  *platform.Client
	theme   *theme.Manager
	logger  *log.Logger

	mu       sync.RWMutex
	tenant   *platform.Tenant
	settings *platform.TenantSettings
	usage    *platform.Usage
	limits   map[string]platform.LimitStatus
}

// NewManager wires a tenant context to the session it derives from
func NewManager(sess *session.Manager, client *platform.Client, th *theme.Manager, logger *log.Logger) *Manager {
	return &Manager{
		session: sess,
		client:  client,
		theme:   th,
		logger:  logger,
	}
}

// Tenant returns the loaded organization profile, or nil
func (m *Manager) Tenant() *platform.Tenant {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tenant
}

// Settings returns the loaded branding document, or nil
func (m *Manager) Settings() *platform.TenantSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Usage returns the last usage snapshot, or nil
func (m *Manager) Usage() *platform.Usage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.usage
}

// Limits returns the last limit snapshot keyed by resource name
func (m *Manager) Limits() map[string]platform.LimitStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.limits
}

// Clear drops all tenant state. Called when the identity loses its
// tenant affiliation.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tenant = nil
	m.settings = nil
	m.usage = nil
	m.limits = nil
}

// LoadTenant fetches the organization for the current identity. When the
// identity has no tenant affiliation (superadmin, logged out) it clears
// state and succeeds. A permission-denied response ends the session: a
// tenant whose access is revoked must not keep a live session.
func (m *Manager) LoadTenant(ctx context.Context) error {
	if !m.session.IsTenantUser() {
		m.Clear()
		return nil
	}

	epoch := m.session.Epoch()

	tenant, err := m.client.CurrentTenant(ctx)
	if err != nil {
		if apiErr, ok := err.(*platform.APIError); ok {
			if apiErr.IsAuthError() {
				m.logger.WithError(apiErr).Warn("tenant access denied, forcing logout")
				m.session.Logout()
				m.Clear()
				return errors.New(errors.ErrCodeTenantAccessDenied, apiErr.Message)
			}
			return errors.New(errors.ErrCodeTenantNotFound, apiErr.Message)
		}
		return errors.NewNetworkError(err)
	}

	// A slow response must not resurrect state cleared by a later
	// logout or identity switch.
	if m.session.Epoch() != epoch {
		m.logger.Debug("discarding stale tenant load", "tenant_slug", tenant.Slug)
		return nil
	}

	m.mu.Lock()
	m.tenant = tenant
	m.usage = &tenant.Usage
	m.limits = tenant.Limits
	m.mu.Unlock()

	m.logger.Debug("tenant loaded", "tenant_slug", tenant.Slug, "tier", tenant.SubscriptionTier)
	return nil
}

// LoadSettings fetches the branding document and applies it to the
// active theme
func (m *Manager) LoadSettings(ctx context.Context) error {
	epoch := m.session.Epoch()

	settings, err := m.client.Settings(ctx)
	if err != nil {
		return m.normalizeError(err)
	}

	if m.session.Epoch() != epoch {
		return nil
	}

	m.mu.Lock()
	m.settings = settings
	m.mu.Unlock()

	m.theme.Apply(settings)
	return nil
}

// UpdateSettings persists the full branding document. The calling UI is
// responsible for the admin check; the manager trusts its caller here.
// Local state always adopts the server's canonical response, not the
// submitted payload.
func (m *Manager) UpdateSettings(ctx context.Context, settings platform.TenantSettings) error {
	epoch := m.session.Epoch()

	saved, err := m.client.UpdateSettings(ctx, settings)
	if err != nil {
		return m.normalizeError(err)
	}

	if m.session.Epoch() != epoch {
		return nil
	}

	m.mu.Lock()
	m.settings = saved
	m.mu.Unlock()

	m.theme.Apply(saved)
	m.logger.Info("tenant settings updated")
	return nil
}

// normalizeError converts request failures into the uniform error shape.
// Authorization expiry forces logout, everything else is retryable.
func (m *Manager) normalizeError(err error) error {
	if apiErr, ok := err.(*platform.APIError); ok {
		if apiErr.IsAuthError() {
			m.session.Logout()
			m.Clear()
			return errors.NewSessionExpiredError()
		}
		return errors.New(errors.ErrCodeTenantSettings, apiErr.Message)
	}
	return errors.NewNetworkError(err)
}
