// Package session owns the authenticated identity, the bearer token, and
// every authorization derivation the rest of the CLI depends on.
package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/dataroomhq/dataroom-cli/internal/errors"
	"github.com/dataroomhq/dataroom-cli/internal/log"
	"github.com/dataroomhq/dataroom-cli/internal/platform"
	"github.com/dataroomhq/dataroom-cli/internal/store"
	"github.com/dataroomhq/dataroom-cli/internal/theme"
)

// Manager authenticates a principal and holds the resulting credential
// and identity. It is the leaf state container: the tenant context
// depends on it, never the reverse.
type Manager struct {
	client *platform.Client
	creds  *store.CredentialStore
	theme  *theme.Manager
	logger *log.Logger

	mu    sync.RWMutex
	token string
	user  *platform.User
	epoch uint64
}

// NewManager wires a session manager to its collaborators and installs
// itself as the client's header source
func NewManager(client *platform.Client, creds *store.CredentialStore, th *theme.Manager, logger *log.Logger) *Manager {
	m := &Manager{
		client: client,
		creds:  creds,
		theme:  th,
		logger: logger,
	}
	client.SetHeaderSource(m.AuthHeaders)
	return m
}

// Restore loads persisted credentials from the last run. A token without
// an identity is valid restored state; callers follow up with LoadProfile.
func (m *Manager) Restore() error {
	saved, err := m.creds.Load()
	if err != nil {
		return errors.Wrap(errors.ErrCodeCredentialsRead, "could not restore session", err)
	}
	if saved.Token == "" {
		return nil
	}

	m.mu.Lock()
	m.token = saved.Token
	m.user = saved.User
	m.epoch++
	m.mu.Unlock()

	if saved.User != nil && saved.User.Settings != nil {
		m.theme.Apply(saved.User.Settings)
	}
	return nil
}

// Epoch returns the identity generation. Consumers snapshot it before an
// asynchronous load and discard the result if it changed, so a slow
// response can never resurrect state cleared by a later logout.
func (m *Manager) Epoch() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.epoch
}

// CurrentUser returns the authenticated identity, or nil
func (m *Manager) CurrentUser() *platform.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Token returns the bearer token, or empty when logged out
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// AuthHeaders builds the header set for outgoing requests. It is a pure
// function of current state, recomputed per call, so in-flight requests
// always carry the latest token and tenant scope.
func (m *Manager) AuthHeaders() http.Header {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if m.token != "" {
		h.Set("Authorization", "Bearer "+m.token)
	}
	if m.user != nil && m.user.TenantSlug != "" {
		h.Set("X-Tenant-Slug", m.user.TenantSlug)
	}
	return h
}

// adopt commits a token/identity pair, persists it, and applies any
// embedded branding. Used by Login and AcceptInvitation.
func (m *Manager) adopt(token string, user *platform.User) {
	m.mu.Lock()
	m.token = token
	m.user = user
	m.epoch++
	m.mu.Unlock()

	m.persist(token, user)
}

func (m *Manager) persist(token string, user *platform.User) {
	if err := m.creds.Save(&store.Credentials{Token: token, User: user}); err != nil {
		m.logger.WithError(err).Warn("failed to persist session")
	}
	if user != nil && user.Settings != nil {
		m.theme.Apply(user.Settings)
	}
}

// Login authenticates against the platform. TenantSlug scopes the login
// to an organization and is omitted for platform-admin login. On failure
// the existing session state is left untouched.
func (m *Manager) Login(ctx context.Context, email, password, tenantSlug string) error {
	resp, err := m.client.Login(ctx, platform.LoginRequest{
		Email:      email,
		Password:   password,
		TenantSlug: tenantSlug,
	})
	if err != nil {
		if apiErr, ok := err.(*platform.APIError); ok {
			return errors.New(errors.ErrCodeAuthBadCredentials, apiErr.Message)
		}
		return errors.NewNetworkError(err)
	}

	m.adopt(resp.Token, &resp.User)
	m.logger.Info("logged in", "email", email, "tenant_slug", tenantSlug)
	return nil
}

// Logout clears the token and identity atomically, removes persisted
// state, and resets branding. Safe to call when already logged out.
func (m *Manager) Logout() {
	m.mu.Lock()
	wasAuthenticated := m.token != "" || m.user != nil
	m.token = ""
	m.user = nil
	m.epoch++
	m.mu.Unlock()

	if err := m.creds.Clear(); err != nil {
		m.logger.WithError(err).Warn("failed to clear persisted session")
	}
	m.theme.Reset()

	if wasAuthenticated {
		m.logger.Info("logged out")
	}
}

// LoadProfile fetches the identity for a restored token. A 401/403
// triggers logout, healing a stale or revoked token. The token and
// epoch are snapshotted before the fetch; if a logout or re-login lands
// while the request is in flight, the result is discarded.
func (m *Manager) LoadProfile(ctx context.Context) error {
	m.mu.RLock()
	token := m.token
	epoch := m.epoch
	m.mu.RUnlock()

	if token == "" {
		return errors.NewNotLoggedInError()
	}

	user, err := m.client.Profile(ctx)
	if err != nil {
		return m.normalizeAuthedError(err)
	}

	m.mu.Lock()
	if m.epoch != epoch {
		m.mu.Unlock()
		return nil
	}
	m.token = token
	m.user = user
	m.epoch++
	m.mu.Unlock()

	m.persist(token, user)
	return nil
}

// Register creates a user account directly. Restricted to admins; the
// check happens before any network call.
func (m *Manager) Register(ctx context.Context, req platform.RegisterRequest) (*platform.User, error) {
	if !m.IsAdmin() {
		return nil, errors.NewPermissionError(CapManageUsers)
	}

	user, err := m.client.Register(ctx, req)
	if err != nil {
		return nil, m.normalizeAuthedError(err)
	}
	return user, nil
}

// CreateInvitation invites an email address into the tenant. Restricted
// to tenant admins.
func (m *Manager) CreateInvitation(ctx context.Context, email, role string) (*platform.Invitation, error) {
	if !m.IsAdmin() {
		return nil, errors.NewPermissionError(CapManageUsers)
	}

	inv, err := m.client.CreateInvitation(ctx, email, role)
	if err != nil {
		return nil, m.normalizeAuthedError(err)
	}
	return inv, nil
}

// AcceptInvitation redeems an invitation token and establishes a session
// with the same post-conditions as Login
func (m *Manager) AcceptInvitation(ctx context.Context, token, name, password string) error {
	resp, err := m.client.AcceptInvitation(ctx, platform.AcceptInvitationRequest{
		Token:    token,
		Name:     name,
		Password: password,
	})
	if err != nil {
		if apiErr, ok := err.(*platform.APIError); ok {
			return errors.New(errors.ErrCodeAuthInviteInvalid, apiErr.Message)
		}
		return errors.NewNetworkError(err)
	}

	m.adopt(resp.Token, &resp.User)
	m.logger.Info("invitation accepted", "email", resp.User.Email)
	return nil
}

// GetTenantUsers lists the tenant's members. Restricted to admins.
func (m *Manager) GetTenantUsers(ctx context.Context) ([]platform.User, error) {
	if !m.IsAdmin() {
		return nil, errors.NewPermissionError(CapManageUsers)
	}

	users, err := m.client.ListUsers(ctx)
	if err != nil {
		return nil, m.normalizeAuthedError(err)
	}
	return users, nil
}

// UpdateUser applies a partial update to a tenant member. Restricted to
// admins.
func (m *Manager) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*platform.User, error) {
	if !m.IsAdmin() {
		return nil, errors.NewPermissionError(CapManageUsers)
	}

	user, err := m.client.UpdateUser(ctx, id, updates)
	if err != nil {
		return nil, m.normalizeAuthedError(err)
	}
	return user, nil
}

// normalizeAuthedError converts a failure on an authenticated call into
// the uniform error shape. An authorization failure cannot be repaired
// by retry, so it forces logout instead of merely surfacing the error.
func (m *Manager) normalizeAuthedError(err error) error {
	if apiErr, ok := err.(*platform.APIError); ok {
		if apiErr.IsAuthError() {
			m.logger.WithError(apiErr).Warn("authorization failure, forcing logout")
			m.Logout()
			return errors.NewSessionExpiredError()
		}
		return errors.New(errors.ErrCodeNetBadResponse, apiErr.Message)
	}
	return errors.NewNetworkError(err)
}
