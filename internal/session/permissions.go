package session

// Capability names checked against the current identity before an action
// is allowed. These mirror the platform's server-side checks; the client
// uses them to fail fast before any network call.
const (
	CapManageUsers     = "manage_users"
	CapManageSettings  = "manage_settings"
	CapViewAnalytics   = "view_analytics"
	CapUploadDocuments = "upload_documents"
	CapDeleteDocuments = "delete_documents"
	CapViewDocuments   = "view_documents"
	CapAskQuestions    = "ask_questions"
	CapGlobalAnalytics = "global_analytics"
	CapManageTenants   = "manage_tenants"
)

// HasPermission evaluates a capability against the current identity.
// It is recomputed on every call, never cached; the identity can change
// between checks without a restart.
func (m *Manager) HasPermission(capability string) bool {
	m.mu.RLock()
	user := m.user
	m.mu.RUnlock()

	if user == nil {
		return false
	}

	// Superadmin short-circuits to true for every capability.
	if user.IsSuperadmin() {
		return true
	}

	switch capability {
	case CapViewDocuments, CapAskQuestions, CapUploadDocuments:
		return true
	case CapManageUsers, CapManageSettings, CapViewAnalytics, CapDeleteDocuments:
		return user.IsTenantAdmin()
	case CapGlobalAnalytics, CapManageTenants:
		return false
	default:
		return false
	}
}

// IsAuthenticated reports whether an identity is present
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// IsAdmin reports whether the identity is a tenant admin or superadmin
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && (m.user.IsTenantAdmin() || m.user.IsSuperadmin())
}

// IsSuperAdmin reports whether the identity is a platform operator
func (m *Manager) IsSuperAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.IsSuperadmin()
}

// IsTenantUser reports whether the identity belongs to an organization
func (m *Manager) IsTenantUser() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.TenantID != ""
}
