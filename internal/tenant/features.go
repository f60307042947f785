package tenant

// Subscription tiers
const (
	TierFree         = "free"
	TierStarter      = "starter"
	TierProfessional = "professional"
	TierEnterprise   = "enterprise"
)

// Feature names gated by subscription tier
const (
	FeatureBasicAnalytics    = "basic_analytics"
	FeatureDocumentUpload    = "document_upload"
	FeatureUserManagement    = "user_management"
	FeatureCustomBranding    = "custom_branding"
	FeatureAdvancedAnalytics = "advanced_analytics"
	FeatureAPIAccess         = "api_access"
	FeatureSSO               = "sso"
	FeatureAuditLogs         = "audit_logs"
	FeatureCustomDomain      = "custom_domain"
)

// tierFeatures maps each tier to its full feature set. Each tier's list
// deliberately repeats the features of the tiers below it; entitlements
// must not depend on implicit inheritance between entries.
var tierFeatures = map[string][]string{
	TierFree: {
		FeatureBasicAnalytics,
		FeatureDocumentUpload,
	},
	TierStarter: {
		FeatureBasicAnalytics,
		FeatureDocumentUpload,
		FeatureUserManagement,
		FeatureCustomBranding,
	},
	TierProfessional: {
		FeatureBasicAnalytics,
		FeatureDocumentUpload,
		FeatureUserManagement,
		FeatureCustomBranding,
		FeatureAdvancedAnalytics,
		FeatureAPIAccess,
	},
	TierEnterprise: {
		FeatureBasicAnalytics,
		FeatureDocumentUpload,
		FeatureUserManagement,
		FeatureCustomBranding,
		FeatureAdvancedAnalytics,
		FeatureAPIAccess,
		FeatureSSO,
		FeatureAuditLogs,
		FeatureCustomDomain,
	},
}

// HasFeature reports whether the loaded tenant's tier includes a
// feature. Unknown tiers and an unloaded tenant have no features.
func (m *Manager) HasFeature(feature string) bool {
	m.mu.RLock()
	tenant := m.tenant
	m.mu.RUnlock()

	if tenant == nil {
		return false
	}

	for _, f := range tierFeatures[tenant.SubscriptionTier] {
		if f == feature {
			return true
		}
	}
	return false
}

// Features returns the full feature list for the loaded tenant's tier
func (m *Manager) Features() []string {
	m.mu.RLock()
	tenant := m.tenant
	m.mu.RUnlock()

	if tenant == nil {
		return nil
	}
	return tierFeatures[tenant.SubscriptionTier]
}
